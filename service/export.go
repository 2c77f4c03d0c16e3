package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tracker/ledger"
	"tracker/models"

	"github.com/xuri/excelize/v2"
)

// ExportSheetName Excel 工作表名
const ExportSheetName = "Transactions"

var exportHeaders = []string{"ID", "Date", "Title", "Category", "Type", "Amount", "Payment Mode"}

func exportRow(t models.Transaction) []string {
	return []string{
		strconv.FormatInt(t.ID, 10),
		ledger.FormatDate(t.Date),
		t.Title,
		t.Category,
		strings.ToUpper(string(t.Type)),
		strconv.FormatFloat(t.Amount, 'f', -1, 64),
		t.PaymentMode,
	}
}

// WriteCSV 以 CSV 写出记录，带 UTF-8 BOM 以便 Excel 正确识别编码
func WriteCSV(w io.Writer, records []models.Transaction) error {
	if _, err := io.WriteString(w, "\xEF\xBB\xBF"); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return err
	}
	for _, t := range records {
		if err := writer.Write(exportRow(t)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// BuildExcel 生成 Excel 文件，表尾附收入、支出、结余汇总行
// 调用方负责 Close
func BuildExcel(records []models.Transaction, summary ledger.Summary) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		f.Close()
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	f.SetColWidth(ExportSheetName, "A", "A", 16)
	f.SetColWidth(ExportSheetName, "B", "B", 14)
	f.SetColWidth(ExportSheetName, "C", "C", 30)
	f.SetColWidth(ExportSheetName, "D", "E", 14)
	f.SetColWidth(ExportSheetName, "F", "F", 12)
	f.SetColWidth(ExportSheetName, "G", "G", 14)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ExportSheetName, cell, header)
		f.SetCellStyle(ExportSheetName, cell, cell, headerStyle)
	}

	for i, t := range records {
		row := i + 2
		f.SetCellValue(ExportSheetName, fmt.Sprintf("A%d", row), t.ID)
		f.SetCellValue(ExportSheetName, fmt.Sprintf("B%d", row), ledger.FormatDate(t.Date))
		f.SetCellValue(ExportSheetName, fmt.Sprintf("C%d", row), t.Title)
		f.SetCellValue(ExportSheetName, fmt.Sprintf("D%d", row), t.Category)
		f.SetCellValue(ExportSheetName, fmt.Sprintf("E%d", row), strings.ToUpper(string(t.Type)))
		f.SetCellValue(ExportSheetName, fmt.Sprintf("F%d", row), t.Amount)
		f.SetCellValue(ExportSheetName, fmt.Sprintf("G%d", row), t.PaymentMode)
		f.SetCellStyle(ExportSheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), dataStyle)
	}

	// 汇总行
	summaryRow := len(records) + 3
	labels := []struct {
		label string
		value float64
	}{
		{"Total Income", summary.TotalIncome},
		{"Total Expense", summary.TotalExpense},
		{"Balance", summary.Balance},
	}
	for i, item := range labels {
		row := summaryRow + i
		f.SetCellValue(ExportSheetName, fmt.Sprintf("E%d", row), item.label)
		f.SetCellValue(ExportSheetName, fmt.Sprintf("F%d", row), item.value)
		f.SetCellStyle(ExportSheetName, fmt.Sprintf("E%d", row), fmt.Sprintf("F%d", row), summaryStyle)
	}

	return f, nil
}
