package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"tracker/ledger"
	"tracker/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	store *ledger.Store
}

// NewExportHandler 创建导出处理器
func NewExportHandler(store *ledger.Store) *ExportHandler {
	return &ExportHandler{store: store}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("transactions_%s.%s", time.Now().Format("20060102"), ext)
}

// ExportCSV 导出收支记录为 CSV
// @Summary 导出 CSV
// @Description 按与列表相同的筛选条件导出 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param category query string false "类别"
// @Param year query string false "四位年份"
// @Param month query string false "两位月份"
// @Param title query string false "标题关键字"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	var filter ledger.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	buf := new(bytes.Buffer)
	if err := service.WriteCSV(buf, h.store.Query(filter)); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename("csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出收支记录为 Excel
// @Summary 导出 Excel
// @Description 按筛选条件导出 xlsx 文件，表尾为全部记录的收支汇总
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param category query string false "类别"
// @Param year query string false "四位年份"
// @Param month query string false "两位月份"
// @Param title query string false "标题关键字"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	var filter ledger.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	f, err := service.BuildExcel(h.store.Query(filter), h.store.Summarize())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename("xlsx")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
