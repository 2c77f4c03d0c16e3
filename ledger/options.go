package ledger

import (
	"fmt"
	"time"

	"tracker/models"
)

// YearWindowSize 年份选择每页的年数
const YearWindowSize = 10

// MonthOption 月份选项
type MonthOption struct {
	Value string `json:"value" example:"01"`
	Name  string `json:"name" example:"January"`
}

// Months 十二个月的筛选选项
func Months() []MonthOption {
	out := make([]MonthOption, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, MonthOption{Value: fmt.Sprintf("%02d", int(m)), Name: m.String()})
	}
	return out
}

// DefaultYearStart 默认年份窗口起点，使当前年份位于窗口末尾
func DefaultYearStart(now time.Time) int {
	return now.Year() - (YearWindowSize - 1)
}

// YearWindow 从 start 开始的连续十个年份
func YearWindow(start int) []string {
	out := make([]string, 0, YearWindowSize)
	for i := 0; i < YearWindowSize; i++ {
		out = append(out, fmt.Sprintf("%04d", start+i))
	}
	return out
}

// Categories 建议类别
func Categories() []string {
	return models.GetCategories()
}

// PaymentModes 建议支付方式
func PaymentModes() []string {
	return models.GetPaymentModes()
}

// FormatDate 展示用日期，如 15 Jan 2024；无法解析时原样返回
func FormatDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02 Jan 2006")
}

// MonthLabel 图表用月份标签，如 Jan 2024
func MonthLabel(monthKey string) string {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return monthKey
	}
	return t.Format("Jan 2006")
}
