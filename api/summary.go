package api

import (
	"strconv"
	"time"

	"tracker/ledger"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 汇总与图表数据处理器
type SummaryHandler struct {
	store *ledger.Store
	now   func() time.Time
}

// NewSummaryHandler 创建汇总处理器
func NewSummaryHandler(store *ledger.Store) *SummaryHandler {
	return &SummaryHandler{store: store, now: time.Now}
}

// FilterOptionsResponse 筛选选项
type FilterOptionsResponse struct {
	Categories   []string             `json:"categories"`
	PaymentModes []string             `json:"payment_modes"`
	Months       []ledger.MonthOption `json:"months"`
	YearStart    int                  `json:"year_start" example:"2017"`
	Years        []string             `json:"years"`
}

// Summary 收支汇总
// @Summary 收支汇总
// @Description 统计全部记录的总收入、总支出和结余，不受列表筛选影响
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=ledger.Summary} "获取成功"
// @Router /api/v1/summary [get]
func (h *SummaryHandler) Summary(c *gin.Context) {
	Success(c, h.store.Summarize())
}

// Monthly 月度收支
// @Summary 月度收支
// @Description 按年月汇总收入和支出，按月份升序，用于柱状图
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]ledger.MonthTotal} "获取成功"
// @Router /api/v1/charts/monthly [get]
func (h *SummaryHandler) Monthly(c *gin.Context) {
	Success(c, h.store.GroupByMonth())
}

// Categories 类别支出
// @Summary 类别支出
// @Description 按类别汇总支出，顺序为类别首次出现的顺序，用于饼图
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]ledger.CategoryTotal} "获取成功"
// @Router /api/v1/charts/categories [get]
func (h *SummaryHandler) Categories(c *gin.Context) {
	Success(c, h.store.CategoryBreakdown())
}

// FilterOptions 筛选选项
// @Summary 筛选选项
// @Description 返回建议类别、支付方式、月份和十年一页的年份列表
// @Tags 统计
// @Produce json
// @Param year_start query int false "年份窗口起点，默认当前年份-9"
// @Success 200 {object} Response{data=FilterOptionsResponse} "获取成功"
// @Failure 400 {object} Response "参数错误"
// @Router /api/v1/filters [get]
func (h *SummaryHandler) FilterOptions(c *gin.Context) {
	start := ledger.DefaultYearStart(h.now())
	if s := c.Query("year_start"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 9990 {
			BadRequest(c, "year_start 格式错误")
			return
		}
		start = v
	}

	Success(c, FilterOptionsResponse{
		Categories:   ledger.Categories(),
		PaymentModes: ledger.PaymentModes(),
		Months:       ledger.Months(),
		YearStart:    start,
		Years:        ledger.YearWindow(start),
	})
}
