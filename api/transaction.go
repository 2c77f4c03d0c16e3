package api

import (
	"strconv"
	"strings"

	"tracker/ledger"
	"tracker/models"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 收支记录处理器
type TransactionHandler struct {
	store *ledger.Store
}

// NewTransactionHandler 创建收支记录处理器
func NewTransactionHandler(store *ledger.Store) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// CreateTransactionRequest 新增收支记录请求
type CreateTransactionRequest struct {
	Type        string   `json:"type" binding:"required,oneof=income expense" example:"expense"`
	Title       string   `json:"title" binding:"required" example:"Groceries"`
	Amount      *float64 `json:"amount" binding:"required,gte=0" example:"1200"`
	Category    string   `json:"category" binding:"required" example:"Food"`
	Date        string   `json:"date" binding:"required,datetime=2006-01-02" example:"2024-01-15"`
	PaymentMode string   `json:"paymentMode" binding:"required" example:"Cash"`
}

// Create 新增收支记录
// @Summary 新增收支记录
// @Description 新增一条收入或支出记录，ID 由服务端分配
// @Tags 收支记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "收支记录"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	title := strings.TrimSpace(req.Title)
	category := strings.TrimSpace(req.Category)
	if title == "" || category == "" {
		BadRequest(c, "标题和类别不能为空")
		return
	}

	stored, err := h.store.Add(c.Request.Context(), models.Transaction{
		Type:        models.TransactionType(req.Type),
		Title:       title,
		Amount:      *req.Amount,
		Category:    category,
		Date:        req.Date,
		PaymentMode: strings.TrimSpace(req.PaymentMode),
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "保存失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", stored)
}

// List 查询收支记录
// @Summary 查询收支记录
// @Description 按类别、年份、月份、标题筛选，按日期倒序返回；all 或不传表示不过滤
// @Tags 收支记录
// @Produce json
// @Security BearerAuth
// @Param category query string false "类别" default(all)
// @Param year query string false "四位年份，如 2024" default(all)
// @Param month query string false "两位月份，如 01" default(all)
// @Param title query string false "标题关键字，不区分大小写"
// @Success 200 {object} Response{data=ListResponse{list=[]models.Transaction}} "获取成功"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	var filter ledger.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	list := h.store.Query(filter)
	Success(c, ListResponse{
		Total: len(list),
		List:  list,
	})
}

// Delete 删除收支记录
// @Summary 删除收支记录
// @Description 按 ID 删除，记录不存在时同样返回成功
// @Tags 收支记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
