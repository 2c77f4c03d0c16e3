package ledger

import (
	"slices"
	"sort"
	"strings"

	"tracker/models"

	"github.com/shopspring/decimal"
)

// Summary 收支汇总
type Summary struct {
	TotalIncome  float64 `json:"total_income" example:"5000"`
	TotalExpense float64 `json:"total_expense" example:"1500"`
	Balance      float64 `json:"balance" example:"3500"`
}

// MonthTotal 单月收支，用于月度柱状图
type MonthTotal struct {
	Month   string  `json:"month" example:"2024-01"`
	Label   string  `json:"label" example:"Jan 2024"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CategoryTotal 单个类别的支出合计，用于饼图
type CategoryTotal struct {
	Category string  `json:"category" example:"Food"`
	Amount   float64 `json:"amount"`
}

// Summarize 汇总收入、支出和结余
func Summarize(records []models.Transaction) Summary {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range records {
		amount := decimal.NewFromFloat(t.Amount)
		if t.IsIncome() {
			income = income.Add(amount)
		} else {
			expense = expense.Add(amount)
		}
	}
	return Summary{
		TotalIncome:  income.InexactFloat64(),
		TotalExpense: expense.InexactFloat64(),
		Balance:      income.Sub(expense).InexactFloat64(),
	}
}

// GroupByMonth 按年月汇总收支，按月份升序
func GroupByMonth(records []models.Transaction) []MonthTotal {
	type sums struct{ income, expense decimal.Decimal }
	byMonth := make(map[string]*sums)
	for _, t := range records {
		key := t.MonthKey()
		s, ok := byMonth[key]
		if !ok {
			s = &sums{income: decimal.Zero, expense: decimal.Zero}
			byMonth[key] = s
		}
		amount := decimal.NewFromFloat(t.Amount)
		if t.IsIncome() {
			s.income = s.income.Add(amount)
		} else {
			s.expense = s.expense.Add(amount)
		}
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthTotal, 0, len(keys))
	for _, k := range keys {
		s := byMonth[k]
		out = append(out, MonthTotal{
			Month:   k,
			Label:   MonthLabel(k),
			Income:  s.income.InexactFloat64(),
			Expense: s.expense.InexactFloat64(),
		})
	}
	return out
}

// CategoryBreakdown 按类别汇总支出，顺序为类别首次出现的顺序
// 只统计 type 为 expense 的记录
func CategoryBreakdown(records []models.Transaction) []CategoryTotal {
	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, t := range records {
		if t.Type != models.TypeExpense {
			continue
		}
		cur, ok := totals[t.Category]
		if !ok {
			order = append(order, t.Category)
			cur = decimal.Zero
		}
		totals[t.Category] = cur.Add(decimal.NewFromFloat(t.Amount))
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryTotal{Category: c, Amount: totals[c].InexactFloat64()})
	}
	return out
}

// sortByDateDesc 日期倒序的稳定排序；ISO 日期按字符串比较即按时间比较
func sortByDateDesc(records []models.Transaction) {
	slices.SortStableFunc(records, func(a, b models.Transaction) int {
		return strings.Compare(b.Date, a.Date)
	})
}
