package ledger

import (
	"strings"

	"tracker/models"
)

// All 表示该维度不过滤
const All = "all"

// Filter 查询条件，各维度之间为 AND
type Filter struct {
	Category string `form:"category"`
	Year     string `form:"year"`  // 四位年份
	Month    string `form:"month"` // 两位月份
	Title    string `form:"title"` // 标题子串，不区分大小写
}

func unconstrained(v string) bool {
	return v == "" || v == All
}

// Match 判断记录是否满足全部条件
func (f Filter) Match(t models.Transaction) bool {
	if !unconstrained(f.Category) && t.Category != f.Category {
		return false
	}
	if !unconstrained(f.Year) && t.Year() != f.Year {
		return false
	}
	if !unconstrained(f.Month) && t.Month() != f.Month {
		return false
	}
	if f.Title != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(f.Title)) {
		return false
	}
	return true
}

// Apply 过滤并按日期倒序返回，同一天的记录保持原有顺序
func (f Filter) Apply(records []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(records))
	for _, t := range records {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	sortByDateDesc(out)
	return out
}
