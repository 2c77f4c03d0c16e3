package models

// TransactionType 收支类型
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// DateLayout 记录日期格式（无时间部分）
const DateLayout = "2006-01-02"

// Transaction 收支记录
// JSON 字段名即持久化格式，不可随意修改
type Transaction struct {
	ID          int64           `json:"id"`
	Type        TransactionType `json:"type"`
	Title       string          `json:"title"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	PaymentMode string          `json:"paymentMode"`
}

// IsIncome 是否为收入，汇总和月度统计中非 income 一律按支出计
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// Year 日期中的四位年份，日期不完整时返回空串
func (t Transaction) Year() string {
	if len(t.Date) < 4 {
		return ""
	}
	return t.Date[:4]
}

// Month 日期中的两位月份
func (t Transaction) Month() string {
	if len(t.Date) < 7 {
		return ""
	}
	return t.Date[5:7]
}

// MonthKey 年月键，如 2024-01
func (t Transaction) MonthKey() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}

// 建议的收支类别（不强制）
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryBills         = "Bills"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryEducation     = "Education"
	CategorySalary        = "Salary"
	CategoryFreelance     = "Freelance"
	CategoryInvestment    = "Investment"
	CategoryOther         = "Other"
)

// GetCategories 获取建议类别
func GetCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryBills,
		CategoryEntertainment,
		CategoryHealth,
		CategoryEducation,
		CategorySalary,
		CategoryFreelance,
		CategoryInvestment,
		CategoryOther,
	}
}

// GetPaymentModes 获取建议支付方式
func GetPaymentModes() []string {
	return []string{"Cash", "Card", "UPI", "Net Banking", "Other"}
}
