package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_DateParts(t *testing.T) {
	tx := Transaction{Date: "2024-01-15"}
	assert.Equal(t, "2024", tx.Year())
	assert.Equal(t, "01", tx.Month())
	assert.Equal(t, "2024-01", tx.MonthKey())

	// 不完整的日期不会越界
	short := Transaction{Date: "20"}
	assert.Equal(t, "", short.Year())
	assert.Equal(t, "", short.Month())
	assert.Equal(t, "20", short.MonthKey())
}

func TestTransaction_IsIncome(t *testing.T) {
	assert.True(t, Transaction{Type: TypeIncome}.IsIncome())
	assert.False(t, Transaction{Type: TypeExpense}.IsIncome())
	assert.False(t, Transaction{Type: "refund"}.IsIncome())
}

func TestGetCategories(t *testing.T) {
	cats := GetCategories()
	assert.Contains(t, cats, CategoryFood)
	assert.Contains(t, cats, CategorySalary)
	assert.Equal(t, CategoryOther, cats[len(cats)-1])
	assert.Contains(t, GetPaymentModes(), "Cash")
}
