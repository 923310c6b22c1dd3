package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmployeeID(t *testing.T) {
	valid := []string{"EMP-00001", "ADM-00001", "CLK-12345", "emp-00042"}
	for _, id := range valid {
		assert.True(t, IsValidEmployeeID(id), "expected %q to be valid", id)
	}

	invalid := []string{"", "EMP00001", "EMP-1", "EMP-000001", "MGR-00001", "EMP-0000A", " EMP-00001"}
	for _, id := range invalid {
		assert.False(t, IsValidEmployeeID(id), "expected %q to be invalid", id)
	}
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-02"))
	assert.True(t, IsValidMonth("2024-12"))
	assert.False(t, IsValidMonth("2025-13"))
	assert.False(t, IsValidMonth("2025-00"))
	assert.False(t, IsValidMonth("2025-2"))
	assert.False(t, IsValidMonth("202502"))
	assert.False(t, IsValidMonth(""))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-02-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("15-02-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "Name is required"},
		{Field: "salary", Message: "Salary must be positive"},
	}

	assert.Equal(t, "name: Name is required; salary: Salary must be positive", errs.Error())
	assert.Equal(t, map[string]string{
		"name":   "Name is required",
		"salary": "Salary must be positive",
	}, errs.ToMap())
}
