package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaleStatus_String(t *testing.T) {
	assert.Equal(t, "in_progress", SaleStatusInProgress.String())
	assert.Equal(t, "registered", SaleStatusRegistered.String())
	assert.Equal(t, "paid", SaleStatusPaid.String())
	assert.Equal(t, "nulled", SaleStatusNulled.String())
	assert.Equal(t, "unknown", SaleStatus(42).String())
}

func TestSaleStatus_Code(t *testing.T) {
	assert.Equal(t, 0, SaleStatusInProgress.Code())
	assert.Equal(t, 1, SaleStatusRegistered.Code())
	assert.Equal(t, 2, SaleStatusPaid.Code())
	assert.Equal(t, 3, SaleStatusNulled.Code())
}

func TestSaleStatus_IsValid(t *testing.T) {
	for code := 0; code <= 3; code++ {
		assert.True(t, SaleStatus(code).IsValid(), "code %d should be valid", code)
	}

	assert.False(t, SaleStatus(-1).IsValid())
	assert.False(t, SaleStatus(4).IsValid())
}
