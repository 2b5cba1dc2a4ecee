package domain_test

import (
	"testing"

	"storefront-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	t.Run("every exported order status is valid", func(t *testing.T) {
		for _, s := range domain.OrderStatuses {
			assert.True(t, s.Valid(), string(s))
		}
	})

	t.Run("unknown order statuses are rejected", func(t *testing.T) {
		for _, s := range []domain.OrderStatus{"", "pending", "Shipped", "Cancelled"} {
			assert.False(t, s.Valid(), string(s))
		}
	})

	t.Run("payment type is case sensitive", func(t *testing.T) {
		assert.True(t, domain.PaymentType("Cash on Delivery").Valid())
		assert.False(t, domain.PaymentType("cash on delivery").Valid())
		assert.False(t, domain.PaymentType("COD").Valid())
	})

	t.Run("every exported return status is valid", func(t *testing.T) {
		for _, s := range domain.ReturnStatuses {
			assert.True(t, s.Valid(), string(s))
		}
		assert.False(t, domain.ReturnStatus("Escalated").Valid())
	})

	t.Run("every exported payment status is valid", func(t *testing.T) {
		for _, s := range domain.PaymentStatuses {
			assert.True(t, s.Valid(), string(s))
		}
		assert.False(t, domain.PaymentStatus("Refunded").Valid())
	})
}
