package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "KBC123X", NormalizePlate("  kbc123x "))
	assert.Equal(t, "AB 12 CD", NormalizePlate("ab 12 cd"))
	assert.Equal(t, "", NormalizePlate("   "))
}

func TestNormalizePhone(t *testing.T) {
	// Сравнение телефонов идет только по цифрам
	assert.Equal(t, "254712345678", NormalizePhone("+254 712-345-678"))
	assert.Equal(t, "0712345678", NormalizePhone("(071) 234 5678"))
	assert.Equal(t, "", NormalizePhone("---"))
	assert.Equal(t, NormalizePhone("+254712345678"), NormalizePhone("254 712 345 678"))
}

func TestPrincipalAccess(t *testing.T) {
	admin := Principal{ID: 1, Role: RoleAdmin}
	customer := Principal{ID: 42, Role: RoleCustomer}

	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.CanAccessCustomer(42))
	assert.True(t, customer.CanAccessCustomer(42))
	assert.False(t, customer.CanAccessCustomer(43))
}
