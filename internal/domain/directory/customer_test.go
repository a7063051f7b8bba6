package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer successfully", func(t *testing.T) {
		customer, err := NewCustomer("KH001", "Công ty TNHH Hoa Mai")

		require.NoError(t, err)
		assert.NotNil(t, customer)
		assert.Equal(t, "KH001", customer.Code)
		assert.Equal(t, "Công ty TNHH Hoa Mai", customer.Name)
		assert.Equal(t, "cong ty tnhh hoa mai", customer.NormalizedName)
		assert.Equal(t, CustomerStatusLead, customer.Status)
		assert.Len(t, customer.GetDomainEvents(), 1)
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		customer, err := NewCustomer("kh002", "Test Customer")

		require.NoError(t, err)
		assert.Equal(t, "KH002", customer.Code)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		customer, err := NewCustomer("", "Test Customer")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "code cannot be empty")
	})

	t.Run("fails with invalid code characters", func(t *testing.T) {
		customer, err := NewCustomer("KH@001", "Test Customer")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "can only contain")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		customer, err := NewCustomer("KH001", "")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"full diacritics", "Trần Văn Đức", "tran van duc"},
		{"mixed case", "CÔNG TY Cổ PHẦN", "cong ty co phan"},
		{"dj letter", "Đà Nẵng", "da nang"},
		{"already plain", "hoa mai", "hoa mai"},
		{"extra whitespace", "  Hoa   Mai  ", "hoa mai"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestCustomerUpdate(t *testing.T) {
	customer, _ := NewCustomer("KH001", "Tên Gốc")
	customer.ClearDomainEvents()

	t.Run("updates name and search key together", func(t *testing.T) {
		err := customer.Update("Quán Cà Phê Mới")

		require.NoError(t, err)
		assert.Equal(t, "Quán Cà Phê Mới", customer.Name)
		assert.Equal(t, "quan ca phe moi", customer.NormalizedName)
		assert.Len(t, customer.GetDomainEvents(), 1)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		err := customer.Update("")
		assert.Error(t, err)
	})
}

func TestCustomerSetContact(t *testing.T) {
	customer, _ := NewCustomer("KH001", "Test Customer")

	t.Run("sets valid contact info", func(t *testing.T) {
		err := customer.SetContact("+84 28 3822 9999", "lienhe@hoamai.vn")

		require.NoError(t, err)
		assert.Equal(t, "+84 28 3822 9999", customer.Phone)
		assert.Equal(t, "lienhe@hoamai.vn", customer.Email)
	})

	t.Run("rejects malformed phone", func(t *testing.T) {
		assert.Error(t, customer.SetContact("abc!", ""))
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		assert.Error(t, customer.SetContact("", "not-an-email"))
	})
}

func TestCustomerSetAddress(t *testing.T) {
	customer, _ := NewCustomer("KH001", "Test Customer")

	err := customer.SetAddress("12 Nguyễn Huệ", "Quận 1")
	require.NoError(t, err)
	assert.Equal(t, "12 Nguyễn Huệ", customer.Address)
	assert.Equal(t, "Quận 1", customer.District)
}

func TestCustomerTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    CustomerStatus
		to      CustomerStatus
		allowed bool
	}{
		{"lead to active", CustomerStatusLead, CustomerStatusActive, true},
		{"lead to terminated", CustomerStatusLead, CustomerStatusTerminated, true},
		{"lead to inactive", CustomerStatusLead, CustomerStatusInactive, false},
		{"active to inactive", CustomerStatusActive, CustomerStatusInactive, true},
		{"active to terminated", CustomerStatusActive, CustomerStatusTerminated, true},
		{"active to lead", CustomerStatusActive, CustomerStatusLead, false},
		{"inactive to active", CustomerStatusInactive, CustomerStatusActive, true},
		{"inactive to terminated", CustomerStatusInactive, CustomerStatusTerminated, true},
		{"terminated to active", CustomerStatusTerminated, CustomerStatusActive, false},
		{"terminated to lead", CustomerStatusTerminated, CustomerStatusLead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer, _ := NewCustomer("KH001", "Test Customer")
			customer.Status = tt.from
			customer.ClearDomainEvents()

			err := customer.TransitionTo(tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, customer.Status)

				events := customer.GetDomainEvents()
				require.Len(t, events, 1)
				changed, ok := events[0].(*CustomerStatusChangedEvent)
				require.True(t, ok)
				assert.Equal(t, tt.from, changed.OldStatus)
				assert.Equal(t, tt.to, changed.NewStatus)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.from, customer.Status)
			}
		})
	}

	t.Run("same status is rejected", func(t *testing.T) {
		customer, _ := NewCustomer("KH001", "Test Customer")
		assert.Error(t, customer.TransitionTo(CustomerStatusLead))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		customer, _ := NewCustomer("KH001", "Test Customer")
		assert.Error(t, customer.TransitionTo(CustomerStatus("vip")))
	})
}

func TestCustomerBillable(t *testing.T) {
	customer, _ := NewCustomer("KH001", "Test Customer")
	assert.False(t, customer.IsBillable())

	require.NoError(t, customer.TransitionTo(CustomerStatusActive))
	assert.True(t, customer.IsBillable())
	assert.True(t, customer.IsActive())

	require.NoError(t, customer.TransitionTo(CustomerStatusTerminated))
	assert.False(t, customer.IsBillable())
	assert.True(t, customer.IsTerminated())
}
