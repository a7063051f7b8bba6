package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPeriod(t *testing.T) Period {
	t.Helper()
	period, err := ComputePeriod(2026, 1, 24)
	require.NoError(t, err)
	return period
}

func testLines(t *testing.T) []LineItem {
	t.Helper()
	line, err := NewLineItem(uuid.New(), "Kim Tiền", "M", 3, decimal.NewFromInt(100000))
	require.NoError(t, err)
	return []LineItem{line}
}

func createTestStatement(t *testing.T) *MonthlyStatement {
	t.Helper()
	s, err := NewMonthlyStatement(uuid.New(), "Công ty TNHH Hoa Mai", testPeriod(t), testLines(t), DefaultConfig())
	require.NoError(t, err)
	return s
}

func TestNewMonthlyStatement(t *testing.T) {
	t.Run("three plants at 100000 with 8 percent vat", func(t *testing.T) {
		s := createTestStatement(t)

		assert.True(t, s.Subtotal.Equal(decimal.NewFromInt(300000)), "subtotal %s", s.Subtotal)
		assert.True(t, s.VATAmount.Equal(decimal.NewFromInt(24000)), "vat %s", s.VATAmount)
		assert.True(t, s.GrandTotal.Equal(decimal.NewFromInt(324000)), "grand total %s", s.GrandTotal)

		assert.Equal(t, 2026, s.Year)
		assert.Equal(t, 1, s.Month)
		assert.Equal(t, StatementStatusPending, s.Status)
		assert.True(t, s.NeedsConfirmation)
		assert.Nil(t, s.ConfirmedAt)
		assert.Nil(t, s.ConfirmedBy)
		assert.Nil(t, s.DeletedAt)
		assert.Equal(t, 1, s.GetVersion())

		events := s.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "MonthlyStatementGenerated", events[0].EventType())
	})

	t.Run("confirmation not required by policy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RequireConfirmation = false

		s, err := NewMonthlyStatement(uuid.New(), "Công ty TNHH Hoa Mai", testPeriod(t), testLines(t), cfg)
		require.NoError(t, err)
		assert.Equal(t, StatementStatusDraft, s.Status)
		assert.False(t, s.NeedsConfirmation)
	})

	t.Run("no active assignments produces an empty statement", func(t *testing.T) {
		s, err := NewMonthlyStatement(uuid.New(), "Công ty TNHH Hoa Mai", testPeriod(t), nil, DefaultConfig())
		require.NoError(t, err)
		assert.Empty(t, s.Lines)
		assert.True(t, s.Subtotal.IsZero())
		assert.True(t, s.VATAmount.IsZero())
		assert.True(t, s.GrandTotal.IsZero())
	})

	t.Run("validation", func(t *testing.T) {
		badCfg := DefaultConfig()
		badCfg.BoundaryDay = 0

		_, err := NewMonthlyStatement(uuid.Nil, "Công ty", testPeriod(t), nil, DefaultConfig())
		assert.Error(t, err)

		_, err = NewMonthlyStatement(uuid.New(), "", testPeriod(t), nil, DefaultConfig())
		assert.Error(t, err)

		_, err = NewMonthlyStatement(uuid.New(), "Công ty", testPeriod(t), nil, badCfg)
		assert.Error(t, err)
	})
}

func TestStatementStatus(t *testing.T) {
	tests := []struct {
		status      StatementStatus
		isValid     bool
		canConfirm  bool
		isConfirmed bool
	}{
		{StatementStatusDraft, true, true, false},
		{StatementStatusPending, true, true, false},
		{StatementStatusConfirmed, true, false, true},
		{StatementStatus("UNKNOWN"), false, false, false},
		{StatementStatus(""), false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
			assert.Equal(t, tt.canConfirm, tt.status.CanConfirm())
			assert.Equal(t, tt.isConfirmed, tt.status.IsConfirmed())
		})
	}
}

func TestStatementConfirm(t *testing.T) {
	t.Run("confirm pending statement", func(t *testing.T) {
		s := createTestStatement(t)
		userID := uuid.New()

		require.NoError(t, s.Confirm(userID))

		assert.Equal(t, StatementStatusConfirmed, s.Status)
		assert.False(t, s.NeedsConfirmation)
		require.NotNil(t, s.ConfirmedAt)
		require.NotNil(t, s.ConfirmedBy)
		assert.Equal(t, userID, *s.ConfirmedBy)
		assert.Equal(t, 2, s.GetVersion())

		events := s.GetDomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "MonthlyStatementConfirmed", events[1].EventType())
	})

	t.Run("confirm twice", func(t *testing.T) {
		s := createTestStatement(t)
		require.NoError(t, s.Confirm(uuid.New()))

		err := s.Confirm(uuid.New())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "INVALID_STATE")
	})

	t.Run("confirm deleted statement", func(t *testing.T) {
		s := createTestStatement(t)
		require.NoError(t, s.SoftDelete())

		err := s.Confirm(uuid.New())
		assert.Error(t, err)
	})

	t.Run("confirm without a user", func(t *testing.T) {
		s := createTestStatement(t)
		assert.Error(t, s.Confirm(uuid.Nil))
	})
}

func TestStatementRegenerate(t *testing.T) {
	t.Run("regeneration with changed quantities raises the flag again", func(t *testing.T) {
		s := createTestStatement(t)
		s.NeedsConfirmation = false
		s.Status = StatementStatusDraft

		line, err := NewLineItem(uuid.New(), "Kim Tiền", "M", 5, decimal.NewFromInt(100000))
		require.NoError(t, err)

		require.NoError(t, s.Regenerate([]LineItem{line}, DefaultConfig()))

		assert.True(t, s.GrandTotal.Equal(decimal.NewFromInt(540000)))
		assert.Equal(t, StatementStatusPending, s.Status)
		assert.True(t, s.NeedsConfirmation)

		events := s.GetDomainEvents()
		regen, ok := events[len(events)-1].(*MonthlyStatementRegeneratedEvent)
		require.True(t, ok)
		assert.True(t, regen.TotalChanged)
	})

	t.Run("regeneration with identical totals leaves the flag alone", func(t *testing.T) {
		s := createTestStatement(t)
		s.NeedsConfirmation = false
		s.Status = StatementStatusDraft

		require.NoError(t, s.Regenerate(testLines(t), DefaultConfig()))

		assert.True(t, s.GrandTotal.Equal(decimal.NewFromInt(324000)))
		assert.False(t, s.NeedsConfirmation)
		assert.Equal(t, StatementStatusDraft, s.Status)

		events := s.GetDomainEvents()
		regen, ok := events[len(events)-1].(*MonthlyStatementRegeneratedEvent)
		require.True(t, ok)
		assert.False(t, regen.TotalChanged)
	})

	t.Run("confirmed statements are immutable", func(t *testing.T) {
		s := createTestStatement(t)
		require.NoError(t, s.Confirm(uuid.New()))
		grandTotal := s.GrandTotal

		err := s.Regenerate(testLines(t), DefaultConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "STATEMENT_CONFIRMED")
		assert.True(t, s.GrandTotal.Equal(grandTotal))
	})

	t.Run("deleted statements reject regeneration", func(t *testing.T) {
		s := createTestStatement(t)
		require.NoError(t, s.SoftDelete())
		assert.Error(t, s.Regenerate(testLines(t), DefaultConfig()))
	})
}

func TestStatementSoftDelete(t *testing.T) {
	t.Run("delete pending statement", func(t *testing.T) {
		s := createTestStatement(t)
		require.NoError(t, s.SoftDelete())
		assert.True(t, s.IsDeleted())
		require.NotNil(t, s.DeletedAt)
	})

	t.Run("delete confirmed statement", func(t *testing.T) {
		s := createTestStatement(t)
		require.NoError(t, s.Confirm(uuid.New()))

		require.NoError(t, s.SoftDelete())
		assert.True(t, s.IsDeleted())
		assert.Equal(t, StatementStatusConfirmed, s.Status)
		assert.NotNil(t, s.ConfirmedAt)

		events := s.GetDomainEvents()
		deleted, ok := events[len(events)-1].(*MonthlyStatementSoftDeletedEvent)
		require.True(t, ok)
		assert.True(t, deleted.WasConfirmed)
	})

	t.Run("delete twice", func(t *testing.T) {
		s := createTestStatement(t)
		require.NoError(t, s.SoftDelete())
		assert.Error(t, s.SoftDelete())
	})
}

func TestStatementRestore(t *testing.T) {
	t.Run("restore deleted statement", func(t *testing.T) {
		s := createTestStatement(t)
		require.NoError(t, s.SoftDelete())

		require.NoError(t, s.Restore())
		assert.False(t, s.IsDeleted())
		assert.Equal(t, StatementStatusPending, s.Status)

		events := s.GetDomainEvents()
		assert.Equal(t, "MonthlyStatementRestored", events[len(events)-1].EventType())
	})

	t.Run("restore keeps confirmation intact", func(t *testing.T) {
		s := createTestStatement(t)
		userID := uuid.New()
		require.NoError(t, s.Confirm(userID))
		require.NoError(t, s.SoftDelete())

		require.NoError(t, s.Restore())
		assert.True(t, s.IsConfirmed())
		require.NotNil(t, s.ConfirmedBy)
		assert.Equal(t, userID, *s.ConfirmedBy)
	})

	t.Run("restore active statement", func(t *testing.T) {
		s := createTestStatement(t)
		assert.Error(t, s.Restore())
	})
}

func TestStatementUpdateNotes(t *testing.T) {
	t.Run("update notes on pending statement", func(t *testing.T) {
		s := createTestStatement(t)
		require.NoError(t, s.UpdateNotes("Giao trước ngày 05", "khách yêu cầu đổi cây kệ A"))
		assert.Equal(t, "Giao trước ngày 05", s.Notes)
		assert.Equal(t, "khách yêu cầu đổi cây kệ A", s.InternalNotes)
	})

	t.Run("confirmed statement rejects edits", func(t *testing.T) {
		s := createTestStatement(t)
		require.NoError(t, s.Confirm(uuid.New()))
		assert.Error(t, s.UpdateNotes("x", ""))
	})

	t.Run("deleted statement rejects edits", func(t *testing.T) {
		s := createTestStatement(t)
		require.NoError(t, s.SoftDelete())
		assert.Error(t, s.UpdateNotes("x", ""))
	})
}

func TestStatementPeriodAccessors(t *testing.T) {
	s := createTestStatement(t)

	period := s.Period()
	assert.Equal(t, 2026, period.Year)
	assert.Equal(t, 1, period.Month)
	assert.Equal(t, s.PeriodStart, period.Start)
	assert.Equal(t, s.PeriodEnd, period.End)

	assert.Equal(t, "VND", string(s.GetGrandTotalMoney().Currency()))
	assert.True(t, s.GetGrandTotalMoney().Amount().Equal(decimal.NewFromInt(324000)))
}
