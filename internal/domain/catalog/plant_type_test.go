package catalog

import (
	"testing"

	"github.com/plantrent/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlantType(t *testing.T) {
	t.Run("creates plant type successfully", func(t *testing.T) {
		plantType, err := NewPlantType("KT-M", "Kim Tiền", "M")

		require.NoError(t, err)
		assert.Equal(t, "KT-M", plantType.Code)
		assert.Equal(t, "Kim Tiền", plantType.Name)
		assert.Equal(t, "M", plantType.SizeSpec)
		assert.Equal(t, PlantTypeStatusActive, plantType.Status)
		assert.True(t, plantType.DefaultPrice.IsZero())
		assert.Len(t, plantType.GetDomainEvents(), 1)
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		plantType, err := NewPlantType("kt-m", "Kim Tiền", "M")

		require.NoError(t, err)
		assert.Equal(t, "KT-M", plantType.Code)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		_, err := NewPlantType("", "Kim Tiền", "M")
		assert.Error(t, err)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewPlantType("KT-M", "", "M")
		assert.Error(t, err)
	})
}

func TestPlantTypeSetDefaultPrice(t *testing.T) {
	plantType, _ := NewPlantType("KT-M", "Kim Tiền", "M")
	plantType.ClearDomainEvents()

	err := plantType.SetDefaultPrice(valueobject.NewMoneyVND(decimal.NewFromInt(100000)))
	require.NoError(t, err)
	assert.True(t, plantType.DefaultPrice.Equal(decimal.NewFromInt(100000)))

	events := plantType.GetDomainEvents()
	require.Len(t, events, 1)
	priceChanged, ok := events[0].(*PlantTypePriceChangedEvent)
	require.True(t, ok)
	assert.True(t, priceChanged.OldPrice.IsZero())
	assert.True(t, priceChanged.NewPrice.Equal(decimal.NewFromInt(100000)))
}

func TestPlantTypeRetireReinstate(t *testing.T) {
	plantType, _ := NewPlantType("KT-M", "Kim Tiền", "M")

	require.NoError(t, plantType.Retire())
	assert.Equal(t, PlantTypeStatusRetired, plantType.Status)
	assert.False(t, plantType.IsActive())

	assert.Error(t, plantType.Retire())

	require.NoError(t, plantType.Reinstate())
	assert.True(t, plantType.IsActive())

	assert.Error(t, plantType.Reinstate())
}

func TestPlantTypeUpdate(t *testing.T) {
	plantType, _ := NewPlantType("KT-M", "Kim Tiền", "M")

	require.NoError(t, plantType.Update("Kim Tiền Lớn", "L", "chậu sứ 40cm"))
	assert.Equal(t, "Kim Tiền Lớn", plantType.Name)
	assert.Equal(t, "L", plantType.SizeSpec)
	assert.Equal(t, "chậu sứ 40cm", plantType.Description)

	assert.Error(t, plantType.Update("", "L", ""))
}
