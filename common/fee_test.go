package common

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/stretchr/testify/require"
)

func TestSplitFee(t *testing.T) {
	table := DefaultFeeTable()

	t.Run("buy", func(t *testing.T) {
		parts, net := SplitFee(1_000_000, FeeComponents(table, ClassBuy))
		require.Equal(t, []int{20_000, 20_000, 20_000, 20_000}, parts)
		require.Equal(t, 920_000, net)
	})

	t.Run("sell", func(t *testing.T) {
		parts, net := SplitFee(1_000_000, FeeComponents(table, ClassSell))
		require.Len(t, parts, 5)
		require.Equal(t, 900_000, net)
	})

	t.Run("plain", func(t *testing.T) {
		parts, net := SplitFee(1_000_000, FeeComponents(table, ClassPlain))
		require.Empty(t, parts)
		require.Equal(t, 1_000_000, net)
	})

	t.Run("rounding", func(t *testing.T) {
		uneven := FeeTable{Liquidity: 333, Treasury: 333, RiskFree: 333, SupplyControl: 1, SellExtra: 7}
		for _, amount := range []int{0, 1, 29, 31, 9_999, 10_001, 123_456_789} {
			for _, class := range []int{ClassBuy, ClassSell} {
				parts, net := SplitFee(amount, FeeComponents(uneven, class))

				sum := net
				for i := range parts {
					require.Equal(t, amount*FeeComponents(uneven, class)[i].Rate/FeeDenominator, parts[i])
					sum += parts[i]
				}
				require.Equal(t, amount, sum, "amount %d, class %d", amount, class)
				require.GreaterOrEqual(t, net, 0)
			}
		}
	})
}

func TestValidateFeeTable(t *testing.T) {
	require.NotPanics(t, func() { ValidateFeeTable(DefaultFeeTable()) })
	require.NotPanics(t, func() { ValidateFeeTable(FeeTable{Liquidity: FeeDenominator}) })
	require.NotPanics(t, func() { ValidateFeeTable(FeeTable{}) })

	require.PanicsWithValue(t, ErrFeeTooHigh, func() {
		ValidateFeeTable(FeeTable{Liquidity: 5000, SellExtra: 5001})
	})
	require.PanicsWithValue(t, ErrInvalidFee, func() {
		ValidateFeeTable(FeeTable{Treasury: -1})
	})
}

func TestCheckFeeTableChange(t *testing.T) {
	current := DefaultFeeTable()

	require.PanicsWithValue(t, ErrNothingChanged, func() { CheckFeeTableChange(current, DefaultFeeTable()) })
	require.PanicsWithValue(t, ErrFeeTooHigh, func() {
		CheckFeeTableChange(current, FeeTable{Liquidity: 5000, SellExtra: 5001})
	})

	next := DefaultFeeTable()
	next.SellExtra = 0
	require.NotPanics(t, func() { CheckFeeTableChange(current, next) })
}

func TestIsZeroAddress(t *testing.T) {
	require.True(t, IsZeroAddress(nil))
	require.True(t, IsZeroAddress(make(interop.Hash160, interop.Hash160Len)))
	require.True(t, IsZeroAddress(interop.Hash160{1, 2, 3}))

	addr := make(interop.Hash160, interop.Hash160Len)
	addr[19] = 1
	require.False(t, IsZeroAddress(addr))

	require.PanicsWithValue(t, ErrZeroAddress, func() { CheckAddressChange(addr, nil) })
}
