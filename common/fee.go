package common

import "github.com/nspcc-dev/neo-go/pkg/interop"

// FeeDenominator is the base of fee rates, every rate is expressed in basis
// points.
const FeeDenominator = 10000

// Transfer classes relative to the liquidity pair.
const (
	ClassPlain = iota
	ClassBuy
	ClassSell
)

// Fee components. Each contract routes a component to its own destination.
const (
	FeeLiquidity = iota
	FeeTreasury
	FeeRiskFree
	FeeSupplyControl
	FeeSellExtra
)

type (
	// FeeTable is a set of fee rates in basis points.
	FeeTable struct {
		Liquidity     int
		Treasury      int
		RiskFree      int
		SupplyControl int
		// SellExtra is charged on sells only.
		SellExtra int
	}

	// FeeComponent is a single fee rate applied to a transfer.
	FeeComponent struct {
		Kind int
		Rate int
	}
)

// DefaultFeeTable returns 2% for every component.
func DefaultFeeTable() FeeTable {
	return FeeTable{
		Liquidity:     200,
		Treasury:      200,
		RiskFree:      200,
		SupplyControl: 200,
		SellExtra:     200,
	}
}

// Classify returns ClassBuy if the pair sends tokens, ClassSell if the pair
// receives them and ClassPlain otherwise.
func Classify(from, to, pair interop.Hash160) int {
	if len(pair) != interop.Hash160Len {
		return ClassPlain
	}

	if pair.Equals(from) {
		return ClassBuy
	}

	if pair.Equals(to) {
		return ClassSell
	}

	return ClassPlain
}

// FeeComponents returns rates applied to the transfer of the given class.
// Plain transfers are not charged.
func FeeComponents(t FeeTable, class int) []FeeComponent {
	switch class {
	case ClassBuy:
		return []FeeComponent{
			FeeComponent{Kind: FeeLiquidity, Rate: t.Liquidity},
			FeeComponent{Kind: FeeTreasury, Rate: t.Treasury},
			FeeComponent{Kind: FeeRiskFree, Rate: t.RiskFree},
			FeeComponent{Kind: FeeSupplyControl, Rate: t.SupplyControl},
		}
	case ClassSell:
		return []FeeComponent{
			FeeComponent{Kind: FeeLiquidity, Rate: t.Liquidity},
			FeeComponent{Kind: FeeTreasury, Rate: t.Treasury},
			FeeComponent{Kind: FeeRiskFree, Rate: t.RiskFree},
			FeeComponent{Kind: FeeSupplyControl, Rate: t.SupplyControl},
			FeeComponent{Kind: FeeSellExtra, Rate: t.SellExtra},
		}
	default:
		return []FeeComponent{}
	}
}

// SplitFee returns fee parts for each component (rounded down) and the
// remainder credited to the recipient. The sum of parts and the remainder is
// always equal to amount.
func SplitFee(amount int, components []FeeComponent) ([]int, int) {
	parts := make([]int, len(components))
	net := amount
	for i := range components {
		parts[i] = amount * components[i].Rate / FeeDenominator
		net -= parts[i]
	}

	return parts, net
}

// ValidateFeeTable panics if any rate is negative or if buy or sell rates sum
// above FeeDenominator.
func ValidateFeeTable(t FeeTable) {
	if t.Liquidity < 0 || t.Treasury < 0 || t.RiskFree < 0 ||
		t.SupplyControl < 0 || t.SellExtra < 0 {
		panic(ErrInvalidFee)
	}

	if sumRates(FeeComponents(t, ClassSell)) > FeeDenominator {
		panic(ErrFeeTooHigh)
	}
}

// CheckFeeTableChange panics if the next table is invalid or has the same
// rates as the current one.
func CheckFeeTableChange(current, next FeeTable) {
	ValidateFeeTable(next)
	if current.Liquidity == next.Liquidity && current.Treasury == next.Treasury &&
		current.RiskFree == next.RiskFree && current.SupplyControl == next.SupplyControl &&
		current.SellExtra == next.SellExtra {
		panic(ErrNothingChanged)
	}
}

func sumRates(components []FeeComponent) int {
	var sum int
	for i := range components {
		sum += components[i].Rate
	}

	return sum
}
