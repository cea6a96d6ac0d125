package njord

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/math"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/njord-contract/common"
)

// Scale binds internal gons to the visible token units. It is changed by
// rebases only.
type Scale struct {
	TotalSupply     int
	GonsPerFragment int
}

// deadAccount is a burn address, 0x000000000000000000000000000000000000dead
// in the usual script hash notation. Its balance is not circulating.
var deadAccount = interop.Hash160{
	0xad, 0xde, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// totalGons is a fixed amount of gons shared by all accounts. It is a
// multiple of the initial supply, so the initial distribution is exact.
func totalGons() int {
	return initialFragmentsSupply * math.Pow(10, gonsExponent)
}

// minGonsPerFragment is the scale floor matching the maximum supply.
func minGonsPerFragment() int {
	return totalGons() / maxSupply
}

func getScale(ctx storage.Context) Scale {
	data := storage.Get(ctx, scaleKey)
	return std.Deserialize(data.([]byte)).(Scale)
}

func setScale(ctx storage.Context, s Scale) {
	common.SetSerialized(ctx, scaleKey, s)
}

// scaleForSupply returns scale of the given total supply. It panics if the
// supply is out of (0, maxSupply] range or the factor drops below the floor.
func scaleForSupply(supply int) Scale {
	if supply <= 0 || supply > maxSupply {
		panic(common.ErrSupplyOutOfRange)
	}

	gpf := totalGons() / supply
	if gpf < minGonsPerFragment() {
		panic(common.ErrSupplyOutOfRange)
	}

	return Scale{
		TotalSupply:     supply,
		GonsPerFragment: gpf,
	}
}

func gonsKey(account interop.Hash160) []byte {
	return append([]byte{gonsPrefix}, account...)
}

func getGons(ctx storage.Context, account interop.Hash160) int {
	return common.GetInt(ctx, gonsKey(account))
}

func creditGons(ctx storage.Context, account interop.Hash160, amount int) {
	common.PutInt(ctx, gonsKey(account), getGons(ctx, account)+amount)
}

// debitGons returns false and leaves the balance untouched if the account
// holds less than amount.
func debitGons(ctx storage.Context, account interop.Hash160, amount int) bool {
	current := getGons(ctx, account)
	if current < amount {
		return false
	}

	common.PutInt(ctx, gonsKey(account), current-amount)
	return true
}

func balanceOf(ctx storage.Context, account interop.Hash160) int {
	return getGons(ctx, account) / getScale(ctx).GonsPerFragment
}

// circulatingSupply excludes burnt tokens and fees held by the contract.
func circulatingSupply(ctx storage.Context) int {
	var (
		scale = getScale(ctx)
		self  = runtime.GetExecutingScriptHash()
		gons  = totalGons() - getGons(ctx, deadAccount) - getGons(ctx, self)
	)

	return gons / scale.GonsPerFragment
}
