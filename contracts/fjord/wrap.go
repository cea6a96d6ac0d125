package fjord

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/njord-contract/common"
)

// ratioOf returns Njord units per wrapped unit in ratioPrecision units. It
// follows Njord total supply, which changes by rebases only, and never goes
// below the stored ratio.
func ratioOf(ctx storage.Context, cfg Config) int {
	supply := contract.Call(cfg.Njord, "totalSupply", contract.ReadOnly).(int)

	ratio := supply * ratioPrecision() / maxWrappedSupply()
	stored := common.GetInt(ctx, ratioKey)
	if stored > ratio {
		ratio = stored
	}

	if ratio == 0 {
		panic("zero exchange ratio")
	}

	return ratio
}

// updateRatio persists the current ratio if it has grown.
//
// It produces RatioChanged notification on change.
func updateRatio(ctx storage.Context, cfg Config) int {
	stored := common.GetInt(ctx, ratioKey)

	ratio := ratioOf(ctx, cfg)
	if ratio != stored {
		storage.Put(ctx, ratioKey, ratio)
		runtime.Notify("RatioChanged", stored, ratio)
	}

	return ratio
}

func checkLive(cfg Config) {
	if !cfg.Live {
		panic(common.ErrNotLive)
	}
}

// OnNEP17Payment wraps Njord tokens sent to the contract. Wrapped tokens
// are minted to the sender. Payments of other tokens are rejected.
//
// It produces Wrap and Transfer notifications.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(cfg.Njord) {
		panic(common.ErrUnexpectedToken)
	}

	checkLive(cfg)

	if amount <= 0 {
		panic(common.ErrAmountTooSmall)
	}

	ratio := updateRatio(ctx, cfg)

	wrapped := amount * ratioPrecision() / ratio
	if wrapped == 0 {
		panic(common.ErrAmountTooSmall)
	}

	mint(ctx, from, wrapped)
	runtime.Notify("Wrap", from, amount, wrapped)
}

// Unwrap burns wrapped tokens of the account and sends Njord tokens back at
// the current ratio, rounded down. It can be invoked only by the account
// owner.
//
// It produces Unwrap and Transfer notifications.
func Unwrap(account interop.Hash160, amount int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	checkLive(cfg)
	common.CheckWitness(account)

	if amount <= 0 {
		panic(common.ErrAmountTooSmall)
	}

	ratio := updateRatio(ctx, cfg)

	elastic := amount * ratio / ratioPrecision()
	if elastic == 0 {
		panic(common.ErrAmountTooSmall)
	}

	burn(ctx, account, amount)

	self := runtime.GetExecutingScriptHash()
	ok := contract.Call(cfg.Njord, "transfer", contract.All, self, account, elastic, nil).(bool)
	if !ok {
		panic("can't transfer assets")
	}

	runtime.Notify("Unwrap", account, amount, elastic)
}

func mint(ctx storage.Context, to interop.Hash160, amount int) {
	putBalance(ctx, to, getBalance(ctx, to)+amount)
	storage.Put(ctx, totalSupplyKey, common.GetInt(ctx, totalSupplyKey)+amount)

	var mintFrom interop.Hash160
	runtime.Notify("Transfer", mintFrom, to, amount)
}

func burn(ctx storage.Context, from interop.Hash160, amount int) {
	balance := getBalance(ctx, from)
	if balance < amount {
		panic(common.ErrInsufficientBalance)
	}

	putBalance(ctx, from, balance-amount)
	common.PutInt(ctx, totalSupplyKey, common.GetInt(ctx, totalSupplyKey)-amount)

	var burnTo interop.Hash160
	runtime.Notify("Transfer", from, burnTo, amount)
}

// ExchangeRate returns Njord units per wrapped unit multiplied by 10^36.
func ExchangeRate() int {
	ctx := storage.GetReadOnlyContext()
	return ratioOf(ctx, getConfig(ctx))
}

// WrappedToElastic returns amount of Njord tokens paid for the given wrapped
// amount at the current ratio.
func WrappedToElastic(amount int) int {
	ctx := storage.GetReadOnlyContext()
	return amount * ratioOf(ctx, getConfig(ctx)) / ratioPrecision()
}

// ElasticToWrapped returns amount of wrapped tokens minted for the given
// Njord amount at the current ratio.
func ElasticToWrapped(amount int) int {
	ctx := storage.GetReadOnlyContext()
	return amount * ratioPrecision() / ratioOf(ctx, getConfig(ctx))
}
