package njord

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/njord-contract/common"
)

const (
	symbol   = "NJORD"
	decimals = 5

	initialFragmentsSupply = 400_000_00000
	maxSupply              = 1_000_000_000_00000
	gonsExponent           = 60

	// 15 minutes of block time.
	rebaseInterval      = 15 * 60 * 1000
	rebaseRatePrecision = 10_000_000
	defaultRebaseRate   = 2362

	gonsPrefix      = 'g'
	whitelistPrefix = 'w'
	blacklistPrefix = 'b'

	scaleKey  = 's'
	configKey = 'c'
	feesKey   = 'f'
	rebaseKey = 'r'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	args := data.(struct {
		autoLiquidityFund interop.Hash160
		treasuryFund      interop.Hash160
		riskFreeFund      interop.Hash160
		supplyControl     interop.Hash160
		pair              interop.Hash160
	})

	common.CheckAddress(args.autoLiquidityFund)
	common.CheckAddress(args.treasuryFund)
	common.CheckAddress(args.riskFreeFund)
	common.CheckAddress(args.supplyControl)
	if len(args.pair) != 0 {
		common.CheckAddress(args.pair)
	}

	setConfig(ctx, Config{
		Owner:             args.treasuryFund,
		Pair:              args.pair,
		AutoLiquidityFund: args.autoLiquidityFund,
		TreasuryFund:      args.treasuryFund,
		RiskFreeFund:      args.riskFreeFund,
		SupplyControl:     args.supplyControl,
	})
	common.SetSerialized(ctx, feesKey, common.DefaultFeeTable())
	setScale(ctx, scaleForSupply(initialFragmentsSupply))
	setRebaseState(ctx, RebaseState{
		LastRebasedTime: runtime.GetTime(),
		Rate:            defaultRebaseRate,
	})

	self := runtime.GetExecutingScriptHash()
	storage.Put(ctx, whitelistKey(self), markerValue)
	storage.Put(ctx, whitelistKey(args.treasuryFund), markerValue)

	creditGons(ctx, args.treasuryFund, totalGons())

	var mintFrom interop.Hash160
	runtime.Notify("Transfer", mintFrom, args.treasuryFund, initialFragmentsSupply)

	runtime.Log("njord contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the owner.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess(getConfig(storage.GetReadOnlyContext()).Owner) {
		panic(common.ErrNotOwner)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("njord contract updated")
}

// Symbol is a NEP-17 standard method that returns NJORD token symbol.
func Symbol() string {
	return symbol
}

// Decimals is a NEP-17 standard method that returns precision of NJORD
// balances.
func Decimals() int {
	return decimals
}

// TotalSupply is a NEP-17 standard method that returns the current total
// supply. It changes with every rebase.
func TotalSupply() int {
	return getScale(storage.GetReadOnlyContext()).TotalSupply
}

// BalanceOf is a NEP-17 standard method that returns NJORD balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	if len(account) != interop.Hash160Len {
		panic("invalid account")
	}

	return balanceOf(storage.GetReadOnlyContext(), account)
}

// CirculatingSupply returns total supply without burnt tokens and without
// fees held by the contract.
func CirculatingSupply() int {
	return circulatingSupply(storage.GetReadOnlyContext())
}

// DeadAccount returns the burn account excluded from the circulating supply.
func DeadAccount() interop.Hash160 {
	return deadAccount
}

// GonsPerFragment returns the current scale factor.
func GonsPerFragment() int {
	return getScale(storage.GetReadOnlyContext()).GonsPerFragment
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Transfer is a NEP-17 standard method that transfers NJORD tokens from one
// account to another. It can be invoked only by the account owner.
//
// Trades with the pair are charged with fees unless one of the parties is
// whitelisted. The recipient receives the amount without fees. Trades may
// trigger a rebase changing balances of all accounts.
//
// It produces Transfer notification for the recipient and for every non-zero
// fee, and Rebase notification when the rebase happens.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return transfer(ctx, from, to, amount, data)
}

func transfer(ctx storage.Context, from, to interop.Hash160, amount int, data any) bool {
	if amount < 0 {
		panic(common.ErrNegativeAmount)
	}

	if len(from) != interop.Hash160Len {
		panic("invalid sender")
	}

	if !common.IsUsableAddress(from) {
		runtime.Log("bad script hashes")
		return false
	}

	var (
		cfg    = getConfig(ctx)
		exempt = isWhitelisted(ctx, from) || isWhitelisted(ctx, to)
		class  = common.Classify(from, to, cfg.Pair)
	)

	if !cfg.TransferEnabled && !exempt {
		panic(common.ErrTransferDisabled)
	}

	if class != common.ClassPlain && !cfg.TradingEnabled && !exempt {
		panic(common.ErrTradingDisabled)
	}

	if common.IsZeroAddress(to) {
		panic(common.ErrZeroAddress)
	}

	if isBlacklisted(ctx, from) || isBlacklisted(ctx, to) {
		panic(common.ErrBlacklisted)
	}

	scale := getScale(ctx)
	if amount > scale.TotalSupply || !debitGons(ctx, from, amount*scale.GonsPerFragment) {
		runtime.Log("not enough assets")
		return false
	}

	components := []common.FeeComponent{}
	if !exempt {
		components = common.FeeComponents(getFees(ctx), class)
	}

	parts, net := common.SplitFee(amount, components)
	for i := range components {
		if parts[i] == 0 {
			continue
		}

		dst := feeDestination(cfg, components[i].Kind)
		creditGons(ctx, dst, parts[i]*scale.GonsPerFragment)
		runtime.Notify("Transfer", from, dst, parts[i])
	}

	creditGons(ctx, to, net*scale.GonsPerFragment)
	runtime.Notify("Transfer", from, to, net)

	if cfg.AutoRebase && class != common.ClassPlain {
		rebaseIfDue(ctx)
	}

	self := runtime.GetExecutingScriptHash()
	if !to.Equals(cfg.Pair) && !to.Equals(self) && management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, net, data)
	}

	return true
}

// feeDestination returns the account receiving fee component of the given
// kind.
func feeDestination(cfg Config, kind int) interop.Hash160 {
	switch kind {
	case common.FeeLiquidity:
		if cfg.AutoAddLiquidity {
			return runtime.GetExecutingScriptHash()
		}
		return cfg.AutoLiquidityFund
	case common.FeeRiskFree:
		return cfg.RiskFreeFund
	case common.FeeSupplyControl:
		return cfg.SupplyControl
	default:
		// treasury and sell extra
		return cfg.TreasuryFund
	}
}

// OnNEP17Payment accepts any NEP-17 tokens. Tokens of other contracts can be
// sent to the treasury with RecoverToken.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	runtime.Log("tokens received")
}
