package fjord

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/math"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/njord-contract/common"
)

const (
	symbol   = "FJORD"
	decimals = 18

	maxWrappedTokens = 1_000_000
	ratioExponent    = 36

	balancePrefix   = 'a'
	whitelistPrefix = 'w'

	totalSupplyKey = 't'
	ratioKey       = 'x'
	configKey      = 'c'
	feesKey        = 'f'
)

// maxWrappedSupply is the amount of wrapped units representing the whole
// supply of Njord.
func maxWrappedSupply() int {
	return maxWrappedTokens * math.Pow(10, decimals)
}

func ratioPrecision() int {
	return math.Pow(10, ratioExponent)
}

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
		njord             interop.Hash160
		autoLiquidityFund interop.Hash160
		treasuryFund      interop.Hash160
		riskFreeFund      interop.Hash160
		supplyControl     interop.Hash160
	})

	common.CheckAddress(args.njord)
	common.CheckAddress(args.autoLiquidityFund)
	common.CheckAddress(args.treasuryFund)
	common.CheckAddress(args.riskFreeFund)
	common.CheckAddress(args.supplyControl)

	tx := runtime.GetScriptContainer()

	setConfig(ctx, Config{
		Owner:             tx.Sender,
		Njord:             args.njord,
		AutoLiquidityFund: args.autoLiquidityFund,
		TreasuryFund:      args.treasuryFund,
		RiskFreeFund:      args.riskFreeFund,
		SupplyControl:     args.supplyControl,
	})
	common.SetSerialized(ctx, feesKey, common.DefaultFeeTable())

	self := runtime.GetExecutingScriptHash()
	storage.Put(ctx, whitelistKey(self), markerValue)
	storage.Put(ctx, whitelistKey(args.treasuryFund), markerValue)

	runtime.Log("fjord contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the owner.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess(getConfig(storage.GetReadOnlyContext()).Owner) {
		panic(common.ErrNotOwner)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("fjord contract updated")
}

// Symbol is a NEP-17 standard method that returns FJORD token symbol.
func Symbol() string {
	return symbol
}

// Decimals is a NEP-17 standard method that returns precision of FJORD
// balances.
func Decimals() int {
	return decimals
}

// TotalSupply is a NEP-17 standard method that returns amount of wrapped
// tokens in circulation.
func TotalSupply() int {
	return common.GetInt(storage.GetReadOnlyContext(), totalSupplyKey)
}

// BalanceOf is a NEP-17 standard method that returns FJORD balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	if len(account) != interop.Hash160Len {
		panic("invalid account")
	}

	return getBalance(storage.GetReadOnlyContext(), account)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Transfer is a NEP-17 standard method that transfers FJORD tokens from one
// account to another. It can be invoked only by the account owner. Trades
// with the pair are charged with fees unless one of the parties is
// whitelisted.
//
// It produces Transfer notification for the recipient and for every non-zero
// fee.
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

	if common.IsZeroAddress(to) {
		panic(common.ErrZeroAddress)
	}

	balance := getBalance(ctx, from)
	if balance < amount {
		runtime.Log("not enough assets")
		return false
	}

	var (
		cfg        = getConfig(ctx)
		components = []common.FeeComponent{}
	)

	if !isWhitelisted(ctx, from) && !isWhitelisted(ctx, to) {
		components = common.FeeComponents(getFees(ctx), common.Classify(from, to, cfg.Pair))
	}

	parts, net := common.SplitFee(amount, components)

	putBalance(ctx, from, balance-amount)
	for i := range components {
		if parts[i] == 0 {
			continue
		}

		dst := feeDestination(cfg, components[i].Kind)
		putBalance(ctx, dst, getBalance(ctx, dst)+parts[i])
		runtime.Notify("Transfer", from, dst, parts[i])
	}

	putBalance(ctx, to, getBalance(ctx, to)+net)
	runtime.Notify("Transfer", from, to, net)

	self := runtime.GetExecutingScriptHash()
	if !to.Equals(cfg.Pair) && !to.Equals(self) && management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, net, data)
	}

	return true
}

func feeDestination(cfg Config, kind int) interop.Hash160 {
	switch kind {
	case common.FeeLiquidity:
		return cfg.AutoLiquidityFund
	case common.FeeRiskFree:
		return cfg.RiskFreeFund
	case common.FeeSupplyControl:
		return cfg.SupplyControl
	default:
		return cfg.TreasuryFund
	}
}

func balanceKey(account interop.Hash160) []byte {
	return append([]byte{balancePrefix}, account...)
}

func getBalance(ctx storage.Context, account interop.Hash160) int {
	return common.GetInt(ctx, balanceKey(account))
}

func putBalance(ctx storage.Context, account interop.Hash160, amount int) {
	common.PutInt(ctx, balanceKey(account), amount)
}
