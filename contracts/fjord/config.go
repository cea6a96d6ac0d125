package fjord

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/njord-contract/common"
)

// Config is a set of accounts and switches managed by the owner.
type Config struct {
	Owner interop.Hash160
	// Wrapped Njord contract.
	Njord interop.Hash160
	Pair  interop.Hash160

	AutoLiquidityFund interop.Hash160
	TreasuryFund      interop.Hash160
	RiskFreeFund      interop.Hash160
	SupplyControl     interop.Hash160

	Live bool
}

var markerValue = []byte{1}

func getConfig(ctx storage.Context) Config {
	data := storage.Get(ctx, configKey)
	return std.Deserialize(data.([]byte)).(Config)
}

func setConfig(ctx storage.Context, cfg Config) {
	common.SetSerialized(ctx, configKey, cfg)
}

func ownerConfig(ctx storage.Context) Config {
	cfg := getConfig(ctx)
	common.CheckOwnerWitness(cfg.Owner)
	return cfg
}

func getFees(ctx storage.Context) common.FeeTable {
	data := storage.Get(ctx, feesKey)
	return std.Deserialize(data.([]byte)).(common.FeeTable)
}

func whitelistKey(account interop.Hash160) []byte {
	return append([]byte{whitelistPrefix}, account...)
}

func isWhitelisted(ctx storage.Context, account interop.Hash160) bool {
	return storage.Get(ctx, whitelistKey(account)) != nil
}

// SetLiveStatus enables or disables wrapping. It can be invoked only by the
// owner.
//
// It produces LiveStatusChanged notification.
func SetLiveStatus(flag bool) {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)

	if cfg.Live == flag {
		panic(common.ErrNothingChanged)
	}

	runtime.Notify("LiveStatusChanged", cfg.Live, flag)

	cfg.Live = flag
	setConfig(ctx, cfg)
}

// ToggleWhitelist adds the account to the fee exemption list or removes it
// from there. It can be invoked only by the owner.
//
// It produces WhitelistChanged notification.
func ToggleWhitelist(account interop.Hash160) {
	ctx := storage.GetContext()
	ownerConfig(ctx)
	common.CheckAddress(account)

	flag := !isWhitelisted(ctx, account)
	if flag {
		storage.Put(ctx, whitelistKey(account), markerValue)
	} else {
		storage.Delete(ctx, whitelistKey(account))
	}

	runtime.Notify("WhitelistChanged", account, flag)
}

// SetFees replaces the fee table. It can be invoked only by the owner.
//
// It produces FeesChanged notification.
func SetFees(liquidity, treasury, riskFree, supplyControl, sellExtra int) {
	ctx := storage.GetContext()
	ownerConfig(ctx)

	next := common.FeeTable{
		Liquidity:     liquidity,
		Treasury:      treasury,
		RiskFree:      riskFree,
		SupplyControl: supplyControl,
		SellExtra:     sellExtra,
	}
	common.CheckFeeTableChange(getFees(ctx), next)

	common.SetSerialized(ctx, feesKey, next)
	runtime.Notify("FeesChanged", liquidity, treasury, riskFree, supplyControl, sellExtra)
}

// SetAutoLiquidityFund changes the receiver of liquidity fees. It can be
// invoked only by the owner.
//
// It produces AutoLiquidityFundChanged notification.
func SetAutoLiquidityFund(account interop.Hash160) {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)
	common.CheckAddressChange(cfg.AutoLiquidityFund, account)

	runtime.Notify("AutoLiquidityFundChanged", cfg.AutoLiquidityFund, account)

	cfg.AutoLiquidityFund = account
	setConfig(ctx, cfg)
}

// SetTreasuryFund changes the receiver of treasury fees. It can be invoked
// only by the owner.
//
// It produces TreasuryFundChanged notification.
func SetTreasuryFund(account interop.Hash160) {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)
	common.CheckAddressChange(cfg.TreasuryFund, account)

	runtime.Notify("TreasuryFundChanged", cfg.TreasuryFund, account)

	cfg.TreasuryFund = account
	setConfig(ctx, cfg)
}

// SetRiskFreeFund changes the receiver of risk-free fees. It can be invoked
// only by the owner.
//
// It produces RiskFreeFundChanged notification.
func SetRiskFreeFund(account interop.Hash160) {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)
	common.CheckAddressChange(cfg.RiskFreeFund, account)

	runtime.Notify("RiskFreeFundChanged", cfg.RiskFreeFund, account)

	cfg.RiskFreeFund = account
	setConfig(ctx, cfg)
}

// SetSupplyControl changes the receiver of supply control fees. It can be
// invoked only by the owner.
//
// It produces SupplyControlChanged notification.
func SetSupplyControl(account interop.Hash160) {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)
	common.CheckAddressChange(cfg.SupplyControl, account)

	runtime.Notify("SupplyControlChanged", cfg.SupplyControl, account)

	cfg.SupplyControl = account
	setConfig(ctx, cfg)
}

// SetPairAddress changes the liquidity pair of wrapped tokens. It can be
// invoked only by the owner.
//
// It produces PairAddressChanged notification.
func SetPairAddress(account interop.Hash160) {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)
	common.CheckAddressChange(cfg.Pair, account)

	runtime.Notify("PairAddressChanged", cfg.Pair, account)

	cfg.Pair = account
	setConfig(ctx, cfg)
}

// TransferOwnership hands the owner role over to another account. It can be
// invoked only by the current owner.
//
// It produces OwnershipTransferred notification.
func TransferOwnership(account interop.Hash160) {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)
	common.CheckAddressChange(cfg.Owner, account)

	runtime.Notify("OwnershipTransferred", cfg.Owner, account)

	cfg.Owner = account
	setConfig(ctx, cfg)
}

// Owner returns the account allowed to configure the contract.
func Owner() interop.Hash160 {
	return getConfig(storage.GetReadOnlyContext()).Owner
}

// Njord returns address of the wrapped token contract.
func Njord() interop.Hash160 {
	return getConfig(storage.GetReadOnlyContext()).Njord
}

// Pair returns the liquidity pair account.
func Pair() interop.Hash160 {
	return getConfig(storage.GetReadOnlyContext()).Pair
}

// AutoLiquidityFund returns the receiver of liquidity fees.
func AutoLiquidityFund() interop.Hash160 {
	return getConfig(storage.GetReadOnlyContext()).AutoLiquidityFund
}

// TreasuryFund returns the receiver of treasury fees.
func TreasuryFund() interop.Hash160 {
	return getConfig(storage.GetReadOnlyContext()).TreasuryFund
}

// RiskFreeFund returns the receiver of risk-free fees.
func RiskFreeFund() interop.Hash160 {
	return getConfig(storage.GetReadOnlyContext()).RiskFreeFund
}

// SupplyControl returns the receiver of supply control fees.
func SupplyControl() interop.Hash160 {
	return getConfig(storage.GetReadOnlyContext()).SupplyControl
}

// Live returns true if wrapping is enabled.
func Live() bool {
	return getConfig(storage.GetReadOnlyContext()).Live
}

// Fees returns the current fee table.
func Fees() common.FeeTable {
	return getFees(storage.GetReadOnlyContext())
}

// IsWhitelisted checks whether the account is exempt from fees.
func IsWhitelisted(account interop.Hash160) bool {
	return isWhitelisted(storage.GetReadOnlyContext(), account)
}

// IterateWhitelist returns iterator over whitelisted accounts.
func IterateWhitelist() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{whitelistPrefix}, storage.KeysOnly|storage.RemovePrefix)
}
