package njord

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/njord-contract/common"
)

// Config is a set of accounts and switches managed by the owner.
type Config struct {
	Owner interop.Hash160
	// Liquidity pair, transfers from it are buys and transfers to it are
	// sells. Empty until set.
	Pair interop.Hash160

	AutoLiquidityFund interop.Hash160
	TreasuryFund      interop.Hash160
	RiskFreeFund      interop.Hash160
	SupplyControl     interop.Hash160

	TransferEnabled  bool
	TradingEnabled   bool
	AutoRebase       bool
	OwnerRebase      bool
	AutoAddLiquidity bool
}

var markerValue = []byte{1}

func getConfig(ctx storage.Context) Config {
	data := storage.Get(ctx, configKey)
	return std.Deserialize(data.([]byte)).(Config)
}

func setConfig(ctx storage.Context, cfg Config) {
	common.SetSerialized(ctx, configKey, cfg)
}

// ownerConfig returns current configuration after the owner witness check.
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

func blacklistKey(account interop.Hash160) []byte {
	return append([]byte{blacklistPrefix}, account...)
}

func isWhitelisted(ctx storage.Context, account interop.Hash160) bool {
	return storage.Get(ctx, whitelistKey(account)) != nil
}

func isBlacklisted(ctx storage.Context, account interop.Hash160) bool {
	return storage.Get(ctx, blacklistKey(account)) != nil
}

func checkFlagChange(current, next bool) {
	if current == next {
		panic(common.ErrNothingChanged)
	}
}

// SetRebaseRate changes supply growth per rebase interval. Negative rates
// contract the supply. It can be invoked only by the owner.
//
// It produces RebaseRateChanged notification.
func SetRebaseRate(rate int) {
	ctx := storage.GetContext()
	ownerConfig(ctx)

	if !validRebaseRate(rate) {
		panic(common.ErrInvalidRebaseRate)
	}

	st := getRebaseState(ctx)
	if st.Rate == rate {
		panic(common.ErrNothingChanged)
	}

	runtime.Notify("RebaseRateChanged", st.Rate, rate)

	st.Rate = rate
	setRebaseState(ctx, st)
}

// SetAutoRebase switches automatic rebases. Enabling restarts the rebase
// schedule from the current block time. It can be invoked only by the owner.
//
// It produces AutoRebaseChanged notification.
func SetAutoRebase(flag bool) {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)
	checkFlagChange(cfg.AutoRebase, flag)

	if flag {
		st := getRebaseState(ctx)
		st.LastRebasedTime = runtime.GetTime()
		setRebaseState(ctx, st)
	}

	runtime.Notify("AutoRebaseChanged", cfg.AutoRebase, flag)

	cfg.AutoRebase = flag
	setConfig(ctx, cfg)
}

// ToggleOwnerRebase switches manual rebases. It can be invoked only by the
// owner.
//
// It produces OwnerRebaseChanged notification.
func ToggleOwnerRebase() {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)

	runtime.Notify("OwnerRebaseChanged", cfg.OwnerRebase, !cfg.OwnerRebase)

	cfg.OwnerRebase = !cfg.OwnerRebase
	setConfig(ctx, cfg)
}

// ToggleTransferStatus switches transfers between non-whitelisted accounts.
// It can be invoked only by the owner.
//
// It produces TransferStatusChanged notification.
func ToggleTransferStatus() {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)

	runtime.Notify("TransferStatusChanged", cfg.TransferEnabled, !cfg.TransferEnabled)

	cfg.TransferEnabled = !cfg.TransferEnabled
	setConfig(ctx, cfg)
}

// ToggleTradingStatus switches trades with the pair for non-whitelisted
// accounts. It can be invoked only by the owner.
//
// It produces TradingStatusChanged notification.
func ToggleTradingStatus() {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)

	runtime.Notify("TradingStatusChanged", cfg.TradingEnabled, !cfg.TradingEnabled)

	cfg.TradingEnabled = !cfg.TradingEnabled
	setConfig(ctx, cfg)
}

// SetAutoAddLiquidity switches where liquidity fees go: the contract keeps
// them when enabled, otherwise they are sent to the auto liquidity fund. It
// can be invoked only by the owner.
//
// It produces AutoAddLiquidityChanged notification.
func SetAutoAddLiquidity(flag bool) {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)
	checkFlagChange(cfg.AutoAddLiquidity, flag)

	runtime.Notify("AutoAddLiquidityChanged", cfg.AutoAddLiquidity, flag)

	cfg.AutoAddLiquidity = flag
	setConfig(ctx, cfg)
}

// SetWhitelist exempts the account from fees and from the transfer and
// trading switches. It can be invoked only by the owner.
//
// It produces WhitelistAdded notification.
func SetWhitelist(account interop.Hash160) {
	ctx := storage.GetContext()
	ownerConfig(ctx)
	common.CheckAddress(account)

	if isWhitelisted(ctx, account) {
		panic(common.ErrAlreadyWhitelisted)
	}

	storage.Put(ctx, whitelistKey(account), markerValue)
	runtime.Notify("WhitelistAdded", account)
}

// RemoveWhitelist drops the account exemption. It can be invoked only by the
// owner.
//
// It produces WhitelistRemoved notification.
func RemoveWhitelist(account interop.Hash160) {
	ctx := storage.GetContext()
	ownerConfig(ctx)
	common.CheckAddress(account)

	if !isWhitelisted(ctx, account) {
		panic(common.ErrAlreadyNotWhitelisted)
	}

	storage.Delete(ctx, whitelistKey(account))
	runtime.Notify("WhitelistRemoved", account)
}

// SetBotBlacklist blocks or unblocks transfers of the given contract. Only
// deployed contracts can be blacklisted. It can be invoked only by the owner.
//
// It produces BotBlacklisted notification.
func SetBotBlacklist(account interop.Hash160, flag bool) {
	ctx := storage.GetContext()
	ownerConfig(ctx)
	common.CheckAddress(account)

	if management.GetContract(account) == nil {
		panic(common.ErrOnlyContract)
	}

	checkFlagChange(isBlacklisted(ctx, account), flag)

	if flag {
		storage.Put(ctx, blacklistKey(account), markerValue)
	} else {
		storage.Delete(ctx, blacklistKey(account))
	}

	runtime.Notify("BotBlacklisted", account, flag)
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

// SetTreasuryFund changes the receiver of treasury and sell fees. It can be
// invoked only by the owner.
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

// SetPairAddress changes the liquidity pair account. It can be invoked only
// by the owner.
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

// SetFees replaces the fee table. Rates are in basis points, buy fees are
// the sum of the first four rates, sell fees add sellExtra. It can be invoked
// only by the owner.
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

// WithdrawAllToTreasury sends all tokens held by the contract to the treasury
// fund. It can be invoked only by the owner.
//
// It produces Transfer notification.
func WithdrawAllToTreasury() {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)

	self := runtime.GetExecutingScriptHash()
	gons := getGons(ctx, self)
	if gons == 0 {
		panic(common.ErrNothingToWithdraw)
	}

	debitGons(ctx, self, gons)
	creditGons(ctx, cfg.TreasuryFund, gons)

	runtime.Notify("Transfer", self, cfg.TreasuryFund, gons/getScale(ctx).GonsPerFragment)
}

// RecoverToken sends NEP-17 tokens of another contract mistakenly sent to
// this contract to the treasury fund. It can be invoked only by the owner.
func RecoverToken(token interop.Hash160, amount int) {
	ctx := storage.GetContext()
	cfg := ownerConfig(ctx)
	common.CheckAddress(token)

	self := runtime.GetExecutingScriptHash()
	if token.Equals(self) {
		panic(common.ErrSelfRecovery)
	}

	ok := contract.Call(token, "transfer", contract.All, self, cfg.TreasuryFund, amount, nil).(bool)
	if !ok {
		panic("can't transfer assets")
	}

	runtime.Log("tokens recovered")
}

// Owner returns the account allowed to configure the contract.
func Owner() interop.Hash160 {
	return getConfig(storage.GetReadOnlyContext()).Owner
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

// AutoRebase returns true if trades trigger rebases.
func AutoRebase() bool {
	return getConfig(storage.GetReadOnlyContext()).AutoRebase
}

// OwnerRebase returns true if the owner can rebase manually.
func OwnerRebase() bool {
	return getConfig(storage.GetReadOnlyContext()).OwnerRebase
}

// TransferEnabled returns true if non-whitelisted accounts can transfer.
func TransferEnabled() bool {
	return getConfig(storage.GetReadOnlyContext()).TransferEnabled
}

// TradingEnabled returns true if non-whitelisted accounts can trade.
func TradingEnabled() bool {
	return getConfig(storage.GetReadOnlyContext()).TradingEnabled
}

// AutoAddLiquidity returns true if the contract keeps liquidity fees.
func AutoAddLiquidity() bool {
	return getConfig(storage.GetReadOnlyContext()).AutoAddLiquidity
}

// Fees returns the current fee table.
func Fees() common.FeeTable {
	return getFees(storage.GetReadOnlyContext())
}

// IsWhitelisted checks whether the account is exempt from fees and switches.
func IsWhitelisted(account interop.Hash160) bool {
	return isWhitelisted(storage.GetReadOnlyContext(), account)
}

// IsBlacklisted checks whether the account is a blacklisted bot.
func IsBlacklisted(account interop.Hash160) bool {
	return isBlacklisted(storage.GetReadOnlyContext(), account)
}

// IterateWhitelist returns iterator over whitelisted accounts.
func IterateWhitelist() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{whitelistPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// IterateBlacklist returns iterator over blacklisted contracts.
func IterateBlacklist() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{blacklistPrefix}, storage.KeysOnly|storage.RemovePrefix)
}
