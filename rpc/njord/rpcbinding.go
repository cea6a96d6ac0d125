// Package njord contains RPC wrappers for Njord contract.
package njord

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// CommonFeeTable is a contract-specific common.FeeTable type used by its methods.
type CommonFeeTable struct {
	Liquidity *big.Int
	Treasury *big.Int
	RiskFree *big.Int
	SupplyControl *big.Int
	SellExtra *big.Int
}

// AutoAddLiquidityChangedEvent represents "AutoAddLiquidityChanged" event emitted by the contract.
type AutoAddLiquidityChangedEvent struct {
	OldStatus bool
	NewStatus bool
}

// AutoLiquidityFundChangedEvent represents "AutoLiquidityFundChanged" event emitted by the contract.
type AutoLiquidityFundChangedEvent struct {
	OldAccount util.Uint160
	NewAccount util.Uint160
}

// AutoRebaseChangedEvent represents "AutoRebaseChanged" event emitted by the contract.
type AutoRebaseChangedEvent struct {
	OldStatus bool
	NewStatus bool
}

// BotBlacklistedEvent represents "BotBlacklisted" event emitted by the contract.
type BotBlacklistedEvent struct {
	Account util.Uint160
	Flag bool
}

// FeesChangedEvent represents "FeesChanged" event emitted by the contract.
type FeesChangedEvent struct {
	Liquidity *big.Int
	Treasury *big.Int
	RiskFree *big.Int
	SupplyControl *big.Int
	SellExtra *big.Int
}

// OwnerRebaseChangedEvent represents "OwnerRebaseChanged" event emitted by the contract.
type OwnerRebaseChangedEvent struct {
	OldStatus bool
	NewStatus bool
}

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by the contract.
type OwnershipTransferredEvent struct {
	OldOwner util.Uint160
	NewOwner util.Uint160
}

// PairAddressChangedEvent represents "PairAddressChanged" event emitted by the contract.
type PairAddressChangedEvent struct {
	OldAccount util.Uint160
	NewAccount util.Uint160
}

// RebaseEvent represents "Rebase" event emitted by the contract.
type RebaseEvent struct {
	Time *big.Int
	OldSupply *big.Int
	NewSupply *big.Int
}

// RebaseRateChangedEvent represents "RebaseRateChanged" event emitted by the contract.
type RebaseRateChangedEvent struct {
	OldRate *big.Int
	NewRate *big.Int
}

// RiskFreeFundChangedEvent represents "RiskFreeFundChanged" event emitted by the contract.
type RiskFreeFundChangedEvent struct {
	OldAccount util.Uint160
	NewAccount util.Uint160
}

// SupplyControlChangedEvent represents "SupplyControlChanged" event emitted by the contract.
type SupplyControlChangedEvent struct {
	OldAccount util.Uint160
	NewAccount util.Uint160
}

// TradingStatusChangedEvent represents "TradingStatusChanged" event emitted by the contract.
type TradingStatusChangedEvent struct {
	OldStatus bool
	NewStatus bool
}

// TransferStatusChangedEvent represents "TransferStatusChanged" event emitted by the contract.
type TransferStatusChangedEvent struct {
	OldStatus bool
	NewStatus bool
}

// TreasuryFundChangedEvent represents "TreasuryFundChanged" event emitted by the contract.
type TreasuryFundChangedEvent struct {
	OldAccount util.Uint160
	NewAccount util.Uint160
}

// WhitelistAddedEvent represents "WhitelistAdded" event emitted by the contract.
type WhitelistAddedEvent struct {
	Account util.Uint160
}

// WhitelistRemovedEvent represents "WhitelistRemoved" event emitted by the contract.
type WhitelistRemovedEvent struct {
	Account util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep17.TokenReader
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep17.TokenWriter
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep17.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep17t = nep17.New(actor, hash)
	return &Contract{ContractReader{nep17t.TokenReader, actor, hash}, nep17t.TokenWriter, actor, hash}
}

// AutoAddLiquidity invokes `autoAddLiquidity` method of contract.
func (c *ContractReader) AutoAddLiquidity() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "autoAddLiquidity"))
}

// AutoLiquidityFund invokes `autoLiquidityFund` method of contract.
func (c *ContractReader) AutoLiquidityFund() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "autoLiquidityFund"))
}

// AutoRebase invokes `autoRebase` method of contract.
func (c *ContractReader) AutoRebase() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "autoRebase"))
}

// CirculatingSupply invokes `circulatingSupply` method of contract.
func (c *ContractReader) CirculatingSupply() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "circulatingSupply"))
}

// DeadAccount invokes `deadAccount` method of contract.
func (c *ContractReader) DeadAccount() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "deadAccount"))
}

// Fees invokes `fees` method of contract.
func (c *ContractReader) Fees() (*CommonFeeTable, error) {
	return itemToCommonFeeTable(unwrap.Item(c.invoker.Call(c.hash, "fees")))
}

// GonsPerFragment invokes `gonsPerFragment` method of contract.
func (c *ContractReader) GonsPerFragment() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "gonsPerFragment"))
}

// IsBlacklisted invokes `isBlacklisted` method of contract.
func (c *ContractReader) IsBlacklisted(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isBlacklisted", account))
}

// IsWhitelisted invokes `isWhitelisted` method of contract.
func (c *ContractReader) IsWhitelisted(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isWhitelisted", account))
}

// IterateBlacklist invokes `iterateBlacklist` method of contract.
func (c *ContractReader) IterateBlacklist() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateBlacklist"))
}

// IterateBlacklistExpanded is similar to IterateBlacklist (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateBlacklistExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateBlacklist", _numOfIteratorItems))
}

// IterateWhitelist invokes `iterateWhitelist` method of contract.
func (c *ContractReader) IterateWhitelist() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateWhitelist"))
}

// IterateWhitelistExpanded is similar to IterateWhitelist (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateWhitelistExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateWhitelist", _numOfIteratorItems))
}

// LastRebasedTime invokes `lastRebasedTime` method of contract.
func (c *ContractReader) LastRebasedTime() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "lastRebasedTime"))
}

// NextRebaseTime invokes `nextRebaseTime` method of contract.
func (c *ContractReader) NextRebaseTime() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "nextRebaseTime"))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// OwnerRebase invokes `ownerRebase` method of contract.
func (c *ContractReader) OwnerRebase() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "ownerRebase"))
}

// Pair invokes `pair` method of contract.
func (c *ContractReader) Pair() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "pair"))
}

// RebaseRate invokes `rebaseRate` method of contract.
func (c *ContractReader) RebaseRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rebaseRate"))
}

// RiskFreeFund invokes `riskFreeFund` method of contract.
func (c *ContractReader) RiskFreeFund() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "riskFreeFund"))
}

// SupplyControl invokes `supplyControl` method of contract.
func (c *ContractReader) SupplyControl() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "supplyControl"))
}

// TradingEnabled invokes `tradingEnabled` method of contract.
func (c *ContractReader) TradingEnabled() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "tradingEnabled"))
}

// TransferEnabled invokes `transferEnabled` method of contract.
func (c *ContractReader) TransferEnabled() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "transferEnabled"))
}

// TreasuryFund invokes `treasuryFund` method of contract.
func (c *ContractReader) TreasuryFund() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "treasuryFund"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// ManualRebase creates a transaction invoking `manualRebase` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ManualRebase() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "manualRebase")
}

// ManualRebaseTransaction creates a transaction invoking `manualRebase` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ManualRebaseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "manualRebase")
}

// ManualRebaseUnsigned creates a transaction invoking `manualRebase` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ManualRebaseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "manualRebase", nil)
}

// Rebase creates a transaction invoking `rebase` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Rebase() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "rebase")
}

// RebaseTransaction creates a transaction invoking `rebase` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RebaseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "rebase")
}

// RebaseUnsigned creates a transaction invoking `rebase` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RebaseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "rebase", nil)
}

// RecoverToken creates a transaction invoking `recoverToken` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RecoverToken(token util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "recoverToken", token, amount)
}

// RecoverTokenTransaction creates a transaction invoking `recoverToken` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RecoverTokenTransaction(token util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "recoverToken", token, amount)
}

// RecoverTokenUnsigned creates a transaction invoking `recoverToken` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RecoverTokenUnsigned(token util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "recoverToken", nil, token, amount)
}

// RemoveWhitelist creates a transaction invoking `removeWhitelist` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveWhitelist(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeWhitelist", account)
}

// RemoveWhitelistTransaction creates a transaction invoking `removeWhitelist` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveWhitelistTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeWhitelist", account)
}

// RemoveWhitelistUnsigned creates a transaction invoking `removeWhitelist` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveWhitelistUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeWhitelist", nil, account)
}

// SetAutoAddLiquidity creates a transaction invoking `setAutoAddLiquidity` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAutoAddLiquidity(flag bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAutoAddLiquidity", flag)
}

// SetAutoAddLiquidityTransaction creates a transaction invoking `setAutoAddLiquidity` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAutoAddLiquidityTransaction(flag bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAutoAddLiquidity", flag)
}

// SetAutoAddLiquidityUnsigned creates a transaction invoking `setAutoAddLiquidity` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAutoAddLiquidityUnsigned(flag bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAutoAddLiquidity", nil, flag)
}

// SetAutoLiquidityFund creates a transaction invoking `setAutoLiquidityFund` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAutoLiquidityFund(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAutoLiquidityFund", account)
}

// SetAutoLiquidityFundTransaction creates a transaction invoking `setAutoLiquidityFund` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAutoLiquidityFundTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAutoLiquidityFund", account)
}

// SetAutoLiquidityFundUnsigned creates a transaction invoking `setAutoLiquidityFund` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAutoLiquidityFundUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAutoLiquidityFund", nil, account)
}

// SetAutoRebase creates a transaction invoking `setAutoRebase` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAutoRebase(flag bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAutoRebase", flag)
}

// SetAutoRebaseTransaction creates a transaction invoking `setAutoRebase` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAutoRebaseTransaction(flag bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAutoRebase", flag)
}

// SetAutoRebaseUnsigned creates a transaction invoking `setAutoRebase` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAutoRebaseUnsigned(flag bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAutoRebase", nil, flag)
}

// SetBotBlacklist creates a transaction invoking `setBotBlacklist` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetBotBlacklist(account util.Uint160, flag bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setBotBlacklist", account, flag)
}

// SetBotBlacklistTransaction creates a transaction invoking `setBotBlacklist` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetBotBlacklistTransaction(account util.Uint160, flag bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setBotBlacklist", account, flag)
}

// SetBotBlacklistUnsigned creates a transaction invoking `setBotBlacklist` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetBotBlacklistUnsigned(account util.Uint160, flag bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setBotBlacklist", nil, account, flag)
}

// SetFees creates a transaction invoking `setFees` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetFees(liquidity *big.Int, treasury *big.Int, riskFree *big.Int, supplyControl *big.Int, sellExtra *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setFees", liquidity, treasury, riskFree, supplyControl, sellExtra)
}

// SetFeesTransaction creates a transaction invoking `setFees` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetFeesTransaction(liquidity *big.Int, treasury *big.Int, riskFree *big.Int, supplyControl *big.Int, sellExtra *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setFees", liquidity, treasury, riskFree, supplyControl, sellExtra)
}

// SetFeesUnsigned creates a transaction invoking `setFees` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetFeesUnsigned(liquidity *big.Int, treasury *big.Int, riskFree *big.Int, supplyControl *big.Int, sellExtra *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setFees", nil, liquidity, treasury, riskFree, supplyControl, sellExtra)
}

// SetPairAddress creates a transaction invoking `setPairAddress` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetPairAddress(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setPairAddress", account)
}

// SetPairAddressTransaction creates a transaction invoking `setPairAddress` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetPairAddressTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setPairAddress", account)
}

// SetPairAddressUnsigned creates a transaction invoking `setPairAddress` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetPairAddressUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setPairAddress", nil, account)
}

// SetRebaseRate creates a transaction invoking `setRebaseRate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetRebaseRate(rate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setRebaseRate", rate)
}

// SetRebaseRateTransaction creates a transaction invoking `setRebaseRate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetRebaseRateTransaction(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setRebaseRate", rate)
}

// SetRebaseRateUnsigned creates a transaction invoking `setRebaseRate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetRebaseRateUnsigned(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setRebaseRate", nil, rate)
}

// SetRiskFreeFund creates a transaction invoking `setRiskFreeFund` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetRiskFreeFund(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setRiskFreeFund", account)
}

// SetRiskFreeFundTransaction creates a transaction invoking `setRiskFreeFund` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetRiskFreeFundTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setRiskFreeFund", account)
}

// SetRiskFreeFundUnsigned creates a transaction invoking `setRiskFreeFund` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetRiskFreeFundUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setRiskFreeFund", nil, account)
}

// SetSupplyControl creates a transaction invoking `setSupplyControl` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetSupplyControl(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setSupplyControl", account)
}

// SetSupplyControlTransaction creates a transaction invoking `setSupplyControl` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetSupplyControlTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setSupplyControl", account)
}

// SetSupplyControlUnsigned creates a transaction invoking `setSupplyControl` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetSupplyControlUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setSupplyControl", nil, account)
}

// SetTreasuryFund creates a transaction invoking `setTreasuryFund` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTreasuryFund(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTreasuryFund", account)
}

// SetTreasuryFundTransaction creates a transaction invoking `setTreasuryFund` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTreasuryFundTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTreasuryFund", account)
}

// SetTreasuryFundUnsigned creates a transaction invoking `setTreasuryFund` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTreasuryFundUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTreasuryFund", nil, account)
}

// SetWhitelist creates a transaction invoking `setWhitelist` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetWhitelist(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setWhitelist", account)
}

// SetWhitelistTransaction creates a transaction invoking `setWhitelist` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetWhitelistTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setWhitelist", account)
}

// SetWhitelistUnsigned creates a transaction invoking `setWhitelist` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetWhitelistUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setWhitelist", nil, account)
}

// ToggleOwnerRebase creates a transaction invoking `toggleOwnerRebase` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ToggleOwnerRebase() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "toggleOwnerRebase")
}

// ToggleOwnerRebaseTransaction creates a transaction invoking `toggleOwnerRebase` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ToggleOwnerRebaseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "toggleOwnerRebase")
}

// ToggleOwnerRebaseUnsigned creates a transaction invoking `toggleOwnerRebase` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ToggleOwnerRebaseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "toggleOwnerRebase", nil)
}

// ToggleTradingStatus creates a transaction invoking `toggleTradingStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ToggleTradingStatus() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "toggleTradingStatus")
}

// ToggleTradingStatusTransaction creates a transaction invoking `toggleTradingStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ToggleTradingStatusTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "toggleTradingStatus")
}

// ToggleTradingStatusUnsigned creates a transaction invoking `toggleTradingStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ToggleTradingStatusUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "toggleTradingStatus", nil)
}

// ToggleTransferStatus creates a transaction invoking `toggleTransferStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ToggleTransferStatus() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "toggleTransferStatus")
}

// ToggleTransferStatusTransaction creates a transaction invoking `toggleTransferStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ToggleTransferStatusTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "toggleTransferStatus")
}

// ToggleTransferStatusUnsigned creates a transaction invoking `toggleTransferStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ToggleTransferStatusUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "toggleTransferStatus", nil)
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", account)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", account)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, account)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// WithdrawAllToTreasury creates a transaction invoking `withdrawAllToTreasury` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawAllToTreasury() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawAllToTreasury")
}

// WithdrawAllToTreasuryTransaction creates a transaction invoking `withdrawAllToTreasury` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawAllToTreasuryTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawAllToTreasury")
}

// WithdrawAllToTreasuryUnsigned creates a transaction invoking `withdrawAllToTreasury` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawAllToTreasuryUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawAllToTreasury", nil)
}

// itemToCommonFeeTable converts stack item into *CommonFeeTable.
func itemToCommonFeeTable(item stackitem.Item, err error) (*CommonFeeTable, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CommonFeeTable)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CommonFeeTable from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CommonFeeTable) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Liquidity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Liquidity: %w", err)
	}

	index++
	res.Treasury, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Treasury: %w", err)
	}

	index++
	res.RiskFree, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RiskFree: %w", err)
	}

	index++
	res.SupplyControl, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SupplyControl: %w", err)
	}

	index++
	res.SellExtra, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SellExtra: %w", err)
	}

	return nil
}

// AutoAddLiquidityChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "AutoAddLiquidityChanged" name from the provided [result.ApplicationLog].
func AutoAddLiquidityChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AutoAddLiquidityChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AutoAddLiquidityChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AutoAddLiquidityChanged" {
				continue
			}
			event := new(AutoAddLiquidityChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AutoAddLiquidityChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AutoAddLiquidityChangedEvent or
// returns an error if it's not possible to do to so.
func (e *AutoAddLiquidityChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldStatus, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field OldStatus: %w", err)
	}

	index++
	e.NewStatus, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field NewStatus: %w", err)
	}

	return nil
}

// AutoLiquidityFundChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "AutoLiquidityFundChanged" name from the provided [result.ApplicationLog].
func AutoLiquidityFundChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AutoLiquidityFundChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AutoLiquidityFundChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AutoLiquidityFundChanged" {
				continue
			}
			event := new(AutoLiquidityFundChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AutoLiquidityFundChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AutoLiquidityFundChangedEvent or
// returns an error if it's not possible to do to so.
func (e *AutoLiquidityFundChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldAccount, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OldAccount: %w", err)
	}

	index++
	e.NewAccount, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewAccount: %w", err)
	}

	return nil
}

// AutoRebaseChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "AutoRebaseChanged" name from the provided [result.ApplicationLog].
func AutoRebaseChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AutoRebaseChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AutoRebaseChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AutoRebaseChanged" {
				continue
			}
			event := new(AutoRebaseChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AutoRebaseChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AutoRebaseChangedEvent or
// returns an error if it's not possible to do to so.
func (e *AutoRebaseChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldStatus, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field OldStatus: %w", err)
	}

	index++
	e.NewStatus, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field NewStatus: %w", err)
	}

	return nil
}

// BotBlacklistedEventsFromApplicationLog retrieves a set of all emitted events
// with "BotBlacklisted" name from the provided [result.ApplicationLog].
func BotBlacklistedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BotBlacklistedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BotBlacklistedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BotBlacklisted" {
				continue
			}
			event := new(BotBlacklistedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BotBlacklistedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BotBlacklistedEvent or
// returns an error if it's not possible to do to so.
func (e *BotBlacklistedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Flag, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Flag: %w", err)
	}

	return nil
}

// FeesChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "FeesChanged" name from the provided [result.ApplicationLog].
func FeesChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FeesChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FeesChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FeesChanged" {
				continue
			}
			event := new(FeesChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FeesChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FeesChangedEvent or
// returns an error if it's not possible to do to so.
func (e *FeesChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Liquidity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Liquidity: %w", err)
	}

	index++
	e.Treasury, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Treasury: %w", err)
	}

	index++
	e.RiskFree, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RiskFree: %w", err)
	}

	index++
	e.SupplyControl, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SupplyControl: %w", err)
	}

	index++
	e.SellExtra, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SellExtra: %w", err)
	}

	return nil
}

// OwnerRebaseChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnerRebaseChanged" name from the provided [result.ApplicationLog].
func OwnerRebaseChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnerRebaseChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OwnerRebaseChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OwnerRebaseChanged" {
				continue
			}
			event := new(OwnerRebaseChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OwnerRebaseChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnerRebaseChangedEvent or
// returns an error if it's not possible to do to so.
func (e *OwnerRebaseChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldStatus, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field OldStatus: %w", err)
	}

	index++
	e.NewStatus, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field NewStatus: %w", err)
	}

	return nil
}

// OwnershipTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipTransferred" name from the provided [result.ApplicationLog].
func OwnershipTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipTransferredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OwnershipTransferredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OwnershipTransferred" {
				continue
			}
			event := new(OwnershipTransferredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OwnershipTransferredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnershipTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipTransferredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldOwner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OldOwner: %w", err)
	}

	index++
	e.NewOwner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewOwner: %w", err)
	}

	return nil
}

// PairAddressChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "PairAddressChanged" name from the provided [result.ApplicationLog].
func PairAddressChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PairAddressChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PairAddressChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PairAddressChanged" {
				continue
			}
			event := new(PairAddressChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PairAddressChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PairAddressChangedEvent or
// returns an error if it's not possible to do to so.
func (e *PairAddressChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldAccount, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OldAccount: %w", err)
	}

	index++
	e.NewAccount, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewAccount: %w", err)
	}

	return nil
}

// RebaseEventsFromApplicationLog retrieves a set of all emitted events
// with "Rebase" name from the provided [result.ApplicationLog].
func RebaseEventsFromApplicationLog(log *result.ApplicationLog) ([]*RebaseEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RebaseEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Rebase" {
				continue
			}
			event := new(RebaseEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RebaseEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RebaseEvent or
// returns an error if it's not possible to do to so.
func (e *RebaseEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Time, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Time: %w", err)
	}

	index++
	e.OldSupply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldSupply: %w", err)
	}

	index++
	e.NewSupply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewSupply: %w", err)
	}

	return nil
}

// RebaseRateChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "RebaseRateChanged" name from the provided [result.ApplicationLog].
func RebaseRateChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RebaseRateChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RebaseRateChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RebaseRateChanged" {
				continue
			}
			event := new(RebaseRateChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RebaseRateChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RebaseRateChangedEvent or
// returns an error if it's not possible to do to so.
func (e *RebaseRateChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldRate: %w", err)
	}

	index++
	e.NewRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewRate: %w", err)
	}

	return nil
}

// RiskFreeFundChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "RiskFreeFundChanged" name from the provided [result.ApplicationLog].
func RiskFreeFundChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RiskFreeFundChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RiskFreeFundChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RiskFreeFundChanged" {
				continue
			}
			event := new(RiskFreeFundChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RiskFreeFundChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RiskFreeFundChangedEvent or
// returns an error if it's not possible to do to so.
func (e *RiskFreeFundChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldAccount, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OldAccount: %w", err)
	}

	index++
	e.NewAccount, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewAccount: %w", err)
	}

	return nil
}

// SupplyControlChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "SupplyControlChanged" name from the provided [result.ApplicationLog].
func SupplyControlChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SupplyControlChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SupplyControlChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SupplyControlChanged" {
				continue
			}
			event := new(SupplyControlChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SupplyControlChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SupplyControlChangedEvent or
// returns an error if it's not possible to do to so.
func (e *SupplyControlChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldAccount, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OldAccount: %w", err)
	}

	index++
	e.NewAccount, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewAccount: %w", err)
	}

	return nil
}

// TradingStatusChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "TradingStatusChanged" name from the provided [result.ApplicationLog].
func TradingStatusChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TradingStatusChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TradingStatusChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TradingStatusChanged" {
				continue
			}
			event := new(TradingStatusChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TradingStatusChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TradingStatusChangedEvent or
// returns an error if it's not possible to do to so.
func (e *TradingStatusChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldStatus, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field OldStatus: %w", err)
	}

	index++
	e.NewStatus, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field NewStatus: %w", err)
	}

	return nil
}

// TransferStatusChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "TransferStatusChanged" name from the provided [result.ApplicationLog].
func TransferStatusChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferStatusChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferStatusChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TransferStatusChanged" {
				continue
			}
			event := new(TransferStatusChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferStatusChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferStatusChangedEvent or
// returns an error if it's not possible to do to so.
func (e *TransferStatusChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldStatus, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field OldStatus: %w", err)
	}

	index++
	e.NewStatus, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field NewStatus: %w", err)
	}

	return nil
}

// TreasuryFundChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "TreasuryFundChanged" name from the provided [result.ApplicationLog].
func TreasuryFundChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TreasuryFundChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TreasuryFundChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TreasuryFundChanged" {
				continue
			}
			event := new(TreasuryFundChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TreasuryFundChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TreasuryFundChangedEvent or
// returns an error if it's not possible to do to so.
func (e *TreasuryFundChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldAccount, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OldAccount: %w", err)
	}

	index++
	e.NewAccount, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewAccount: %w", err)
	}

	return nil
}

// WhitelistAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "WhitelistAdded" name from the provided [result.ApplicationLog].
func WhitelistAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*WhitelistAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WhitelistAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WhitelistAdded" {
				continue
			}
			event := new(WhitelistAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WhitelistAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WhitelistAddedEvent or
// returns an error if it's not possible to do to so.
func (e *WhitelistAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	return nil
}

// WhitelistRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "WhitelistRemoved" name from the provided [result.ApplicationLog].
func WhitelistRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*WhitelistRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WhitelistRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WhitelistRemoved" {
				continue
			}
			event := new(WhitelistRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WhitelistRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WhitelistRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *WhitelistRemovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	return nil
}
