// Package fjord contains RPC wrappers for Fjord contract.
package fjord

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

// AutoLiquidityFundChangedEvent represents "AutoLiquidityFundChanged" event emitted by the contract.
type AutoLiquidityFundChangedEvent struct {
	OldAccount util.Uint160
	NewAccount util.Uint160
}

// FeesChangedEvent represents "FeesChanged" event emitted by the contract.
type FeesChangedEvent struct {
	Liquidity *big.Int
	Treasury *big.Int
	RiskFree *big.Int
	SupplyControl *big.Int
	SellExtra *big.Int
}

// LiveStatusChangedEvent represents "LiveStatusChanged" event emitted by the contract.
type LiveStatusChangedEvent struct {
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

// RatioChangedEvent represents "RatioChanged" event emitted by the contract.
type RatioChangedEvent struct {
	OldRatio *big.Int
	NewRatio *big.Int
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

// TreasuryFundChangedEvent represents "TreasuryFundChanged" event emitted by the contract.
type TreasuryFundChangedEvent struct {
	OldAccount util.Uint160
	NewAccount util.Uint160
}

// UnwrapEvent represents "Unwrap" event emitted by the contract.
type UnwrapEvent struct {
	Account util.Uint160
	WrappedAmount *big.Int
	ElasticAmount *big.Int
}

// WhitelistChangedEvent represents "WhitelistChanged" event emitted by the contract.
type WhitelistChangedEvent struct {
	Account util.Uint160
	Flag bool
}

// WrapEvent represents "Wrap" event emitted by the contract.
type WrapEvent struct {
	Account util.Uint160
	ElasticAmount *big.Int
	WrappedAmount *big.Int
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

// AutoLiquidityFund invokes `autoLiquidityFund` method of contract.
func (c *ContractReader) AutoLiquidityFund() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "autoLiquidityFund"))
}

// ElasticToWrapped invokes `elasticToWrapped` method of contract.
func (c *ContractReader) ElasticToWrapped(amount *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "elasticToWrapped", amount))
}

// ExchangeRate invokes `exchangeRate` method of contract.
func (c *ContractReader) ExchangeRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "exchangeRate"))
}

// Fees invokes `fees` method of contract.
func (c *ContractReader) Fees() (*CommonFeeTable, error) {
	return itemToCommonFeeTable(unwrap.Item(c.invoker.Call(c.hash, "fees")))
}

// IsWhitelisted invokes `isWhitelisted` method of contract.
func (c *ContractReader) IsWhitelisted(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isWhitelisted", account))
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

// Live invokes `live` method of contract.
func (c *ContractReader) Live() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "live"))
}

// Njord invokes `njord` method of contract.
func (c *ContractReader) Njord() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "njord"))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Pair invokes `pair` method of contract.
func (c *ContractReader) Pair() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "pair"))
}

// RiskFreeFund invokes `riskFreeFund` method of contract.
func (c *ContractReader) RiskFreeFund() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "riskFreeFund"))
}

// SupplyControl invokes `supplyControl` method of contract.
func (c *ContractReader) SupplyControl() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "supplyControl"))
}

// TreasuryFund invokes `treasuryFund` method of contract.
func (c *ContractReader) TreasuryFund() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "treasuryFund"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// WrappedToElastic invokes `wrappedToElastic` method of contract.
func (c *ContractReader) WrappedToElastic(amount *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "wrappedToElastic", amount))
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

// SetLiveStatus creates a transaction invoking `setLiveStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetLiveStatus(flag bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setLiveStatus", flag)
}

// SetLiveStatusTransaction creates a transaction invoking `setLiveStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetLiveStatusTransaction(flag bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setLiveStatus", flag)
}

// SetLiveStatusUnsigned creates a transaction invoking `setLiveStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetLiveStatusUnsigned(flag bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setLiveStatus", nil, flag)
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

// ToggleWhitelist creates a transaction invoking `toggleWhitelist` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ToggleWhitelist(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "toggleWhitelist", account)
}

// ToggleWhitelistTransaction creates a transaction invoking `toggleWhitelist` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ToggleWhitelistTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "toggleWhitelist", account)
}

// ToggleWhitelistUnsigned creates a transaction invoking `toggleWhitelist` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ToggleWhitelistUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "toggleWhitelist", nil, account)
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

// Unwrap creates a transaction invoking `unwrap` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unwrap(account util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unwrap", account, amount)
}

// UnwrapTransaction creates a transaction invoking `unwrap` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnwrapTransaction(account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unwrap", account, amount)
}

// UnwrapUnsigned creates a transaction invoking `unwrap` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnwrapUnsigned(account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unwrap", nil, account, amount)
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

// LiveStatusChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "LiveStatusChanged" name from the provided [result.ApplicationLog].
func LiveStatusChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*LiveStatusChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*LiveStatusChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "LiveStatusChanged" {
				continue
			}
			event := new(LiveStatusChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize LiveStatusChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to LiveStatusChangedEvent or
// returns an error if it's not possible to do to so.
func (e *LiveStatusChangedEvent) FromStackItem(item *stackitem.Array) error {
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

// RatioChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "RatioChanged" name from the provided [result.ApplicationLog].
func RatioChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RatioChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RatioChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RatioChanged" {
				continue
			}
			event := new(RatioChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RatioChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RatioChangedEvent or
// returns an error if it's not possible to do to so.
func (e *RatioChangedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.OldRatio, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldRatio: %w", err)
	}

	index++
	e.NewRatio, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewRatio: %w", err)
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

// UnwrapEventsFromApplicationLog retrieves a set of all emitted events
// with "Unwrap" name from the provided [result.ApplicationLog].
func UnwrapEventsFromApplicationLog(log *result.ApplicationLog) ([]*UnwrapEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UnwrapEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Unwrap" {
				continue
			}
			event := new(UnwrapEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UnwrapEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UnwrapEvent or
// returns an error if it's not possible to do to so.
func (e *UnwrapEvent) FromStackItem(item *stackitem.Array) error {
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
	e.WrappedAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field WrappedAmount: %w", err)
	}

	index++
	e.ElasticAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ElasticAmount: %w", err)
	}

	return nil
}

// WhitelistChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "WhitelistChanged" name from the provided [result.ApplicationLog].
func WhitelistChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*WhitelistChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WhitelistChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WhitelistChanged" {
				continue
			}
			event := new(WhitelistChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WhitelistChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WhitelistChangedEvent or
// returns an error if it's not possible to do to so.
func (e *WhitelistChangedEvent) FromStackItem(item *stackitem.Array) error {
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

// WrapEventsFromApplicationLog retrieves a set of all emitted events
// with "Wrap" name from the provided [result.ApplicationLog].
func WrapEventsFromApplicationLog(log *result.ApplicationLog) ([]*WrapEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WrapEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Wrap" {
				continue
			}
			event := new(WrapEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WrapEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WrapEvent or
// returns an error if it's not possible to do to so.
func (e *WrapEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ElasticAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ElasticAmount: %w", err)
	}

	index++
	e.WrappedAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field WrappedAmount: %w", err)
	}

	return nil
}
