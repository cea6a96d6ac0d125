package fjord_test

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/njord-contract/common"
	"github.com/nspcc-dev/njord-contract/tests"
	"github.com/stretchr/testify/require"
)

const (
	njordPath = "../njord"
	fjordPath = "../fjord"
)

var (
	ratioPrecision = new(big.Int).Exp(big.NewInt(10), big.NewInt(36), nil)

	// Total supply of freshly deployed Njord spread over 10^6 wrapped
	// tokens with 18 decimals, scaled by 10^36.
	initialRatio = new(big.Int).Mul(big.NewInt(4), new(big.Int).Exp(big.NewInt(10), big.NewInt(22), nil))
)

type testEnv struct {
	e     *neotest.Executor
	funds tests.Funds

	njordHash util.Uint160
	fjordHash util.Uint160

	// committee invokers, the committee owns Fjord contract
	njord *neotest.ContractInvoker
	fjord *neotest.ContractInvoker
	// Njord invoker signed by its owner
	njordOwner *neotest.ContractInvoker
}

func newTestEnv(t *testing.T) testEnv {
	e := tests.NewExecutor(t)
	funds := tests.NewFunds(t, e)

	njordHash := tests.DeployNjord(t, e, njordPath, funds, util.Uint160{})
	fjordHash := tests.DeployFjord(t, e, fjordPath, funds, njordHash)

	env := testEnv{
		e:          e,
		funds:      funds,
		njordHash:  njordHash,
		fjordHash:  fjordHash,
		njord:      e.CommitteeInvoker(njordHash),
		fjord:      e.CommitteeInvoker(fjordHash),
		njordOwner: e.CommitteeInvoker(njordHash).WithSigners(funds.Treasury),
	}

	env.njordOwner.Invoke(t, stackitem.Null{}, "setWhitelist", fjordHash)

	return env
}

func (env testEnv) setLive(t *testing.T) {
	env.fjord.Invoke(t, stackitem.Null{}, "setLiveStatus", true)
}

// newHolder returns new account with the given amount of Njord tokens.
func (env testEnv) newHolder(t *testing.T, amount int64) neotest.SingleSigner {
	acc := env.e.NewAccount(t).(neotest.SingleSigner)
	env.njordOwner.Invoke(t, true, "transfer", env.funds.Treasury.ScriptHash(), acc.ScriptHash(), amount, nil)
	return acc
}

func (env testEnv) wrap(t *testing.T, acc neotest.Signer, amount int64) *state.AppExecResult {
	h := env.njord.WithSigners(acc).Invoke(t, true, "transfer", acc.ScriptHash(), env.fjordHash, amount, nil)
	return env.njord.CheckHalt(t, h)
}

func requireEvent(t *testing.T, ev state.NotificationEvent, name string, args ...any) {
	require.Equal(t, name, ev.Name)
	require.Equal(t, stackitem.Make(args).Value(), ev.Item.Value())
}

func TestDeploy(t *testing.T) {
	env := newTestEnv(t)
	c := env.fjord

	c.Invoke(t, "FJORD", "symbol")
	c.Invoke(t, 18, "decimals")
	c.Invoke(t, 0, "totalSupply")
	c.Invoke(t, common.Version, "version")

	c.Invoke(t, env.e.CommitteeHash, "owner")
	c.Invoke(t, env.njordHash, "njord")
	c.Invoke(t, stackitem.Null{}, "pair")
	c.Invoke(t, env.funds.AutoLiquidity.ScriptHash(), "autoLiquidityFund")
	c.Invoke(t, env.funds.Treasury.ScriptHash(), "treasuryFund")
	c.Invoke(t, env.funds.RiskFree.ScriptHash(), "riskFreeFund")
	c.Invoke(t, env.funds.SupplyControl.ScriptHash(), "supplyControl")
	c.Invoke(t, false, "live")

	c.Invoke(t, true, "isWhitelisted", env.fjordHash)
	c.Invoke(t, true, "isWhitelisted", env.funds.Treasury.ScriptHash())
	require.Equal(t, 2, len(tests.CallIterator(t, c, "iterateWhitelist")))

	c.Invoke(t, initialRatio, "exchangeRate")
}

func TestWrapNotLive(t *testing.T) {
	env := newTestEnv(t)
	acc := env.newHolder(t, 100_00000)

	env.njord.WithSigners(acc).InvokeFail(t, common.ErrNotLive, "transfer",
		acc.ScriptHash(), env.fjordHash, 10_00000, nil)
	env.fjord.WithSigners(acc).InvokeFail(t, common.ErrNotLive, "unwrap", acc.ScriptHash(), 1)
}

func TestWrapUnwrap(t *testing.T) {
	env := newTestEnv(t)
	env.setLive(t)

	const amount = 100_00000
	acc := env.newHolder(t, 1_000_00000)

	expected := new(big.Int).Mul(big.NewInt(amount), ratioPrecision)
	expected.Quo(expected, initialRatio)
	env.fjord.Invoke(t, expected, "elasticToWrapped", amount)

	aer := env.wrap(t, acc, amount)
	// njord transfer, ratio, mint, wrap
	require.Equal(t, 4, len(aer.Events))
	requireEvent(t, aer.Events[1], "RatioChanged", 0, initialRatio)
	requireEvent(t, aer.Events[2], "Transfer", nil, acc.ScriptHash(), expected)
	requireEvent(t, aer.Events[3], "Wrap", acc.ScriptHash(), amount, expected)

	require.Equal(t, expected, tests.BalanceOf(t, env.fjord, acc.ScriptHash()))
	env.fjord.Invoke(t, expected, "totalSupply")
	require.EqualValues(t, amount, tests.BalanceOf(t, env.njord, env.fjordHash).Int64())
	require.EqualValues(t, 900_00000, tests.BalanceOf(t, env.njord, acc.ScriptHash()).Int64())

	env.fjord.Invoke(t, amount, "wrappedToElastic", expected)

	cAcc := env.fjord.WithSigners(acc)
	cAcc.InvokeFail(t, common.ErrAmountTooSmall, "unwrap", acc.ScriptHash(), 0)
	cAcc.InvokeFail(t, common.ErrInsufficientBalance, "unwrap", acc.ScriptHash(), new(big.Int).Add(expected, big.NewInt(1)))
	env.fjord.InvokeFail(t, common.ErrWitnessFailed, "unwrap", acc.ScriptHash(), expected)

	h := cAcc.Invoke(t, stackitem.Null{}, "unwrap", acc.ScriptHash(), expected)
	aer = cAcc.CheckHalt(t, h)
	requireEvent(t, aer.Events[len(aer.Events)-1], "Unwrap", acc.ScriptHash(), expected, amount)

	require.Zero(t, tests.BalanceOf(t, env.fjord, acc.ScriptHash()).Sign())
	env.fjord.Invoke(t, 0, "totalSupply")
	require.EqualValues(t, 1_000_00000, tests.BalanceOf(t, env.njord, acc.ScriptHash()).Int64())
	require.Zero(t, tests.BalanceOf(t, env.njord, env.fjordHash).Sign())
}

func TestWrapTooSmall(t *testing.T) {
	env := newTestEnv(t)
	env.setLive(t)
	acc := env.newHolder(t, 100_00000)

	env.njord.WithSigners(acc).InvokeFail(t, common.ErrAmountTooSmall, "transfer",
		acc.ScriptHash(), env.fjordHash, 0, nil)
}

func TestUnexpectedToken(t *testing.T) {
	env := newTestEnv(t)
	env.setLive(t)

	gas := env.e.CommitteeInvoker(env.e.NativeHash(t, nativenames.Gas))
	gas.InvokeFail(t, common.ErrUnexpectedToken, "transfer", env.e.CommitteeHash, env.fjordHash, 1_0000_0000, nil)
}

func TestUnwrapAfterRebase(t *testing.T) {
	env := newTestEnv(t)
	env.setLive(t)

	const amount = 100_00000
	acc := env.newHolder(t, amount)
	env.wrap(t, acc, amount)

	wrapped := tests.BalanceOf(t, env.fjord, acc.ScriptHash())

	env.njordOwner.Invoke(t, stackitem.Null{}, "toggleOwnerRebase")
	env.njordOwner.Invoke(t, stackitem.Null{}, "manualRebase")

	rate := tests.CallInt(t, env.fjord, "exchangeRate")
	require.True(t, rate.Cmp(initialRatio) > 0)

	elastic := tests.CallInt(t, env.fjord, "wrappedToElastic", wrapped)
	require.True(t, elastic.Int64() > amount)
	require.True(t, elastic.Cmp(tests.BalanceOf(t, env.njord, env.fjordHash)) <= 0)

	env.fjord.WithSigners(acc).Invoke(t, stackitem.Null{}, "unwrap", acc.ScriptHash(), wrapped)
	require.Equal(t, elastic, tests.BalanceOf(t, env.njord, acc.ScriptHash()))

	t.Run("ratio does not decrease", func(t *testing.T) {
		env.njordOwner.Invoke(t, stackitem.Null{}, "setRebaseRate", -2362)
		env.njordOwner.Invoke(t, stackitem.Null{}, "manualRebase")

		env.fjord.Invoke(t, rate, "exchangeRate")
	})
}

func TestRatioIgnoresWithdrawal(t *testing.T) {
	env := newTestEnv(t)
	env.setLive(t)

	const amount = 1_000_00000

	// Tokens held by Njord contract are not circulating until withdrawn.
	env.njordOwner.Invoke(t, true, "transfer", env.funds.Treasury.ScriptHash(), env.njordHash, 100_000_00000, nil)

	a := env.newHolder(t, amount)
	b := env.newHolder(t, amount)
	env.wrap(t, a, amount)
	env.wrap(t, b, amount)

	circulating := tests.CallInt(t, env.njord, "circulatingSupply")
	env.njordOwner.Invoke(t, stackitem.Null{}, "withdrawAllToTreasury")
	require.True(t, tests.CallInt(t, env.njord, "circulatingSupply").Cmp(circulating) > 0)

	env.fjord.Invoke(t, initialRatio, "exchangeRate")

	for _, acc := range []neotest.SingleSigner{a, b} {
		wrapped := tests.BalanceOf(t, env.fjord, acc.ScriptHash())
		env.fjord.WithSigners(acc).Invoke(t, stackitem.Null{}, "unwrap", acc.ScriptHash(), wrapped)
		require.EqualValues(t, amount, tests.BalanceOf(t, env.njord, acc.ScriptHash()).Int64())
	}

	env.fjord.Invoke(t, initialRatio, "exchangeRate")
	require.Zero(t, tests.BalanceOf(t, env.njord, env.fjordHash).Sign())
}

func TestRoundTripNeverGains(t *testing.T) {
	env := newTestEnv(t)
	env.setLive(t)

	acc := env.newHolder(t, 1_000_00000)
	for _, amount := range []int64{1, 3, 7, 12_345, 99_999_999} {
		before := tests.BalanceOf(t, env.njord, acc.ScriptHash())

		env.wrap(t, acc, amount)
		wrapped := tests.BalanceOf(t, env.fjord, acc.ScriptHash())
		env.fjord.WithSigners(acc).Invoke(t, stackitem.Null{}, "unwrap", acc.ScriptHash(), wrapped)

		require.True(t, tests.BalanceOf(t, env.njord, acc.ScriptHash()).Cmp(before) <= 0)
	}
}

func TestWrappedTransferFees(t *testing.T) {
	env := newTestEnv(t)
	env.setLive(t)

	pair := env.e.NewAccount(t).(neotest.SingleSigner)
	env.fjord.Invoke(t, stackitem.Null{}, "setPairAddress", pair.ScriptHash())

	acc := env.newHolder(t, 100_00000)
	env.wrap(t, acc, 100_00000)

	const amount = 1_000_000_000_000_000_000
	env.fjord.WithSigners(acc).Invoke(t, true, "transfer", acc.ScriptHash(), pair.ScriptHash(), amount, nil)

	require.EqualValues(t, 900_000_000_000_000_000, tests.BalanceOf(t, env.fjord, pair.ScriptHash()).Int64())
	require.EqualValues(t, 20_000_000_000_000_000, tests.BalanceOf(t, env.fjord, env.funds.AutoLiquidity.ScriptHash()).Int64())
	require.EqualValues(t, 40_000_000_000_000_000, tests.BalanceOf(t, env.fjord, env.funds.Treasury.ScriptHash()).Int64())
	require.EqualValues(t, 20_000_000_000_000_000, tests.BalanceOf(t, env.fjord, env.funds.RiskFree.ScriptHash()).Int64())
	require.EqualValues(t, 20_000_000_000_000_000, tests.BalanceOf(t, env.fjord, env.funds.SupplyControl.ScriptHash()).Int64())

	t.Run("whitelisted", func(t *testing.T) {
		env.fjord.Invoke(t, stackitem.Null{}, "toggleWhitelist", acc.ScriptHash())
		env.fjord.WithSigners(acc).Invoke(t, true, "transfer", acc.ScriptHash(), pair.ScriptHash(), amount, nil)
		require.EqualValues(t, 1_900_000_000_000_000_000, tests.BalanceOf(t, env.fjord, pair.ScriptHash()).Int64())
	})

	t.Run("buy", func(t *testing.T) {
		other := env.e.NewAccount(t).(neotest.SingleSigner)
		env.fjord.WithSigners(pair).Invoke(t, true, "transfer", pair.ScriptHash(), other.ScriptHash(), amount, nil)
		require.EqualValues(t, 920_000_000_000_000_000, tests.BalanceOf(t, env.fjord, other.ScriptHash()).Int64())
	})
}

func TestSetters(t *testing.T) {
	env := newTestEnv(t)
	stranger := env.e.NewAccount(t).(neotest.SingleSigner)
	cStranger := env.fjord.WithSigners(stranger)

	t.Run("live status", func(t *testing.T) {
		cStranger.InvokeFail(t, common.ErrNotOwner, "setLiveStatus", true)
		env.fjord.InvokeFail(t, common.ErrNothingChanged, "setLiveStatus", false)

		h := env.fjord.Invoke(t, stackitem.Null{}, "setLiveStatus", true)
		aer := env.fjord.CheckHalt(t, h)
		requireEvent(t, aer.Events[0], "LiveStatusChanged", false, true)
		env.fjord.Invoke(t, true, "live")
	})

	t.Run("whitelist", func(t *testing.T) {
		acc := stranger.ScriptHash()
		cStranger.InvokeFail(t, common.ErrNotOwner, "toggleWhitelist", acc)
		env.fjord.InvokeFail(t, common.ErrZeroAddress, "toggleWhitelist", util.Uint160{})

		h := env.fjord.Invoke(t, stackitem.Null{}, "toggleWhitelist", acc)
		requireEvent(t, env.fjord.CheckHalt(t, h).Events[0], "WhitelistChanged", acc, true)
		env.fjord.Invoke(t, true, "isWhitelisted", acc)

		h = env.fjord.Invoke(t, stackitem.Null{}, "toggleWhitelist", acc)
		requireEvent(t, env.fjord.CheckHalt(t, h).Events[0], "WhitelistChanged", acc, false)
		env.fjord.Invoke(t, false, "isWhitelisted", acc)
	})

	t.Run("fees", func(t *testing.T) {
		cStranger.InvokeFail(t, common.ErrNotOwner, "setFees", 1, 1, 1, 1, 1)
		env.fjord.InvokeFail(t, common.ErrFeeTooHigh, "setFees", 10_000, 0, 0, 0, 1)
		env.fjord.InvokeFail(t, common.ErrNothingChanged, "setFees", 200, 200, 200, 200, 200)
		env.fjord.Invoke(t, stackitem.Null{}, "setFees", 1, 1, 1, 1, 1)
	})

	for _, tc := range []struct {
		setter, getter string
		current        any
	}{
		{"setAutoLiquidityFund", "autoLiquidityFund", env.funds.AutoLiquidity.ScriptHash()},
		{"setTreasuryFund", "treasuryFund", env.funds.Treasury.ScriptHash()},
		{"setRiskFreeFund", "riskFreeFund", env.funds.RiskFree.ScriptHash()},
		{"setSupplyControl", "supplyControl", env.funds.SupplyControl.ScriptHash()},
	} {
		t.Run(tc.setter, func(t *testing.T) {
			next := env.e.NewAccount(t).(neotest.SingleSigner).ScriptHash()

			cStranger.InvokeFail(t, common.ErrNotOwner, tc.setter, next)
			env.fjord.InvokeFail(t, common.ErrZeroAddress, tc.setter, util.Uint160{})
			env.fjord.InvokeFail(t, common.ErrNothingChanged, tc.setter, tc.current)
			env.fjord.Invoke(t, stackitem.Null{}, tc.setter, next)
			env.fjord.Invoke(t, next, tc.getter)
		})
	}

	t.Run("pair", func(t *testing.T) {
		next := env.e.NewAccount(t).(neotest.SingleSigner).ScriptHash()
		env.fjord.Invoke(t, stackitem.Null{}, "setPairAddress", next)
		env.fjord.InvokeFail(t, common.ErrNothingChanged, "setPairAddress", next)
		env.fjord.Invoke(t, next, "pair")
	})

	t.Run("ownership", func(t *testing.T) {
		cStranger.InvokeFail(t, common.ErrNotOwner, "transferOwnership", stranger.ScriptHash())
		env.fjord.Invoke(t, stackitem.Null{}, "transferOwnership", stranger.ScriptHash())
		env.fjord.Invoke(t, stranger.ScriptHash(), "owner")

		env.fjord.InvokeFail(t, common.ErrNotOwner, "setLiveStatus", false)
		cStranger.Invoke(t, stackitem.Null{}, "setLiveStatus", false)
	})
}
