package njord_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/njord-contract/common"
	"github.com/nspcc-dev/njord-contract/tests"
	"github.com/stretchr/testify/require"
)

func TestAccountSetters(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct {
		setter, getter, event string
		current               util.Uint160
	}{
		{"setAutoLiquidityFund", "autoLiquidityFund", "AutoLiquidityFundChanged", env.funds.AutoLiquidity.ScriptHash()},
		{"setTreasuryFund", "treasuryFund", "TreasuryFundChanged", env.funds.Treasury.ScriptHash()},
		{"setRiskFreeFund", "riskFreeFund", "RiskFreeFundChanged", env.funds.RiskFree.ScriptHash()},
		{"setSupplyControl", "supplyControl", "SupplyControlChanged", env.funds.SupplyControl.ScriptHash()},
		{"setPairAddress", "pair", "PairAddressChanged", env.pair.ScriptHash()},
	} {
		t.Run(tc.setter, func(t *testing.T) {
			next := env.e.NewAccount(t).(neotest.SingleSigner).ScriptHash()

			env.c.InvokeFail(t, common.ErrNotOwner, tc.setter, next)
			env.owner.InvokeFail(t, common.ErrZeroAddress, tc.setter, util.Uint160{})
			env.owner.InvokeFail(t, common.ErrNothingChanged, tc.setter, tc.current)

			h := env.owner.Invoke(t, stackitem.Null{}, tc.setter, next)
			aer := env.c.CheckHalt(t, h)
			require.Equal(t, 1, len(aer.Events))
			requireEvent(t, aer.Events[0], tc.event, tc.current, next)

			env.c.Invoke(t, next, tc.getter)
		})
	}
}

func TestTreasuryFundKeepsOwner(t *testing.T) {
	env := newTestEnv(t)
	next := env.e.NewAccount(t).(neotest.SingleSigner)

	env.owner.Invoke(t, stackitem.Null{}, "setTreasuryFund", next.ScriptHash())
	env.c.Invoke(t, env.funds.Treasury.ScriptHash(), "owner")
}

func TestFlagSetters(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct {
		setter, getter, event string
	}{
		{"setAutoRebase", "autoRebase", "AutoRebaseChanged"},
		{"setAutoAddLiquidity", "autoAddLiquidity", "AutoAddLiquidityChanged"},
	} {
		t.Run(tc.setter, func(t *testing.T) {
			env.c.InvokeFail(t, common.ErrNotOwner, tc.setter, true)
			env.owner.InvokeFail(t, common.ErrNothingChanged, tc.setter, false)

			h := env.owner.Invoke(t, stackitem.Null{}, tc.setter, true)
			aer := env.c.CheckHalt(t, h)
			requireEvent(t, aer.Events[0], tc.event, false, true)
			env.c.Invoke(t, true, tc.getter)

			env.owner.InvokeFail(t, common.ErrNothingChanged, tc.setter, true)
			env.owner.Invoke(t, stackitem.Null{}, tc.setter, false)
			env.c.Invoke(t, false, tc.getter)
		})
	}
}

func TestToggles(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct {
		toggle, getter, event string
	}{
		{"toggleOwnerRebase", "ownerRebase", "OwnerRebaseChanged"},
		{"toggleTransferStatus", "transferEnabled", "TransferStatusChanged"},
		{"toggleTradingStatus", "tradingEnabled", "TradingStatusChanged"},
	} {
		t.Run(tc.toggle, func(t *testing.T) {
			env.c.InvokeFail(t, common.ErrNotOwner, tc.toggle)

			h := env.owner.Invoke(t, stackitem.Null{}, tc.toggle)
			aer := env.c.CheckHalt(t, h)
			requireEvent(t, aer.Events[0], tc.event, false, true)
			env.c.Invoke(t, true, tc.getter)

			h = env.owner.Invoke(t, stackitem.Null{}, tc.toggle)
			aer = env.c.CheckHalt(t, h)
			requireEvent(t, aer.Events[0], tc.event, true, false)
			env.c.Invoke(t, false, tc.getter)
		})
	}
}

func TestSetRebaseRate(t *testing.T) {
	env := newTestEnv(t)

	env.c.InvokeFail(t, common.ErrNotOwner, "setRebaseRate", 1000)
	env.owner.InvokeFail(t, common.ErrInvalidRebaseRate, "setRebaseRate", rateDecimals+1)
	env.owner.InvokeFail(t, common.ErrInvalidRebaseRate, "setRebaseRate", -rateDecimals)
	env.owner.InvokeFail(t, common.ErrNothingChanged, "setRebaseRate", defaultRate)

	h := env.owner.Invoke(t, stackitem.Null{}, "setRebaseRate", 1000)
	aer := env.c.CheckHalt(t, h)
	requireEvent(t, aer.Events[0], "RebaseRateChanged", defaultRate, 1000)

	env.c.Invoke(t, 1000, "rebaseRate")
}

func TestWhitelist(t *testing.T) {
	env := newTestEnv(t)
	acc := env.e.NewAccount(t).(neotest.SingleSigner).ScriptHash()

	env.c.InvokeFail(t, common.ErrNotOwner, "setWhitelist", acc)
	env.owner.InvokeFail(t, common.ErrZeroAddress, "setWhitelist", util.Uint160{})
	env.owner.InvokeFail(t, common.ErrAlreadyNotWhitelisted, "removeWhitelist", acc)

	h := env.owner.Invoke(t, stackitem.Null{}, "setWhitelist", acc)
	aer := env.c.CheckHalt(t, h)
	requireEvent(t, aer.Events[0], "WhitelistAdded", acc)

	env.c.Invoke(t, true, "isWhitelisted", acc)
	env.owner.InvokeFail(t, common.ErrAlreadyWhitelisted, "setWhitelist", acc)
	require.Equal(t, 3, len(tests.CallIterator(t, env.c, "iterateWhitelist")))

	env.c.InvokeFail(t, common.ErrNotOwner, "removeWhitelist", acc)
	h = env.owner.Invoke(t, stackitem.Null{}, "removeWhitelist", acc)
	aer = env.c.CheckHalt(t, h)
	requireEvent(t, aer.Events[0], "WhitelistRemoved", acc)

	env.c.Invoke(t, false, "isWhitelisted", acc)
}

func TestBotBlacklist(t *testing.T) {
	env := newTestEnv(t)
	bot := tests.DeployFjord(t, env.e, fjordPath, env.funds, env.hash)
	acc := env.e.NewAccount(t).(neotest.SingleSigner).ScriptHash()

	env.c.InvokeFail(t, common.ErrNotOwner, "setBotBlacklist", bot, true)
	env.owner.InvokeFail(t, common.ErrOnlyContract, "setBotBlacklist", acc, true)
	env.owner.InvokeFail(t, common.ErrZeroAddress, "setBotBlacklist", util.Uint160{}, true)
	env.owner.InvokeFail(t, common.ErrNothingChanged, "setBotBlacklist", bot, false)

	h := env.owner.Invoke(t, stackitem.Null{}, "setBotBlacklist", bot, true)
	aer := env.c.CheckHalt(t, h)
	requireEvent(t, aer.Events[0], "BotBlacklisted", bot, true)

	env.c.Invoke(t, true, "isBlacklisted", bot)
	require.Equal(t, []stackitem.Item{stackitem.NewByteArray(bot.BytesBE())},
		tests.CallIterator(t, env.c, "iterateBlacklist"))

	env.owner.InvokeFail(t, common.ErrNothingChanged, "setBotBlacklist", bot, true)
	env.owner.Invoke(t, stackitem.Null{}, "setBotBlacklist", bot, false)
	env.c.Invoke(t, false, "isBlacklisted", bot)
}

func TestSetFees(t *testing.T) {
	env := newTestEnv(t)

	env.c.InvokeFail(t, common.ErrNotOwner, "setFees", 100, 100, 100, 100, 100)
	env.owner.InvokeFail(t, common.ErrInvalidFee, "setFees", -1, 100, 100, 100, 100)
	env.owner.InvokeFail(t, common.ErrFeeTooHigh, "setFees", 5000, 5000, 0, 0, 1)
	env.owner.InvokeFail(t, common.ErrNothingChanged, "setFees", 200, 200, 200, 200, 200)

	h := env.owner.Invoke(t, stackitem.Null{}, "setFees", 100, 300, 0, 50, 500)
	aer := env.c.CheckHalt(t, h)
	requireEvent(t, aer.Events[0], "FeesChanged", 100, 300, 0, 50, 500)

	s, err := env.c.TestInvoke(t, "fees")
	require.NoError(t, err)
	require.Equal(t, stackitem.Make([]any{100, 300, 0, 50, 500}).Value(), s.Pop().Item().Value())

	t.Run("sell", func(t *testing.T) {
		env.enableTrading(t)

		seller := env.newAccount(t, 1_000_000)
		env.transfer(t, seller, env.pair.ScriptHash(), 1_000_000)

		// 100+300+0+50+500 basis points
		require.EqualValues(t, 905_000, env.balance(t, env.pair.ScriptHash()))
		require.EqualValues(t, 10_000, env.balance(t, env.funds.AutoLiquidity.ScriptHash()))
		require.Zero(t, env.balance(t, env.funds.RiskFree.ScriptHash()))
		require.EqualValues(t, 5_000, env.balance(t, env.funds.SupplyControl.ScriptHash()))
	})
}

func TestTransferOwnership(t *testing.T) {
	env := newTestEnv(t)
	next := env.e.NewAccount(t).(neotest.SingleSigner)

	env.c.InvokeFail(t, common.ErrNotOwner, "transferOwnership", next.ScriptHash())
	env.owner.InvokeFail(t, common.ErrNothingChanged, "transferOwnership", env.funds.Treasury.ScriptHash())

	h := env.owner.Invoke(t, stackitem.Null{}, "transferOwnership", next.ScriptHash())
	aer := env.c.CheckHalt(t, h)
	requireEvent(t, aer.Events[0], "OwnershipTransferred", env.funds.Treasury.ScriptHash(), next.ScriptHash())

	env.c.Invoke(t, next.ScriptHash(), "owner")
	env.owner.InvokeFail(t, common.ErrNotOwner, "toggleTransferStatus")
	env.c.WithSigners(next).Invoke(t, stackitem.Null{}, "toggleTransferStatus")
}
