package njord_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/njord-contract/common"
	"github.com/nspcc-dev/njord-contract/tests"
	"github.com/stretchr/testify/require"
)

const (
	rebaseInterval = 15 * time.Minute
	rateDecimals   = 10_000_000
	defaultRate    = 2362
)

var totalGons = new(big.Int).Mul(big.NewInt(initialSupply), new(big.Int).Exp(big.NewInt(10), big.NewInt(60), nil))

// compound returns supply after the given number of rebase periods.
func compound(supply *big.Int, rate int64, periods int) *big.Int {
	res := new(big.Int).Set(supply)
	for i := 0; i < periods; i++ {
		res.Mul(res, big.NewInt(rateDecimals+rate))
		res.Quo(res, big.NewInt(rateDecimals))
	}
	return res
}

// rescale returns balance of an account after gons per fragment has changed
// from the scale of oldSupply to the scale of newSupply.
func rescale(balance, oldSupply, newSupply *big.Int) *big.Int {
	oldGPF := new(big.Int).Quo(totalGons, oldSupply)
	newGPF := new(big.Int).Quo(totalGons, newSupply)

	gons := new(big.Int).Mul(balance, oldGPF)
	return gons.Quo(gons, newGPF)
}

// newTradingEnv returns environment with enabled transfers, trading and
// automatic rebases. The pair and the trader hold some tokens.
func newTradingEnv(t *testing.T) (testEnv, neotest.SingleSigner) {
	env := newTestEnv(t)
	env.enableTrading(t)

	trader := env.newAccount(t, 1_000_00000)
	env.transfer(t, env.funds.Treasury, env.pair.ScriptHash(), 1_000_00000)
	env.owner.Invoke(t, stackitem.Null{}, "setAutoRebase", true)

	return env, trader
}

func (env testEnv) requireGonsConserved(t *testing.T) {
	require.Equal(t, totalGons, tests.SumStorageInts(t, env.e, env.hash, []byte{'g'}))
}

func TestRebaseOnTrade(t *testing.T) {
	env, trader := newTradingEnv(t)

	var (
		holder    = env.newAccount(t, 123_45678)
		supply    = env.int(t, "totalSupply")
		last      = env.int(t, "lastRebasedTime")
		holderBal = big.NewInt(env.balance(t, holder.ScriptHash()))
	)

	env.c.Invoke(t, new(big.Int).Add(last, big.NewInt(rebaseInterval.Milliseconds())), "nextRebaseTime")

	t.Run("not due", func(t *testing.T) {
		aer := env.transfer(t, trader, env.pair.ScriptHash(), 1_00000)
		for _, ev := range aer.Events {
			require.NotEqual(t, "Rebase", ev.Name)
		}
		env.c.Invoke(t, supply, "totalSupply")
	})

	tests.SkipTime(t, env.e, rebaseInterval)

	aer := env.transfer(t, trader, env.pair.ScriptHash(), 1_00000)
	ev := aer.Events[len(aer.Events)-1]

	expected := compound(supply, defaultRate, 1)
	nextLast := new(big.Int).Add(last, big.NewInt(rebaseInterval.Milliseconds()))
	requireEvent(t, ev, "Rebase", nextLast, supply, expected)

	env.c.Invoke(t, expected, "totalSupply")
	env.c.Invoke(t, nextLast, "lastRebasedTime")
	env.c.Invoke(t, new(big.Int).Quo(totalGons, expected), "gonsPerFragment")

	require.Equal(t, new(big.Int).Add(supply, new(big.Int).Quo(new(big.Int).Mul(supply, big.NewInt(defaultRate)), big.NewInt(rateDecimals))),
		expected)
	require.Equal(t, rescale(holderBal, supply, expected), tests.BalanceOf(t, env.c, holder.ScriptHash()))
	require.True(t, tests.BalanceOf(t, env.c, holder.ScriptHash()).Cmp(holderBal) > 0)

	// Nothing is left to rebase in the current period.
	env.transfer(t, trader, env.pair.ScriptHash(), 1_00000)
	env.c.Invoke(t, expected, "totalSupply")

	env.requireGonsConserved(t)
}

func TestRebaseCompounding(t *testing.T) {
	env, trader := newTradingEnv(t)

	supply := env.int(t, "totalSupply")
	last := env.int(t, "lastRebasedTime")

	tests.SkipTime(t, env.e, 3*rebaseInterval+time.Minute)
	env.transfer(t, env.pair, trader.ScriptHash(), 1_00000)

	env.c.Invoke(t, compound(supply, defaultRate, 3), "totalSupply")
	env.c.Invoke(t, new(big.Int).Add(last, big.NewInt(3*rebaseInterval.Milliseconds())), "lastRebasedTime")

	env.requireGonsConserved(t)
}

func TestRebaseNotOnPlainTransfer(t *testing.T) {
	env, trader := newTradingEnv(t)
	other := env.e.NewAccount(t).(neotest.SingleSigner)

	supply := env.int(t, "totalSupply")

	tests.SkipTime(t, env.e, rebaseInterval)
	env.transfer(t, trader, other.ScriptHash(), 1_00000)
	env.c.Invoke(t, supply, "totalSupply")

	// Anyone can apply pending periods.
	env.c.WithSigners(other).Invoke(t, stackitem.Null{}, "rebase")
	env.c.Invoke(t, compound(supply, defaultRate, 1), "totalSupply")
}

func TestRebaseDisabled(t *testing.T) {
	env := newTestEnv(t)
	env.enableTrading(t)
	env.transfer(t, env.funds.Treasury, env.pair.ScriptHash(), 1_000_00000)

	trader := env.e.NewAccount(t).(neotest.SingleSigner)

	tests.SkipTime(t, env.e, 2*rebaseInterval)
	env.transfer(t, env.pair, trader.ScriptHash(), 1_00000)
	env.c.Invoke(t, stackitem.Null{}, "rebase")

	env.c.Invoke(t, initialSupply, "totalSupply")
}

func TestRebaseResetsSchedule(t *testing.T) {
	env := newTestEnv(t)

	tests.SkipTime(t, env.e, 5*rebaseInterval)

	h := env.owner.Invoke(t, stackitem.Null{}, "setAutoRebase", true)
	b := env.e.TopBlock(t)
	env.c.CheckHalt(t, h)

	env.c.Invoke(t, int64(b.Timestamp), "lastRebasedTime")
	env.c.Invoke(t, stackitem.Null{}, "rebase")
	env.c.Invoke(t, initialSupply, "totalSupply")
}

func TestManualRebase(t *testing.T) {
	env := newTestEnv(t)

	env.owner.InvokeFail(t, common.ErrOwnerRebaseDisabled, "manualRebase")

	env.owner.Invoke(t, stackitem.Null{}, "toggleOwnerRebase")
	env.c.Invoke(t, true, "ownerRebase")

	env.c.InvokeFail(t, common.ErrNotOwner, "manualRebase")

	supply := env.int(t, "totalSupply")

	h := env.owner.Invoke(t, stackitem.Null{}, "manualRebase")
	b := env.e.TopBlock(t)
	aer := env.c.CheckHalt(t, h)

	expected := compound(supply, defaultRate, 1)
	require.Equal(t, 1, len(aer.Events))
	requireEvent(t, aer.Events[0], "Rebase", int64(b.Timestamp), supply, expected)

	env.c.Invoke(t, expected, "totalSupply")
	env.c.Invoke(t, int64(b.Timestamp), "lastRebasedTime")
	require.Equal(t, expected, tests.BalanceOf(t, env.c, env.funds.Treasury.ScriptHash()))

	env.requireGonsConserved(t)
}

func TestContraction(t *testing.T) {
	env := newTestEnv(t)
	env.owner.Invoke(t, stackitem.Null{}, "toggleOwnerRebase")
	env.owner.Invoke(t, stackitem.Null{}, "setRebaseRate", -defaultRate)

	holder := env.newAccount(t, 1_000_00000)
	supply := env.int(t, "totalSupply")

	env.owner.Invoke(t, stackitem.Null{}, "manualRebase")

	expected := compound(supply, -defaultRate, 1)
	require.True(t, expected.Cmp(supply) < 0)

	env.c.Invoke(t, expected, "totalSupply")
	require.Equal(t, rescale(big.NewInt(1_000_00000), supply, expected), tests.BalanceOf(t, env.c, holder.ScriptHash()))

	env.requireGonsConserved(t)
}

func TestSupplyOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	env.owner.Invoke(t, stackitem.Null{}, "toggleOwnerRebase")
	env.owner.Invoke(t, stackitem.Null{}, "setRebaseRate", rateDecimals)

	// 4e10 doubles 11 times before exceeding 1e14.
	for i := 0; i < 11; i++ {
		env.owner.Invoke(t, stackitem.Null{}, "manualRebase")
	}
	env.c.Invoke(t, initialSupply<<11, "totalSupply")

	env.owner.InvokeFail(t, common.ErrSupplyOutOfRange, "manualRebase")

	t.Run("automatic rebase is skipped", func(t *testing.T) {
		env.enableTrading(t)
		env.transfer(t, env.funds.Treasury, env.pair.ScriptHash(), 1_000_00000)
		env.owner.Invoke(t, stackitem.Null{}, "setAutoRebase", true)

		last := env.int(t, "lastRebasedTime")
		tests.SkipTime(t, env.e, rebaseInterval)

		trader := env.e.NewAccount(t).(neotest.SingleSigner)
		aer := env.transfer(t, env.pair, trader.ScriptHash(), 1_00000)
		for _, ev := range aer.Events {
			require.NotEqual(t, "Rebase", ev.Name)
		}

		env.c.Invoke(t, initialSupply<<11, "totalSupply")
		env.c.Invoke(t, new(big.Int).Add(last, big.NewInt(rebaseInterval.Milliseconds())), "lastRebasedTime")
	})

	env.requireGonsConserved(t)
}

func TestGonsConservation(t *testing.T) {
	env, trader := newTradingEnv(t)
	env.owner.Invoke(t, stackitem.Null{}, "setAutoAddLiquidity", true)

	other := env.newAccount(t, 0)

	for i := 0; i < 3; i++ {
		tests.SkipTime(t, env.e, rebaseInterval)

		env.transfer(t, trader, env.pair.ScriptHash(), 1_234_567)
		env.transfer(t, env.pair, other.ScriptHash(), 7_654_321)
		env.transfer(t, other, tests.DeadAccount, 1_111)
		env.requireGonsConserved(t)
	}

	env.owner.Invoke(t, stackitem.Null{}, "withdrawAllToTreasury")
	env.requireGonsConserved(t)

	circulating := env.int(t, "circulatingSupply")
	expected := new(big.Int).Sub(env.int(t, "totalSupply"), tests.BalanceOf(t, env.c, tests.DeadAccount))
	// Rounding of the dead account balance may differ by a single unit.
	require.LessOrEqual(t, new(big.Int).Sub(circulating, expected).CmpAbs(big.NewInt(1)), 0)
}
