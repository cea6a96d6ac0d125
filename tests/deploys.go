package tests

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/njord-contract/tests/dump"
	"github.com/stretchr/testify/require"
)

// DeadAccount is the burn account of Njord contract,
// 0x000000000000000000000000000000000000dead.
var DeadAccount = util.Uint160{0: 0xad, 1: 0xde}

// Funds groups fee receivers of Njord and Fjord contracts. Treasury is also
// the owner of Njord contract.
type Funds struct {
	AutoLiquidity neotest.SingleSigner
	Treasury      neotest.SingleSigner
	RiskFree      neotest.SingleSigner
	SupplyControl neotest.SingleSigner
}

// NewFunds creates new accounts with some GAS for each fund.
func NewFunds(t testing.TB, e *neotest.Executor) Funds {
	return Funds{
		AutoLiquidity: e.NewAccount(t).(neotest.SingleSigner),
		Treasury:      e.NewAccount(t).(neotest.SingleSigner),
		RiskFree:      e.NewAccount(t).(neotest.SingleSigner),
		SupplyControl: e.NewAccount(t).(neotest.SingleSigner),
	}
}

// NjordDeployArgs returns deployment data of Njord contract. Zero pair is
// passed as null.
func NjordDeployArgs(f Funds, pair util.Uint160) []any {
	var p any
	if !pair.Equals(util.Uint160{}) {
		p = pair
	}

	return []any{
		f.AutoLiquidity.ScriptHash(),
		f.Treasury.ScriptHash(),
		f.RiskFree.ScriptHash(),
		f.SupplyControl.ScriptHash(),
		p,
	}
}

// FjordDeployArgs returns deployment data of Fjord contract wrapping given
// Njord contract.
func FjordDeployArgs(f Funds, njord util.Uint160) []any {
	return []any{
		njord,
		f.AutoLiquidity.ScriptHash(),
		f.Treasury.ScriptHash(),
		f.RiskFree.ScriptHash(),
		f.SupplyControl.ScriptHash(),
	}
}

// DeployNjord compiles Njord contract from the given directory and deploys
// it. Zero pair is not set.
func DeployNjord(t testing.TB, e *neotest.Executor, dir string, f Funds, pair util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, dir, filepath.Join(dir, "config.yml"))
	e.DeployContract(t, c, NjordDeployArgs(f, pair))
	return c.Hash
}

// DeployFjord compiles Fjord contract from the given directory and deploys
// it. The committee becomes its owner.
func DeployFjord(t testing.TB, e *neotest.Executor, dir string, f Funds, njord util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, dir, filepath.Join(dir, "config.yml"))
	e.DeployContract(t, c, FjordDeployArgs(f, njord))
	return c.Hash
}

// SumStorageInts returns sum of integers stored by keys with the given
// prefix in the contract storage.
func SumStorageInts(t testing.TB, e *neotest.Executor, contract util.Uint160, prefix []byte) *big.Int {
	cs := e.Chain.GetContractState(contract)
	require.NotNil(t, cs)

	sum := new(big.Int)
	e.Chain.SeekStorage(cs.ID, prefix, func(_, v []byte) bool {
		sum.Add(sum, bigint.FromBytes(v))
		return true
	})

	return sum
}

// BalanceOf returns NEP-17 balance of the account.
func BalanceOf(t testing.TB, c *neotest.ContractInvoker, account util.Uint160) *big.Int {
	return CallInt(t, c, "balanceOf", account)
}

// CallInt invokes method without state changes and returns its integer
// result.
func CallInt(t testing.TB, c *neotest.ContractInvoker, method string, args ...any) *big.Int {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)

	n, err := s.Pop().Item().TryInteger()
	require.NoError(t, err)

	return n
}

// DumpContracts writes states and storages of the named contracts deployed in
// the executor chain into the directory as a dump with the given label.
func DumpContracts(t testing.TB, e *neotest.Executor, dir, label string, contracts map[string]util.Uint160) dump.ID {
	id := dump.ID{Label: label, Block: e.Chain.BlockHeight()}

	d, err := dump.NewCreator(dir, id)
	require.NoError(t, err)

	for name, h := range contracts {
		cs := e.Chain.GetContractState(h)
		require.NotNil(t, cs)

		w := d.AddContract(name, *cs)
		e.Chain.SeekStorage(cs.ID, nil, func(k, v []byte) bool {
			require.NoError(t, w.Write(k, v))
			return true
		})
	}

	require.NoError(t, d.Flush())
	require.NoError(t, d.Close())

	return id
}
