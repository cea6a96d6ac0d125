package njord_test

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/njord-contract/common"
	"github.com/nspcc-dev/njord-contract/tests"
	"github.com/nspcc-dev/njord-contract/tests/dump"
	"github.com/nspcc-dev/njord-contract/tests/migration"
	"github.com/stretchr/testify/require"
)

const contractName = "njord"

// setOwner makes the test chain committee the owner of the dumped contract.
func setOwner(committee util.Uint160, key, value []byte) []byte {
	if len(key) != 1 || key[0] != 'c' {
		return value
	}

	item, err := stackitem.Deserialize(value)
	if err != nil {
		panic(err)
	}

	fields := item.Value().([]stackitem.Item)
	fields[0] = stackitem.NewByteArray(committee.BytesBE())

	res, err := stackitem.Serialize(item)
	if err != nil {
		panic(err)
	}

	return res
}

func TestMigration(t *testing.T) {
	err := dump.IterateDumps("../../testdata", func(id dump.ID, r *dump.Reader) {
		t.Run(id.String()+"/"+contractName, func(t *testing.T) {
			testMigrationFromDump(t, r)
		})
	})
	require.NoError(t, err)
}

func TestMigrationFromLocalDump(t *testing.T) {
	env, trader := newTradingEnv(t)
	env.transfer(t, trader, env.pair.ScriptHash(), 1_234_567)
	env.transfer(t, env.funds.Treasury, tests.DeadAccount, 1_000_00000)

	dir := t.TempDir()
	tests.DumpContracts(t, env.e, dir, "local", map[string]util.Uint160{contractName: env.hash})

	var dumps int
	err := dump.IterateDumps(dir, func(id dump.ID, r *dump.Reader) {
		dumps++
		require.Equal(t, "local", id.Label)

		c := testMigrationFromDump(t, r)
		require.Equal(t, env.hash, c.Hash())

		n, err := c.Call(t, "balanceOf", trader.ScriptHash()).TryInteger()
		require.NoError(t, err)
		require.Equal(t, tests.BalanceOf(t, env.c, trader.ScriptHash()), n)
	})
	require.NoError(t, err)
	require.Equal(t, 1, dumps)
}

func testMigrationFromDump(t *testing.T, d *dump.Reader) *migration.Contract {
	var gonsPrev = new(big.Int)

	c := migration.NewContract(t, d, contractName, migration.ContractOptions{
		SourceCodeDir: njordPath,
		StorageDumpHandler: func(key, value []byte) {
			if len(key) > 0 && key[0] == 'g' {
				gonsPrev.Add(gonsPrev, bigint.FromBytes(value))
			}
		},
		PatchStorage: setOwner,
	})

	readTotals := func() (supply, circulating *big.Int) {
		var err error
		supply, err = c.Call(t, "totalSupply").TryInteger()
		require.NoError(t, err)
		circulating, err = c.Call(t, "circulatingSupply").TryInteger()
		require.NoError(t, err)
		return
	}

	prevSupply, prevCirculating := readTotals()
	prevRebase := c.GetStorageItem([]byte{'r'})
	require.NotNil(t, prevRebase)

	version, err := c.Call(t, "version").TryInteger()
	require.NoError(t, err)

	if version.Int64() == common.Version {
		c.CheckUpdateFail(t, common.ErrAlreadyUpdated)
	} else {
		c.CheckUpdateSuccess(t)
	}

	supply, circulating := readTotals()
	require.Equal(t, prevSupply, supply)
	require.Equal(t, prevCirculating, circulating)
	require.Equal(t, prevRebase, c.GetStorageItem([]byte{'r'}))

	gons := new(big.Int)
	c.SeekStorage([]byte{'g'}, func(_, value []byte) {
		gons.Add(gons, bigint.FromBytes(value))
	})
	require.Equal(t, gonsPrev, gons)
	require.Equal(t, totalGons, gons)

	return c
}
