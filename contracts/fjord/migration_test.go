package fjord_test

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

const contractName = "fjord"

func TestMigration(t *testing.T) {
	err := dump.IterateDumps("../../testdata", func(id dump.ID, r *dump.Reader) {
		t.Run(id.String()+"/"+contractName, func(t *testing.T) {
			testMigrationFromDump(t, r)
		})
	})
	require.NoError(t, err)
}

func TestMigrationFromLocalDump(t *testing.T) {
	env := newTestEnv(t)
	env.setLive(t)

	acc := env.newHolder(t, 1_000_00000)
	env.wrap(t, acc, 250_00000)

	dir := t.TempDir()
	tests.DumpContracts(t, env.e, dir, "local", map[string]util.Uint160{
		"njord":      env.njordHash,
		contractName: env.fjordHash,
	})

	err := dump.IterateDumps(dir, func(id dump.ID, r *dump.Reader) {
		require.NotEmpty(t, r.ContractStorage("njord"))
		require.NotEmpty(t, r.ContractStorage(contractName))

		c := testMigrationFromDump(t, r)
		require.Equal(t, env.fjordHash, c.Hash())

		n, err := c.Call(t, "balanceOf", acc.ScriptHash()).TryInteger()
		require.NoError(t, err)
		require.Equal(t, tests.BalanceOf(t, env.fjord, acc.ScriptHash()), n)

		ratio, err := c.Call(t, "exchangeRate").TryInteger()
		require.NoError(t, err)
		require.Equal(t, initialRatio, ratio)
	})
	require.NoError(t, err)
}

func testMigrationFromDump(t *testing.T, d *dump.Reader) *migration.Contract {
	var balancesPrev = new(big.Int)

	c := migration.NewContract(t, d, contractName, migration.ContractOptions{
		SourceCodeDir: fjordPath,
		StorageDumpHandler: func(key, value []byte) {
			if len(key) > 0 && key[0] == 'a' {
				balancesPrev.Add(balancesPrev, bigint.FromBytes(value))
			}
		},
		PatchStorage: func(committee util.Uint160, key, value []byte) []byte {
			if len(key) != 1 || key[0] != 'c' {
				return value
			}

			item, err := stackitem.Deserialize(value)
			require.NoError(t, err)

			item.Value().([]stackitem.Item)[0] = stackitem.NewByteArray(committee.BytesBE())

			res, err := stackitem.Serialize(item)
			require.NoError(t, err)

			return res
		},
	})

	prevSupply, err := c.Call(t, "totalSupply").TryInteger()
	require.NoError(t, err)
	require.Equal(t, prevSupply, balancesPrev)

	prevLive := c.Call(t, "live")
	prevRatio := c.GetStorageItem([]byte{'x'})

	version, err := c.Call(t, "version").TryInteger()
	require.NoError(t, err)

	if version.Int64() == common.Version {
		c.CheckUpdateFail(t, common.ErrAlreadyUpdated)
	} else {
		c.CheckUpdateSuccess(t)
	}

	supply, err := c.Call(t, "totalSupply").TryInteger()
	require.NoError(t, err)
	require.Equal(t, prevSupply, supply)
	require.Equal(t, prevLive, c.Call(t, "live"))
	require.Equal(t, prevRatio, c.GetStorageItem([]byte{'x'}))

	balances := new(big.Int)
	c.SeekStorage([]byte{'a'}, func(_, value []byte) {
		balances.Add(balances, bigint.FromBytes(value))
	})
	require.Equal(t, supply, balances)

	return c
}
