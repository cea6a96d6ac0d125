package deploy

import (
	"context"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/config/netmode"
	"github.com/nspcc-dev/neo-go/pkg/consensus"
	"github.com/nspcc-dev/neo-go/pkg/core"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/network"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/services/rpcsrv"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/njord-contract/rpc/fjord"
	"github.com/nspcc-dev/njord-contract/rpc/njord"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDeployData(t *testing.T) {
	f := Funds{
		AutoLiquidity: util.Uint160{1},
		Treasury:      util.Uint160{2},
		RiskFree:      util.Uint160{3},
		SupplyControl: util.Uint160{4},
	}

	data := njordDeployData(f, util.Uint160{})
	require.Len(t, data, 5)
	require.Nil(t, data[4])
	require.Equal(t, f.Treasury, data[1])

	data = njordDeployData(f, util.Uint160{5})
	require.Equal(t, util.Uint160{5}, data[4])

	data = fjordDeployData(f, util.Uint160{6})
	require.Equal(t, []any{util.Uint160{6}, f.AutoLiquidity, f.Treasury, f.RiskFree, f.SupplyControl}, data)
}

func TestDeployWithoutAccount(t *testing.T) {
	_, err := Deploy(context.Background(), Prm{Logger: zaptest.NewLogger(t)})
	require.ErrorIs(t, err, errNoLocalAccount)
}

func TestIsErrContractNotFound(t *testing.T) {
	require.False(t, isErrContractNotFound(nil))
	require.False(t, isErrContractNotFound(fmt.Errorf("connection refused")))
	require.True(t, isErrContractNotFound(fmt.Errorf("Unknown contract (-102)")))
}

// newLocalBlockchain starts single-node network producing blocks and returns
// RPC client connected to it along with the multi-signature account of the
// validator holding all GAS.
func newLocalBlockchain(t *testing.T) (*rpcclient.Internal, *wallet.Account) {
	validatorAcc, err := wallet.NewAccount()
	require.NoError(t, err)

	var validatorMulti = new(wallet.Account)
	*validatorMulti = *validatorAcc
	err = validatorMulti.ConvertMultisig(1, []*keys.PublicKey{validatorAcc.PublicKey()})
	require.NoError(t, err)

	var (
		tmpDir     = t.TempDir()
		walletPath = filepath.Join(tmpDir, "wallet.json")
		wlt        = wallet.NewInMemoryWallet()
	)

	err = validatorAcc.Encrypt("", keys.NEP2ScryptParams())
	require.NoError(t, err)
	wlt.Accounts = append(wlt.Accounts, validatorAcc)
	wlt.SetPath(walletPath)
	require.NoError(t, wlt.Save())

	var (
		cfg = config.Config{
			ApplicationConfiguration: config.ApplicationConfiguration{
				RPC: config.RPC{
					BasicService: config.BasicService{
						Enabled: true,
					},
					MaxGasInvoke: fixedn.Fixed8FromInt64(50),
				},
				Consensus: config.Consensus{
					Enabled: true,
					UnlockWallet: config.Wallet{
						Path:     walletPath,
						Password: "",
					},
				},
			},
			ProtocolConfiguration: config.ProtocolConfiguration{
				Magic:           netmode.UnitTestNet,
				MaxTimePerBlock: 20 * time.Second,
				Genesis: config.Genesis{
					MaxTraceableBlocks:          1000,
					MaxValidUntilBlockIncrement: 1000 / 2,
					TimePerBlock:                50 * time.Millisecond,
				},
				StandbyCommittee:   []string{hex.EncodeToString(validatorAcc.PublicKey().Bytes())},
				ValidatorsCount:    1,
				VerifyTransactions: true,
			},
		}
		logger = zaptest.NewLogger(t)
		store  = storage.NewMemoryStore()
	)

	bc, err := core.NewBlockchain(store, config.Blockchain{ProtocolConfiguration: cfg.ProtocolConfiguration}, logger)
	require.NoError(t, err)
	go bc.Run()
	t.Cleanup(bc.Close)

	serverConfig, err := network.NewServerConfig(config.Config{ProtocolConfiguration: cfg.ProtocolConfiguration})
	require.NoError(t, err)
	serverConfig.UserAgent = fmt.Sprintf(config.UserAgentFormat, "njord")
	netSrv, err := network.NewServer(serverConfig, bc, bc.GetStateSyncModule(), logger)
	require.NoError(t, err)
	cons, err := consensus.NewService(consensus.Config{
		Logger:                logger,
		Broadcast:             netSrv.BroadcastExtensible,
		Chain:                 bc,
		BlockQueue:            netSrv.GetBlockQueue(),
		ProtocolConfiguration: cfg.ProtocolConfiguration,
		RequestTx:             netSrv.RequestTx,
		StopTxFlow:            netSrv.StopTxFlow,
		Wallet:                cfg.ApplicationConfiguration.Consensus.UnlockWallet,
	})
	require.NoError(t, err)
	netSrv.AddConsensusService(cons, cons.OnPayload, cons.OnTransaction)
	netSrv.Start()

	errCh := make(chan error, 2)
	rpcServer := rpcsrv.New(bc, cfg.ApplicationConfiguration.RPC, netSrv, nil, logger, errCh)
	rpcServer.Start()
	t.Cleanup(rpcServer.Shutdown)

	rpcClient, err := rpcclient.NewInternal(context.TODO(), rpcServer.RegisterLocal)
	require.NoError(t, err)
	require.NoError(t, rpcClient.Init())

	return rpcClient, validatorMulti
}

func compile(t *testing.T, name string) CommonDeployPrm {
	dir := filepath.Join("..", "contracts", name)
	c := neotest.CompileFile(t, util.Uint160{}, dir, filepath.Join(dir, "config.yml"))

	return CommonDeployPrm{
		NEF:      *c.NEF,
		Manifest: *c.Manifest,
	}
}

func TestDeploy(t *testing.T) {
	rpcClient, localAcc := newLocalBlockchain(t)

	newAddress := func() util.Uint160 {
		acc, err := wallet.NewAccount()
		require.NoError(t, err)
		return acc.ScriptHash()
	}

	prm := Prm{
		Logger:       zaptest.NewLogger(t),
		Blockchain:   rpcClient,
		LocalAccount: localAcc,
		Funds: Funds{
			AutoLiquidity: newAddress(),
			Treasury:      localAcc.ScriptHash(),
			RiskFree:      newAddress(),
			SupplyControl: newAddress(),
		},
		Pair:  newAddress(),
		Njord: compile(t, "njord"),
		Fjord: compile(t, "fjord"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := Deploy(ctx, prm)
	require.NoError(t, err)

	inv, err := actor.NewSimple(rpcClient, localAcc)
	require.NoError(t, err)

	n := njord.NewReader(inv, res.Njord)
	owner, err := n.Owner()
	require.NoError(t, err)
	require.Equal(t, localAcc.ScriptHash(), owner)

	pair, err := n.Pair()
	require.NoError(t, err)
	require.Equal(t, prm.Pair, pair)

	ok, err := n.IsWhitelisted(res.Fjord)
	require.NoError(t, err)
	require.True(t, ok)

	f := fjord.NewReader(inv, res.Fjord)
	wrapped, err := f.Njord()
	require.NoError(t, err)
	require.Equal(t, res.Njord, wrapped)

	owner, err = f.Owner()
	require.NoError(t, err)
	require.Equal(t, localAcc.ScriptHash(), owner)

	t.Run("repeated", func(t *testing.T) {
		again, err := Deploy(ctx, prm)
		require.NoError(t, err)
		require.Equal(t, res, again)
	})
}
