package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/njord-contract/common"
	"github.com/nspcc-dev/njord-contract/rpc/fjord"
	"github.com/nspcc-dev/njord-contract/rpc/njord"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for Njord and Fjord deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Funds groups fee receivers of both contracts. Treasury fund becomes the
// owner of Njord contract.
type Funds struct {
	AutoLiquidity util.Uint160
	Treasury      util.Uint160
	RiskFree      util.Uint160
	SupplyControl util.Uint160
}

// Prm groups all parameters of the deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy contracts to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It becomes the owner of Fjord contract.
	LocalAccount *wallet.Account

	Funds Funds

	// Liquidity pair of Njord token. Zero value means the pair is set later
	// by the owner.
	Pair util.Uint160

	Njord CommonDeployPrm
	Fjord CommonDeployPrm
}

// Result groups on-chain addresses of the synchronized contracts.
type Result struct {
	Njord util.Uint160
	Fjord util.Uint160
}

// Deploy synchronizes Njord and Fjord contracts with the chain: missing
// contracts are deployed, existing ones are updated if their on-chain
// executable differs from the local one. Finally, Fjord is whitelisted in
// Njord if the local account owns Njord contract, so wrapping is not charged
// with fees.
//
// Deploy may be called repeatedly, contracts deployed before are reused.
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	if prm.LocalAccount == nil {
		return res, errNoLocalAccount
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from single local account: %w", err)
	}

	syncPrm := syncContractPrm{
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		actor:      act,
		localAcc:   prm.LocalAccount,
	}

	syncPrm.name = "Njord"
	syncPrm.common = prm.Njord
	syncPrm.deployData = njordDeployData(prm.Funds, prm.Pair)
	syncPrm.update = func(a *actor.Actor, h util.Uint160, nefBytes, manifestBytes []byte) (util.Uint256, uint32, error) {
		return njord.New(a, h).Update(nefBytes, manifestBytes, nil)
	}

	prm.Logger.Info("synchronizing Njord contract with the chain...")

	res.Njord, err = syncContract(ctx, syncPrm)
	if err != nil {
		return res, fmt.Errorf("sync Njord contract with the chain: %w", err)
	}

	prm.Logger.Info("Njord contract successfully synchronized", zap.Stringer("address", res.Njord))

	syncPrm.name = "Fjord"
	syncPrm.common = prm.Fjord
	syncPrm.deployData = fjordDeployData(prm.Funds, res.Njord)
	syncPrm.update = func(a *actor.Actor, h util.Uint160, nefBytes, manifestBytes []byte) (util.Uint256, uint32, error) {
		return fjord.New(a, h).Update(nefBytes, manifestBytes, nil)
	}

	prm.Logger.Info("synchronizing Fjord contract with the chain...")

	res.Fjord, err = syncContract(ctx, syncPrm)
	if err != nil {
		return res, fmt.Errorf("sync Fjord contract with the chain: %w", err)
	}

	prm.Logger.Info("Fjord contract successfully synchronized", zap.Stringer("address", res.Fjord))

	err = whitelistWrapper(ctx, prm.Logger, act, prm.LocalAccount, res)
	if err != nil {
		return res, fmt.Errorf("whitelist Fjord contract in Njord: %w", err)
	}

	return res, nil
}

func njordDeployData(f Funds, pair util.Uint160) []any {
	var p any
	if !pair.Equals(util.Uint160{}) {
		p = pair
	}

	return []any{f.AutoLiquidity, f.Treasury, f.RiskFree, f.SupplyControl, p}
}

func fjordDeployData(f Funds, njordContract util.Uint160) []any {
	return []any{njordContract, f.AutoLiquidity, f.Treasury, f.RiskFree, f.SupplyControl}
}

type syncContractPrm struct {
	logger     *zap.Logger
	blockchain Blockchain
	actor      *actor.Actor
	localAcc   *wallet.Account

	name       string
	common     CommonDeployPrm
	deployData []any

	update func(a *actor.Actor, h util.Uint160, nefBytes, manifestBytes []byte) (util.Uint256, uint32, error)
}

// syncContract deploys the contract if it is missing on the chain or updates
// it otherwise. The address is a function of the local account, so the same
// contract is found on repeated calls.
func syncContract(ctx context.Context, prm syncContractPrm) (util.Uint160, error) {
	h := state.CreateContractHash(prm.localAcc.ScriptHash(), prm.common.NEF.Checksum, prm.common.Manifest.Name)
	l := prm.logger.With(zap.String("contract", prm.name), zap.Stringer("address", h))

	onChain, err := prm.blockchain.GetContractStateByHash(h)
	if err != nil {
		if !isErrContractNotFound(err) {
			return h, fmt.Errorf("get contract state: %w", err)
		}

		l.Info("contract is missing on the chain, deploying...")

		txHash, vub, err := management.New(prm.actor).Deploy(&prm.common.NEF, &prm.common.Manifest, prm.deployData)
		err = await(ctx, prm.actor, txHash, vub, err)
		if err != nil {
			return h, fmt.Errorf("deploy contract: %w", err)
		}

		l.Info("contract successfully deployed", zap.Stringer("tx", txHash))

		return h, nil
	}

	if onChain.NEF.Checksum == prm.common.NEF.Checksum {
		l.Debug("on-chain contract matches the local one, skip update")
		return h, nil
	}

	nefBytes, err := prm.common.NEF.Bytes()
	if err != nil {
		return h, fmt.Errorf("encode NEF: %w", err)
	}

	manifestBytes, err := json.Marshal(&prm.common.Manifest)
	if err != nil {
		return h, fmt.Errorf("encode manifest: %w", err)
	}

	l.Info("updating on-chain contract...")

	txHash, vub, err := prm.update(prm.actor, h, nefBytes, manifestBytes)
	if err != nil && strings.Contains(err.Error(), common.ErrAlreadyUpdated) {
		l.Info("on-chain contract is already of the latest version")
		return h, nil
	}

	err = await(ctx, prm.actor, txHash, vub, err)
	if err != nil {
		return h, fmt.Errorf("update contract: %w", err)
	}

	l.Info("contract successfully updated", zap.Stringer("tx", txHash))

	return h, nil
}

func whitelistWrapper(ctx context.Context, log *zap.Logger, act *actor.Actor, localAcc *wallet.Account, res Result) error {
	n := njord.New(act, res.Njord)

	ok, err := n.IsWhitelisted(res.Fjord)
	if err != nil {
		return fmt.Errorf("check whitelist: %w", err)
	}

	if ok {
		log.Debug("Fjord contract is already whitelisted in Njord")
		return nil
	}

	owner, err := n.Owner()
	if err != nil {
		return fmt.Errorf("get Njord owner: %w", err)
	}

	if !owner.Equals(localAcc.ScriptHash()) {
		log.Warn("local account does not own Njord contract, Fjord must be whitelisted by the owner",
			zap.String("owner", owner.StringLE()), zap.Stringer("fjord", res.Fjord))
		return nil
	}

	txHash, vub, err := n.SetWhitelist(res.Fjord)
	err = await(ctx, act, txHash, vub, err)
	if err != nil {
		return err
	}

	log.Info("Fjord contract whitelisted in Njord", zap.Stringer("tx", txHash))

	return nil
}

// await waits for the transaction sent by the actor to be accepted and checks
// that it has been executed successfully.
func await(ctx context.Context, act *actor.Actor, txHash util.Uint256, vub uint32, err error) error {
	if err != nil {
		return err
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	aer, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for transaction %s: %w", txHash.StringLE(), err)
	}

	if aer.VMState != vmstate.Halt {
		return fmt.Errorf("transaction %s failed: %s", txHash.StringLE(), aer.FaultException)
	}

	return nil
}

var errNoLocalAccount = errors.New("missing local account")

func isErrContractNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Unknown contract")
}
