package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nspcc-dev/njord-contract/rpc/fjord"
	"github.com/nspcc-dev/njord-contract/rpc/njord"
	"github.com/nspcc-dev/njord-contract/tests/dump"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var (
	rpcFlag = cli.StringFlag{
		Name:  "rpc",
		Usage: "Network address of the Neo RPC server",
	}
	timeoutFlag = cli.DurationFlag{
		Name:  "timeout",
		Usage: "Timeout for dial and every RPC request",
		Value: 15 * time.Second,
	}
	njordFlag = cli.StringFlag{
		Name:  "njord",
		Usage: "Address or script hash of the Njord contract",
	}
	fjordFlag = cli.StringFlag{
		Name:  "fjord",
		Usage: "Address or script hash of the Fjord contract (optional)",
	}
	labelFlag = cli.StringFlag{
		Name:  "label",
		Usage: "Label of the blockchain environment (e.g. 'testnet')",
	}
	outFlag = cli.StringFlag{
		Name:  "out",
		Usage: "Root directory of the dumps",
		Value: "testdata",
	}
)

func main() {
	os.Exit(run())
}

func run() int {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	app := cli.NewApp()
	app.Name = "njord-dump"
	app.Usage = "Dump and inspect deployed Njord and Fjord contracts"
	app.Commands = []cli.Command{
		{
			Name:   "dump",
			Usage:  "Save contract states and storages for migration tests",
			Flags:  []cli.Flag{rpcFlag, timeoutFlag, njordFlag, fjordFlag, labelFlag, outFlag},
			Action: func(c *cli.Context) error { return dumpContracts(c, log) },
		},
		{
			Name:   "status",
			Usage:  "Print rebase and wrapping state of the contracts",
			Flags:  []cli.Flag{rpcFlag, timeoutFlag, njordFlag, fjordFlag},
			Action: func(c *cli.Context) error { return printStatus(c, log) },
		},
	}

	err = app.Run(os.Args)
	if err != nil {
		log.Error("command failed", zap.Error(err))
		return 1
	}

	return 0
}

type target struct {
	name string
	hash string
}

func targets(c *cli.Context) ([]target, error) {
	if c.String(njordFlag.Name) == "" {
		return nil, errors.New("missing Njord contract")
	}

	res := []target{{name: "njord", hash: c.String(njordFlag.Name)}}
	if s := c.String(fjordFlag.Name); s != "" {
		res = append(res, target{name: "fjord", hash: s})
	}

	return res, nil
}

func dial(c *cli.Context) (*remoteBlockchain, error) {
	if c.String(rpcFlag.Name) == "" {
		return nil, errors.New("missing Neo RPC endpoint")
	}

	b, err := newRemoteBlockChain(c.String(rpcFlag.Name), c.Duration(timeoutFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("init remote blockchain: %w", err)
	}

	return b, nil
}

func dumpContracts(c *cli.Context, log *zap.Logger) error {
	label := c.String(labelFlag.Name)
	if label == "" {
		return errors.New("missing blockchain label")
	}

	ts, err := targets(c)
	if err != nil {
		return err
	}

	rootDir := c.String(outFlag.Name)

	err = os.MkdirAll(rootDir, 0700)
	if err != nil {
		return fmt.Errorf("create root dir: %w", err)
	}

	b, err := dial(c)
	if err != nil {
		return err
	}

	defer b.close()

	d, err := dump.NewCreator(rootDir, dump.ID{
		Label: label,
		Block: b.currentBlock,
	})
	if err != nil {
		return fmt.Errorf("init local dumper: %w", err)
	}

	for _, t := range ts {
		log.Info("processing contract", zap.String("name", t.name), zap.String("contract", t.hash))

		h, err := parseContract(t.hash)
		if err != nil {
			return errors.Join(err, d.Close())
		}

		st, err := b.contractState(h)
		if err != nil {
			return errors.Join(fmt.Errorf("get '%s' contract state: %w", t.name, err), d.Close())
		}

		w := d.AddContract(t.name, st)

		err = b.iterateContractStorage(h, w.Write)
		if err != nil {
			return errors.Join(fmt.Errorf("iterate '%s' contract storage: %w", t.name, err), d.Close())
		}

		log.Info("contract storage is read", zap.String("name", t.name), zap.Int("items", d.ItemCount(t.name)))
	}

	err = d.Flush()
	if err != nil {
		return errors.Join(fmt.Errorf("flush dump: %w", err), d.Close())
	}

	err = d.Close()
	if err != nil {
		return fmt.Errorf("close dump: %w", err)
	}

	log.Info("contracts are successfully dumped",
		zap.String("dir", rootDir), zap.String("label", label), zap.Uint32("block", b.currentBlock))

	return nil
}

func printStatus(c *cli.Context, log *zap.Logger) error {
	ts, err := targets(c)
	if err != nil {
		return err
	}

	b, err := dial(c)
	if err != nil {
		return err
	}

	defer b.close()

	h, err := parseContract(ts[0].hash)
	if err != nil {
		return err
	}

	n := njord.NewReader(b.actor, h)

	supply, err := n.TotalSupply()
	if err != nil {
		return fmt.Errorf("total supply: %w", err)
	}
	circulating, err := n.CirculatingSupply()
	if err != nil {
		return fmt.Errorf("circulating supply: %w", err)
	}
	rate, err := n.RebaseRate()
	if err != nil {
		return fmt.Errorf("rebase rate: %w", err)
	}
	autoRebase, err := n.AutoRebase()
	if err != nil {
		return fmt.Errorf("auto rebase flag: %w", err)
	}
	last, err := n.LastRebasedTime()
	if err != nil {
		return fmt.Errorf("last rebase time: %w", err)
	}
	fees, err := n.Fees()
	if err != nil {
		return fmt.Errorf("fees: %w", err)
	}
	dead, err := n.DeadAccount()
	if err != nil {
		return fmt.Errorf("dead account: %w", err)
	}
	burnt, err := n.BalanceOf(dead)
	if err != nil {
		return fmt.Errorf("dead account balance: %w", err)
	}

	log.Info("njord",
		zap.Stringer("supply", supply),
		zap.Stringer("circulating", circulating),
		zap.Stringer("burnt", burnt),
		zap.Stringer("rate", rate),
		zap.Bool("auto rebase", autoRebase),
		zap.Time("last rebase", time.UnixMilli(last.Int64())),
		zap.Any("fees", fees),
	)

	if len(ts) == 1 {
		return nil
	}

	h, err = parseContract(ts[1].hash)
	if err != nil {
		return err
	}

	f := fjord.NewReader(b.actor, h)

	ratio, err := f.ExchangeRate()
	if err != nil {
		return fmt.Errorf("exchange rate: %w", err)
	}
	wrapped, err := f.TotalSupply()
	if err != nil {
		return fmt.Errorf("wrapped supply: %w", err)
	}
	live, err := f.Live()
	if err != nil {
		return fmt.Errorf("live status: %w", err)
	}

	log.Info("fjord",
		zap.Stringer("ratio", ratio),
		zap.Stringer("supply", wrapped),
		zap.Bool("live", live),
	)

	return nil
}
