package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/conf/v3"
	"github.com/ledgermint/ledgermint/foundation/keystore"
	"github.com/ledgermint/ledgermint/foundation/ledger/database"
	"github.com/ledgermint/ledgermint/foundation/ledger/state"
	"github.com/ledgermint/ledgermint/foundation/ledger/viewer"
	"github.com/ledgermint/ledgermint/foundation/logger"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("NODE")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Ledger struct {
			Difficulty        uint32 `conf:"default:4"`
			TransRootStrategy string `conf:"default:placeholder"`
		}
		Display struct {
			Enabled bool   `conf:"default:true"`
			Folder  string `conf:"default:zblock/display/"`
			Open    bool   `conf:"default:false"`
		}
		KeyStore struct {
			Folder string `conf:"default:zblock/accounts/"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "copyright information here",
		},
	}

	// Parse will set the defaults and then look for any overriding values
	// in environment variables and command line flags.
	const prefix = "NODE"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	fmt.Println(` _     _____ ____   ____ _____ ____  __  __ ___ _   _ _____ `)
	fmt.Println(`| |   | ____|  _ \ / ___| ____|  _ \|  \/  |_ _| \ | |_   _|`)
	fmt.Println(`| |   |  _| | | | | |  _|  _| | |_) | |\/| || ||  \| | | |  `)
	fmt.Println(`| |___| |___| |_| | |_| | |___|  _ <| |  | || || |\  | | |  `)
	fmt.Println(`|_____|_____|____/ \____|_____|_| \_\_|  |_|___|_| \_| |_|  `)
	fmt.Print("\n")

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	// Display the current configuration to the logs.
	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Wallet Accounts

	// The keystore provides name resolution for wallet public keys. The
	// names come from the file names in the accounts folder.
	ks, err := keystore.New(cfg.KeyStore.Folder)
	if err != nil {
		return fmt.Errorf("unable to load account keystore: %w", err)
	}

	// Logging the accounts for documentation in the logs.
	for publicKey, name := range ks.Copy() {
		log.Infow("startup", "status", "keystore", "name", name, "key", publicKey)
	}

	// =========================================================================
	// Ledger Support

	// Bridge ledger events into the application logger.
	ev := func(v string, args ...any) {
		log.Infow(fmt.Sprintf(v, args...))
	}

	// The display sink is an injected capability. Rendering failures are the
	// sink's problem and never reach the chain.
	var display state.DisplayFunc
	if cfg.Display.Enabled {
		display = viewer.NewTerminalSink(cfg.Display.Folder, cfg.Display.Open, log)
	}

	log.Infow("startup", "status", "mining genesis block", "difficulty", cfg.Ledger.Difficulty)

	// Constructing the ledger mines the genesis block synchronously.
	st, err := state.New(state.Config{
		Difficulty:        cfg.Ledger.Difficulty,
		TransRootStrategy: cfg.Ledger.TransRootStrategy,
		EvHandler:         ev,
		Display:           display,
	})
	if err != nil {
		return fmt.Errorf("unable to construct ledger: %w", err)
	}

	genesis := st.LatestBlock()
	st.DisplayBlock(genesis)

	// =========================================================================
	// Status Report

	log.Infow("startup", "status", "ledger initialized",
		"chainLength", st.ChainLength(),
		"pending", st.PendingCount(),
		"difficulty", st.Difficulty(),
		"valid", st.Validate(),
		"latestHash", genesis.Hash(),
		"latestHeight", genesis.Header.Height,
		"txFee", database.TxFee,
	)

	log.Infow("startup", "status", "ready for transactions")

	return nil
}
