// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ava-labs/avalanchego/api/metrics"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/counter/config"
	"github.com/ava-labs/counter/consts"
	"github.com/ava-labs/counter/host"
	"github.com/ava-labs/counter/pebble"
	"github.com/ava-labs/counter/program"
	"github.com/ava-labs/counter/storage"

	ctrace "github.com/ava-labs/counter/trace"
)

const accountsNamespace = "accounts"

type counterCLI struct {
	configPath string
	logLevel   string
	dataDir    string
	verbose    bool

	cfg      *config.Config
	log      logging.Logger
	gatherer metrics.MultiGatherer
	tracer   trace.Tracer
	db       *pebble.Database
	host     *host.Host
}

// Execute runs the CLI with [args], reading plans from [in] and writing
// command output to [out].
func Execute(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	return execute(ctx, &counterCLI{}, args, in, out)
}

// execute releases everything [c] opened once the command returns, whether
// or not it failed.
func execute(ctx context.Context, c *counterCLI, args []string, in io.Reader, out io.Writer) error {
	defer c.close()

	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	return root.ExecuteContext(ctx)
}

func newRootCmd(c *counterCLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counter-cli",
		Short: "Local host for the counter program",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a JSON config file")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (overrides config)")
	cmd.PersistentFlags().StringVar(&c.dataDir, "data-dir", "", "data directory (overrides config)")
	cmd.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "display logs on stderr")

	cmd.AddCommand(
		newAccountCmd(c),
		newInstructionCmd(c, incrementCmd),
		newInstructionCmd(c, decrementCmd),
		newInstructionCmd(c, updateCmd),
		newResetCmd(c),
		newInvokeCmd(c),
		newGetCmd(c),
		newRunCmd(c),
		newServeCmd(c),
	)
	return cmd
}

func (c *counterCLI) init(cmd *cobra.Command) error {
	var cfgBytes []byte
	if len(c.configPath) > 0 {
		b, err := os.ReadFile(c.configPath)
		if err != nil {
			return err
		}
		cfgBytes = b
	}
	cfg, err := config.New(cfgBytes)
	if err != nil {
		return err
	}
	if len(c.logLevel) > 0 {
		cfg.LogLevel, err = logging.ToLevel(c.logLevel)
		if err != nil {
			return err
		}
	}
	if len(c.dataDir) > 0 {
		cfg.DataDir = c.dataDir
	}
	c.cfg = cfg

	c.log = newLogger(cfg.LogLevel, cfg.DataDir, c.verbose)

	c.gatherer = metrics.NewPrefixGatherer()
	c.db, err = storage.New(cfg.Pebble, cfg.DataDir, accountsNamespace, c.gatherer)
	if err != nil {
		return err
	}

	c.tracer, err = ctrace.New(cfg.GetTraceConfig(cmd.Name()))
	if err != nil {
		return err
	}

	prog, registry, err := program.New(c.log)
	if err != nil {
		return err
	}
	if err := c.gatherer.Register("program", registry); err != nil {
		return err
	}
	c.host = host.New(c.log, c.tracer, c.db, prog)

	c.log.Info("counter-cli initialized",
		zap.String("version", consts.Version.String()),
		zap.String("dataDir", cfg.DataDir),
		zap.Stringer("logLevel", cfg.LogLevel),
	)
	return nil
}

// close releases whatever init managed to open. It is safe to call on a
// partially initialized CLI.
func (c *counterCLI) close() {
	var errs []error
	if c.tracer != nil {
		errs = append(errs, c.tracer.Close())
		c.tracer = nil
	}
	if c.db != nil {
		errs = append(errs, c.db.Close())
		c.db = nil
	}
	if err := errors.Join(errs...); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close counter-cli: %s\n", err)
	}
	if c.log != nil {
		c.log.Stop()
		c.log = nil
	}
}
