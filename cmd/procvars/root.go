package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/procvars"
	"github.com/hupe1980/procvars/codec"
	"github.com/hupe1980/procvars/config"
	"github.com/hupe1980/procvars/core"
	"github.com/hupe1980/procvars/store"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	out     io.Writer
	logOut  io.Writer

	store *store.InMemoryStore
	pv    *procvars.ProcVars
}

func newRootCmd(out, logOut io.Writer) *cobra.Command {
	a := &app{out: out, logOut: logOut}

	rootCmd := &cobra.Command{
		Use:   "procvars",
		Short: "Inspect and mutate execution variables of a process tree",
		Long: `procvars loads an execution tree with its variables from a TOML fixture,
applies a single operation and prints the resulting variables as JSON.

The tree lives in memory for the duration of the command only, which makes
procvars a tool for inspecting fixtures and dry-running variable batches.

Examples:
  procvars --config tree.toml tree
  procvars --config tree.toml list task-1
  procvars --config tree.toml list task-1 --scope global
  procvars --config tree.toml set task-1 '[{"name":"approved","type":"boolean","value":true}]'
  procvars --config tree.toml clear task-1`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "TOML file with log settings and the execution tree")

	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newSetCmd())
	rootCmd.AddCommand(a.newSetBinaryCmd())
	rootCmd.AddCommand(a.newClearCmd())
	rootCmd.AddCommand(a.newTreeCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger, err := cfg.Log.Logger(a.logOut)
	if err != nil {
		return err
	}

	a.store = store.NewInMemoryStore()
	if err := a.store.Seed(cfg.SeedExecutions()); err != nil {
		return err
	}
	a.pv = procvars.New(func(o *procvars.Options) {
		o.Backend = a.store
		o.Logger = logger.WithComponent("cli").WithContext("command", cmd.Name())
	})
	return nil
}

func (a *app) printVariables(vars []core.Variable) error {
	rvs, err := codec.EncodeAll(vars, nil)
	if err != nil {
		return err
	}
	return a.printJSON(rvs)
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
