package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/procvars/codec"
	"github.com/hupe1980/procvars/core"
)

func (a *app) newListCmd() *cobra.Command {
	var scopeFlag string
	cmd := &cobra.Command{
		Use:   "list <execution>",
		Short: "List the variables of an execution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := core.ParseScope(strings.ToLower(scopeFlag))
			if err != nil {
				return err
			}
			vars, err := a.pv.Variables(args[0], sc)
			if err != nil {
				return err
			}
			return a.printVariables(vars)
		},
	}
	cmd.Flags().StringVar(&scopeFlag, "scope", "", "restrict to local or global variables")
	return cmd
}

func (a *app) newSetCmd() *cobra.Command {
	var override bool
	cmd := &cobra.Command{
		Use:   "set <execution> <json>",
		Short: "Create (or with --override update) a batch of variables",
		Long: `Create a batch of variables on an execution. The payload is a JSON array of
variables, or a single variable object, each with name, optional type, value
and optional scope. All variables of a batch must share the same scope.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rvs, err := codec.DecodeJSON([]byte(args[1]))
			if err != nil {
				return err
			}
			entries, err := codec.DecodeBatch(rvs)
			if err != nil {
				return err
			}
			apply := a.pv.CreateVariables
			if override {
				apply = a.pv.CreateOrUpdateVariables
			}
			vars, err := apply(args[0], entries)
			if err != nil {
				return err
			}
			return a.printVariables(vars)
		},
	}
	cmd.Flags().BoolVar(&override, "override", false, "overwrite variables that already exist")
	return cmd
}

func (a *app) newSetBinaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-binary <execution> <name> <file>",
		Short: "Store the contents of a file as a local binary variable",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[2])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[2], err)
			}
			v, err := a.pv.SetBinaryVariable(args[0], args[1], data)
			if err != nil {
				return err
			}
			return a.printVariables([]core.Variable{v})
		},
	}
}

func (a *app) newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <execution>",
		Short: "Delete all local variables of an execution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.pv.DeleteAllLocalVariables(args[0]); err != nil {
				return err
			}
			vars, err := a.pv.Variables(args[0], core.ScopeUnspecified)
			if err != nil {
				return err
			}
			return a.printVariables(vars)
		},
	}
}

func (a *app) newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the execution tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range a.store.Executions() {
				if e.IsRoot() {
					if err := a.printSubtree(e.ID, 0); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

func (a *app) printSubtree(id string, depth int) error {
	local, err := a.store.GetLocal(id)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(a.out, "%s%s (%d local)\n", strings.Repeat("  ", depth), id, len(local)); err != nil {
		return err
	}
	children, err := a.store.Children(id)
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := a.printSubtree(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
