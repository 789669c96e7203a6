//go:build !(js || wasm)

package main

import (
	"os"

	"github.com/cottand/lamb/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lamb [subcommand]",
	Short: "lamb λ\n a small lambda calculus with type inference",
	Args:  cobra.NoArgs,
	// with no subcommand, start the REPL
	RunE:         cmd.ReplCmd.RunE,
	SilenceUsage: true,
}

func init() {
	cmd.AddGlobalFlags(rootCmd)
	rootCmd.AddCommand(cmd.ReplCmd)
	rootCmd.AddCommand(cmd.EvalCmd)
	rootCmd.AddCommand(cmd.BuildCmd)
	rootCmd.AddCommand(cmd.RunCmd)
}
