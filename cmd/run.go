package cmd

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cottand/lamb/lamb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var RunCmd = &cobra.Command{
	Use:          "run file.lamb",
	Short:        "Run a program through the Go backend",
	RunE:         runRun,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var runNative bool

func init() {
	RunCmd.Flags().BoolVar(&runNative, "native", false, "build the program with the go toolchain and run the binary")
}

func runRun(cmd *cobra.Command, args []string) error {
	p, src, err := readProgram(args[0])
	s := newStyles(settings.Color)
	if err != nil {
		if src != "" {
			s.writeError(cmd.ErrOrStderr(), src, err)
			return errProgramFailed
		}
		return err
	}

	if runNative {
		return runWithGo(cmd, p)
	}

	// running always evaluates, the display flags only decide whether the type is printed too
	show := lamb.Show{Types: settings.ShowTypes, Values: true, Compiled: true}
	res := p.Check(cmd.Context(), show)
	if res.Errors.HasError() {
		s.writeErrors(cmd.ErrOrStderr(), p, res.Errors)
		return errProgramFailed
	}
	s.writeResult(cmd.OutOrStdout(), p, res)
	return nil
}

func runWithGo(cmd *cobra.Command, p *lamb.Program) error {
	tmpFolder, err := os.MkdirTemp("", "lamb-run-*")
	if err != nil {
		return err
	}
	defer func(path string) {
		_ = os.RemoveAll(path)
	}(tmpFolder)

	if err := buildAt(cmd.Context(), p, tmpFolder); err != nil {
		return errors.Wrap(err, "could not build program")
	}

	command := exec.CommandContext(cmd.Context(), "go", "build", "-o", builtModule, "./.")
	command.Stdout = cmd.OutOrStdout()
	command.Stderr = cmd.ErrOrStderr()
	command.Dir = tmpFolder
	if err := command.Run(); err != nil {
		return errors.Wrap(err, "could not run go build")
	}

	command = exec.CommandContext(cmd.Context(), filepath.Join(tmpFolder, builtModule))
	command.Stdout = cmd.OutOrStdout()
	command.Stderr = cmd.ErrOrStderr()
	return command.Run()
}
