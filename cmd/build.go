package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cottand/lamb/backend"
	"github.com/cottand/lamb/lamb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/mod/modfile"
)

var BuildCmd = &cobra.Command{
	Use:          "build file.lamb -o dir",
	Short:        "Transpile a program into a Go module",
	RunE:         runBuild,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

const builtModule = "lambProgram"

var buildOutPath string

func init() {
	BuildCmd.Flags().StringVarP(&buildOutPath, "out", "o", "out", "output directory")
}

// buildAt type-checks p and writes it as a main package under outPath
func buildAt(ctx context.Context, p *lamb.Program, outPath string) error {
	res := p.Check(ctx, lamb.Show{Types: true})
	if res.Errors.HasError() {
		return errors.Errorf("errors found during compilation:\n%s", p.FormatErrors(res.Errors))
	}

	goSrc, err := p.GoMainSource()
	if err != nil {
		return errors.Wrap(err, "could not transpile program")
	}
	if err := os.WriteFile(filepath.Join(outPath, "main.go"), []byte(goSrc), 0o644); err != nil {
		return errors.Wrap(err, "could not write main.go")
	}
	if err := writeGoMod(filepath.Join(outPath, "go.mod")); err != nil {
		return errors.Wrap(err, "could not write go.mod")
	}
	return nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	p, src, err := readProgram(args[0])
	if err != nil {
		if src != "" {
			newStyles(settings.Color).writeError(cmd.ErrOrStderr(), src, err)
			return errProgramFailed
		}
		return err
	}

	err = os.MkdirAll(buildOutPath, os.ModePerm)
	if err != nil {
		return errors.Wrap(err, "could not create output directory")
	}
	return buildAt(cmd.Context(), p, buildOutPath)
}

func writeGoMod(at string) error {
	f := &modfile.File{}
	if err := f.AddModuleStmt(builtModule); err != nil {
		return err
	}
	if err := f.AddGoStmt(backend.GoVersion); err != nil {
		return err
	}
	contents, err := f.Format()
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Clean(at), contents, 0o644)
}
