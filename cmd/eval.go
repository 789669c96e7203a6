package cmd

import (
	"fmt"
	"runtime"

	"github.com/cottand/lamb/lamb"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var EvalCmd = &cobra.Command{
	Use:          "eval <expr> | -f file...",
	Short:        "Type-check and evaluate a single program",
	RunE:         runEval,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
}

var (
	evalFiles    []string
	evalAST      bool
	evalCompiled bool
)

func init() {
	EvalCmd.Flags().StringSliceVarP(&evalFiles, "file", "f", nil, "read programs from files, checked concurrently when there are several")
	EvalCmd.Flags().BoolVar(&evalAST, "ast", false, "print the parsed expression tree too")
	EvalCmd.Flags().BoolVar(&evalCompiled, "compiled", false, "evaluate through the Go backend")
}

var errProgramFailed = errors.New("the program has errors")

func runEval(cmd *cobra.Command, args []string) error {
	switch {
	case len(evalFiles) > 0 && len(args) > 0:
		return errors.New("give either an expression or --file, not both")
	case len(evalFiles) > 0:
		return evalAll(cmd, evalFiles)
	case len(args) == 1:
		p, err := lamb.NewProgram(args[0])
		if err != nil {
			newStyles(settings.Color).writeError(cmd.ErrOrStderr(), args[0], err)
			return errProgramFailed
		}
		return writeChecked(cmd, p, p.Check(cmd.Context(), evalShow()))
	default:
		return errors.New("nothing to evaluate: give an expression or --file")
	}
}

func evalShow() lamb.Show {
	show := showOf(settings)
	show.Compiled = evalCompiled
	return show
}

// evalAll checks every file, then prints the results in the order the files were given
func evalAll(cmd *cobra.Command, paths []string) error {
	s := newStyles(settings.Color)
	programs := make([]*lamb.Program, 0, len(paths))
	for _, path := range paths {
		p, src, err := readProgram(path)
		if err != nil {
			if src == "" {
				return err
			}
			s.writeError(cmd.ErrOrStderr(), src, err)
			return errProgramFailed
		}
		programs = append(programs, p)
	}

	results := lamb.CheckAll(cmd.Context(), programs, evalShow(), runtime.GOMAXPROCS(0))
	var failed error
	for i, res := range results {
		if len(paths) > 1 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.dim.Render(paths[i]+":"))
		}
		if err := writeChecked(cmd, programs[i], res); err != nil {
			failed = err
		}
	}
	return failed
}

func writeChecked(cmd *cobra.Command, p *lamb.Program, res lamb.Result) error {
	s := newStyles(settings.Color)
	if evalAST {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.dim.Render(pretty.Sprint(p.Expr())))
	}
	if res.Errors.HasError() {
		s.writeErrors(cmd.ErrOrStderr(), p, res.Errors)
		return errProgramFailed
	}
	s.writeResult(cmd.OutOrStdout(), p, res)
	return nil
}
