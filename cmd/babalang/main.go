// ==============================================================================================
// FILE: cmd/babalang/main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: The CLI entrypoint, a cobra command tree replacing the teacher's two-branch
//          os.Args/REPL dispatch: a positional source file or an inline -c/--command string,
//          with --trace and --debug side channels for the pipeline's intermediate stages.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"babalang/internal/evaluator"
	"babalang/internal/lexer"
	"babalang/internal/parser"
	"babalang/internal/trace"
)

var (
	inlineCommand string
	traceFlag     bool
	debugFlag     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "babalang [file]",
		Short:         "Run a Babalang program",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runBabalang,
	}
	cmd.PersistentFlags().StringVarP(&inlineCommand, "command", "c", "", "inline source text")
	cmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "dump tokens/statements/instructions as they're built")
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "verbose evaluator tracing")
	return cmd
}

func runBabalang(cmd *cobra.Command, args []string) error {
	src, err := sourceOf(args)
	if err != nil {
		return err
	}

	logger := trace.NewLogger(cmd.ErrOrStderr(), debugFlag)

	toks, idents, err := lexer.Tokens(src)
	if err != nil {
		return err
	}
	if traceFlag {
		trace.DumpTokens(cmd.OutOrStdout(), idents, toks)
	}

	stmts, err := parser.ParseStatements(toks)
	if err != nil {
		return err
	}
	if traceFlag {
		trace.DumpStatements(cmd.OutOrStdout(), idents, stmts)
	}

	program, err := parser.BuildAST(stmts)
	if err != nil {
		return err
	}
	if traceFlag {
		trace.DumpInstructions(cmd.OutOrStdout(), program)
	}

	ctx := &evaluator.Context{
		Idents: idents,
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
	}
	logger.Debug("starting evaluation", "instructions", len(program))

	runErr := evaluator.Run(ctx, program)
	return exitFor(runErr)
}

// exitFor maps an ExitSignal to the process's own exit status (spec.md §6); any other error is
// reported on stderr by main's Execute wrapper via a plain non-nil return, exiting 1.
func exitFor(err error) error {
	if err == nil {
		return nil
	}
	if sig, ok := err.(*evaluator.ExitSignal); ok {
		if sig.Code == 0 {
			return nil
		}
		os.Exit(sig.Code)
	}
	return err
}

func sourceOf(args []string) (string, error) {
	if inlineCommand != "" && len(args) > 0 {
		return "", fmt.Errorf("pass either a source file or -c/--command, not both")
	}
	if inlineCommand != "" {
		return inlineCommand, nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("a source file or -c/--command is required")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
