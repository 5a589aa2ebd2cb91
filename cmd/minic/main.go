// Command minic compiles a single source string into x86-64 assembly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minic64/compiler"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		filePath   string
		outputPath string
		showTokens bool
		showAST    bool
	)

	cmd := &cobra.Command{
		Use:           "minic [source]",
		Short:         "compile a minic source program to x86-64 assembly",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args, filePath)
			if err != nil {
				return err
			}

			if showTokens {
				if err := printTokens(cmd, src); err != nil {
					return err
				}
			}
			if showAST {
				if err := printAST(cmd, src); err != nil {
					return err
				}
			}

			asm, err := compiler.Compile(src)
			if err != nil {
				return err
			}
			return writeOutput(outputPath, asm)
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "read source from a file instead of the positional argument")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write assembly to a file instead of stdout")
	cmd.Flags().BoolVar(&showTokens, "tokens", false, "print the token stream to stderr before compiling")
	cmd.Flags().BoolVar(&showAST, "ast", false, "print the parsed statement forest and symbol table to stderr before compiling")

	return cmd
}

func readSource(args []string, filePath string) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", filePath, err)
		}
		return string(data), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("no source given: pass a positional argument or --file")
}

func printTokens(cmd *cobra.Command, src string) error {
	tokens, err := compiler.Lex(src)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Fprintln(cmd.ErrOrStderr(), tok)
	}
	return nil
}

func printAST(cmd *cobra.Command, src string) error {
	tokens, err := compiler.Lex(src)
	if err != nil {
		return err
	}
	stmts, syms, err := compiler.Parse(tokens, src)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		fmt.Fprintln(cmd.ErrOrStderr(), stmt)
	}
	fmt.Fprint(cmd.ErrOrStderr(), syms)
	return nil
}

func writeOutput(outputPath, asm string) error {
	if outputPath == "" {
		fmt.Print(asm)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(asm), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
