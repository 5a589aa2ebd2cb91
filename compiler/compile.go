package compiler

import (
	"fmt"

	"minic64/internal/asmwriter"
)

// Compile runs the full lex -> parse -> generate pipeline over src and
// returns the complete assembly listing, prologue and epilogue included.
// The first error at any stage aborts compilation.
func Compile(src string) (string, error) {
	tokens, err := Lex(src)
	if err != nil {
		return "", fmt.Errorf("lex error: %w", err)
	}

	stmts, _, err := Parse(tokens, src)
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}

	body, err := GenerateEach(stmts)
	if err != nil {
		return "", fmt.Errorf("codegen error: %w", err)
	}

	return asmwriter.Wrap(body), nil
}
