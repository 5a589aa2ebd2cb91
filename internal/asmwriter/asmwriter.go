// Package asmwriter supplies the fixed prologue/epilogue and per-statement
// stack-discard boilerplate that wraps a compiler-generated assembly body.
// This is external-driver responsibility, not the code generator's — the
// generator emits a value-producing body; this package turns that body
// into an assemblable function.
package asmwriter

import "strings"

const prologue = `.intel_syntax noprefix
.global main
main:
	push rbp
	mov rbp, rsp
	sub rsp, 208
`

const epilogue = `	mov rsp, rbp
	pop rbp
	ret
`

// Wrap assembles the final listing: prologue, then each statement's body
// followed by a "pop rax" that discards its residual virtual-stack value,
// then epilogue.
func Wrap(statementBodies []string) string {
	var b strings.Builder
	b.WriteString(prologue)
	for _, body := range statementBodies {
		b.WriteString(body)
		b.WriteString("\tpop rax\n")
	}
	b.WriteString(epilogue)
	return b.String()
}
