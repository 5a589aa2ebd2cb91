package compiler

import "errors"

// Sentinel error values for the compiler's error taxonomy. Each is
// comparable with errors.Is; callers that want the expected/actual pair
// from an ErrUnexpectedToken failure can still read it from the wrapped
// message.
var (
	// ErrUnknownCharacter: the lexer found a character outside the
	// recognised classes (whitespace, digit, ASCII-alpha, single/compound
	// operator, punctuator).
	ErrUnknownCharacter = errors.New("unknown character")

	// ErrInvalidToken: the parser found a token where no production
	// admits it (e.g. a token that cannot begin a primary expression).
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnexpectedToken: a specific token was required but another
	// token was found instead.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrInvalidTermination: input ran out mid-production.
	ErrInvalidTermination = errors.New("invalid termination")

	// ErrTooManyArguments: a call site listed more than six arguments.
	ErrTooManyArguments = errors.New("too many arguments")

	// ErrInvalidNode: the code generator was handed an AST node that
	// violates a contract (missing required child, unexpected kind).
	ErrInvalidNode = errors.New("invalid node")

	// ErrLvalueRequired: an assignment's left-hand side is not a bare
	// identifier.
	ErrLvalueRequired = errors.New("left value must be identifier")
)
