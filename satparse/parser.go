package satparse

// maxVariableNameBytes bounds a variable name's byte length. The original
// C parser hardcoded this as the size of a stack buffer (char
// var_name[1024]); there's no buffer to size here, but the bound and the
// VariableNameTooLarge trigger condition are reproduced exactly.
const maxVariableNameBytes = 1024

// Parser drives a Scanner and a Context to build an AST. It is single-use:
// construct one per call to Parse.
type Parser struct {
	scanner *Scanner
	context *Context
}

// Parse tokenizes and parses input against context, returning the root
// Statement node on success. On any error the partially built AST is
// destroyed before returning, so the caller never has to release a failed
// parse's partial result.
func Parse(context *Context, input string) (*StatementNode, error) {
	p := &Parser{scanner: NewScanner(input), context: context}

	first := p.scanner.ReadToken()
	switch first.Kind {
	case TokenEOF:
		return nil, newError(ErrEmptyInput, first.Begin, "input is empty")
	case TokenVariable, TokenNegation, TokenLiteralTrue, TokenLiteralFalse:
		// valid statement-starting tokens; fall through to parsing below.
	default:
		return nil, newError(ErrUnexpectedToken, first.Begin, "expected a variable, negation, or boolean literal")
	}

	lhs, err := p.parsePrimaryFromToken(first)
	if err != nil {
		return nil, err
	}

	expr, err := p.climb(lhs, sentinelLeftOperator)
	if err != nil {
		return nil, err
	}

	return NewStatement(expr), nil
}

// parseExpression reads one primary and climbs as far as leftOperator
// permits, per should_combine_left. It is the entry point used recursively
// for a binary operator's right-hand side and for negation's single
// operand.
func (p *Parser) parseExpression(leftOperator TokenKind) (Node, error) {
	tok := p.scanner.ReadToken()
	lhs, err := p.parsePrimaryFromToken(tok)
	if err != nil {
		return nil, err
	}
	return p.climb(lhs, leftOperator)
}

// climb repeatedly folds lhs with following binary operators while
// shouldCombineLeft(leftOperator, next) says not to stop. On any failure it
// releases every node it has taken ownership of (lhs, and any right-hand
// side already parsed) exactly once before returning the error.
func (p *Parser) climb(lhs Node, leftOperator TokenKind) (Node, error) {
	for {
		next := p.scanner.PeekToken()
		if !next.Kind.isBinaryOperator() || shouldCombineLeft(leftOperator, next.Kind) {
			return lhs, nil
		}

		p.scanner.ReadToken() // consume the operator peeked above

		rhs, err := p.parseExpression(next.Kind)
		if err != nil {
			_ = Release(lhs)
			return nil, err
		}

		node, err := buildBinary(next.Kind, lhs, rhs)
		if err != nil {
			_ = Release(lhs)
			_ = Release(rhs)
			return nil, err
		}
		lhs = node
	}
}

func buildBinary(op TokenKind, lhs, rhs Node) (Node, error) {
	switch op {
	case TokenConjunction:
		return NewConjunction(lhs, rhs), nil
	case TokenDisjunction:
		return NewDisjunction(lhs, rhs), nil
	case TokenExclusiveDisjunction:
		return NewExclusiveDisjunction(lhs, rhs), nil
	case TokenImplication:
		return NewImplication(lhs, rhs), nil
	case TokenBiconditional:
		return NewBiconditional(lhs, rhs), nil
	default:
		return nil, newError(ErrUnsupportedAstNodeType, Pos{}, "unknown binary operator token")
	}
}

// parsePrimaryFromToken shifts an already-read token into an operand node.
// Variable, true/false, and a right-hand negation are the grammar's only
// primaries: this grammar has no paren-grouping production, so OpenParen/
// CloseParen always fall to UnexpectedToken here.
func (p *Parser) parsePrimaryFromToken(tok Token) (Node, error) {
	switch tok.Kind {
	case TokenVariable:
		return p.materializeVariable(tok)

	case TokenLiteralTrue:
		return NewBooleanLiteral(true), nil

	case TokenLiteralFalse:
		return NewBooleanLiteral(false), nil

	case TokenNegation:
		child, err := p.parseExpression(TokenNegation)
		if err != nil {
			return nil, err
		}
		return NewNegation(child), nil

	case TokenEOF:
		return nil, newError(ErrIncompleteExpression, tok.Begin, "expected an operand, reached end of input")

	default:
		return nil, newError(ErrUnexpectedToken, tok.Begin, "expected a variable, negation, or boolean literal")
	}
}

// materializeVariable extracts the scanned identifier's text and resolves
// it to a dense id via the context.
func (p *Parser) materializeVariable(tok Token) (*VariableNode, error) {
	length := (tok.End.Index + 1) - tok.Begin.Index
	if length > maxVariableNameBytes {
		return nil, newError(ErrVariableNameTooLarge, tok.Begin, "variable name exceeds maximum length")
	}

	name := p.scanner.sliceInclusive(tok.Begin, tok.End)

	id, err := p.context.VariableGet(name, VariableDefault)
	if err != nil {
		if e, ok := err.(Error); ok {
			e.Pos = tok.Begin
			return nil, e
		}
		return nil, err
	}
	return NewVariable(id), nil
}
