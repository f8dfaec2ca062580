package satparse

// TokenKind is the closed set of token kinds the scanner can produce.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenBadInput
	TokenSemicolon
	TokenOpenParen
	TokenCloseParen
	TokenConjunction
	TokenDisjunction
	TokenExclusiveDisjunction
	TokenImplication
	TokenBiconditional
	TokenNegation
	TokenLiteralTrue
	TokenLiteralFalse
	TokenVariable
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenBadInput:
		return "BadInput"
	case TokenSemicolon:
		return "Semicolon"
	case TokenOpenParen:
		return "OpenParen"
	case TokenCloseParen:
		return "CloseParen"
	case TokenConjunction:
		return "Conjunction"
	case TokenDisjunction:
		return "Disjunction"
	case TokenExclusiveDisjunction:
		return "ExclusiveDisjunction"
	case TokenImplication:
		return "Implication"
	case TokenBiconditional:
		return "Biconditional"
	case TokenNegation:
		return "Negation"
	case TokenLiteralTrue:
		return "LiteralTrue"
	case TokenLiteralFalse:
		return "LiteralFalse"
	case TokenVariable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// isBinaryOperator reports whether k is one of the binary infix operator
// token kinds (used by the parser's precedence climb).
func (k TokenKind) isBinaryOperator() bool {
	switch k {
	case TokenConjunction, TokenDisjunction, TokenExclusiveDisjunction,
		TokenImplication, TokenBiconditional:
		return true
	default:
		return false
	}
}

// Token is a single scanned token: its kind and its byte/line/col span in
// the scanner's input. Begin is the position of the token's first byte.
// End is the position of the token's *last* byte (not one past it): the
// scanner records End one step before the final byte-consuming advance,
// a quirk inherited from the original scanner's end-of-token bookkeeping.
// Callers that need an exclusive bound use End.Index+1.
type Token struct {
	Kind  TokenKind
	Begin Pos
	End   Pos
}

// Scanner is a cursor over a borrowed input string, producing a stream of
// Tokens. It does not own input; the caller must keep input alive for the
// Scanner's lifetime. Scanners are not safe for concurrent use.
type Scanner struct {
	input string
	index int
	line  int
	col   int
}

// NewScanner creates a scanner positioned at the start of input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input, index: 0, line: 1, col: 1}
}

func isASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIAlnum(b byte) bool {
	return isASCIIAlpha(b) || (b >= '0' && b <= '9')
}

// byteAt returns the byte offset bytes past the scanner's current index, or
// 0 (NUL) when that position is outside the input.
func (s *Scanner) byteAt(offset int) byte {
	idx := s.index + offset
	if idx < 0 || idx >= len(s.input) {
		return 0
	}
	return s.input[idx]
}

// advance consumes exactly one byte, updating index/line/col: a
// high-bit-clear byte bumps col, and '\n' resets col to 1 and bumps line.
// Every byte of a multi-byte glyph (lead and continuation alike) is >= 0x80,
// so stepping over a glyph advances index by its byte length and leaves col
// unchanged.
func (s *Scanner) advance() {
	b := s.byteAt(0)
	if b&0x80 == 0 {
		s.col++
	}
	if b == '\n' {
		s.col = 1
		s.line++
	}
	s.index++
}

func (s *Scanner) pos() Pos {
	return Pos{Index: s.index, Line: s.line, Col: s.col}
}

// sliceInclusive returns input[begin.Index, end.Index] inclusive of both
// ends, matching the Begin/End convention Token uses (see Token's doc
// comment for why End is inclusive rather than one-past).
func (s *Scanner) sliceInclusive(begin, end Pos) string {
	return s.input[begin.Index : end.Index+1]
}

func (s *Scanner) skipWhitespace() {
	for s.byteAt(0) != 0 && isASCIIWhitespace(s.byteAt(0)) {
		s.advance()
	}
}

// ReadToken consumes input and produces the next token.
func (s *Scanner) ReadToken() Token {
	s.skipWhitespace()
	begin := s.pos()

	b := s.byteAt(0)
	switch {
	case b == 0:
		return Token{Kind: TokenEOF, Begin: begin, End: begin}

	case b == ';':
		end := s.pos()
		s.advance()
		return Token{Kind: TokenSemicolon, Begin: begin, End: end}

	case b == '(':
		end := s.pos()
		s.advance()
		return Token{Kind: TokenOpenParen, Begin: begin, End: end}

	case b == ')':
		end := s.pos()
		s.advance()
		return Token{Kind: TokenCloseParen, Begin: begin, End: end}

	case b == 't':
		return s.scanTrueOrVariable(begin)

	case b == 'f':
		return s.scanFalseOrVariable(begin)

	case b == 0xE2:
		return s.scanMathBlock(begin)

	case b == 0xC2:
		return s.scanNegation(begin)

	case isASCIIAlpha(b) || b == '_':
		return s.scanVariable(begin)

	default:
		// Bad input is not consumed: the token is zero-width at the
		// offending byte, matching the original scanner (which only
		// advances past a recognised token).
		return Token{Kind: TokenBadInput, Begin: begin, End: begin}
	}
}

// PeekToken returns the next token without consuming it: the scanner's
// state after PeekToken is bit-identical to its state before the call.
func (s *Scanner) PeekToken() Token {
	saved := *s
	tok := s.ReadToken()
	*s = saved
	return tok
}

// scanVariable scans the identifier starting at the scanner's current
// (unconsumed) byte. It mirrors the original's peek-one-ahead loop: the
// cursor always trails one byte behind the lookahead, so the position
// recorded as End is the position of the identifier's last byte itself
// (not one past it) — it is captured just before the final advance that
// consumes that byte.
func (s *Scanner) scanVariable(begin Pos) Token {
	peek := s.byteAt(1)
	for isASCIIAlnum(peek) || peek == '_' {
		s.advance()
		peek = s.byteAt(1)
	}
	end := s.pos()
	s.advance()
	return Token{Kind: TokenVariable, Begin: begin, End: end}
}

func (s *Scanner) scanTrueOrVariable(begin Pos) Token {
	if s.byteAt(1) != 'r' {
		return s.scanVariable(begin)
	}
	s.advance()
	if s.byteAt(1) != 'u' {
		return s.scanVariable(begin)
	}
	s.advance()
	if s.byteAt(1) != 'e' {
		return s.scanVariable(begin)
	}
	s.advance()
	if isASCIIAlnum(s.byteAt(1)) {
		return s.scanVariable(begin)
	}
	end := s.pos()
	s.advance()
	return Token{Kind: TokenLiteralTrue, Begin: begin, End: end}
}

func (s *Scanner) scanFalseOrVariable(begin Pos) Token {
	if s.byteAt(1) != 'a' {
		return s.scanVariable(begin)
	}
	s.advance()
	if s.byteAt(1) != 'l' {
		return s.scanVariable(begin)
	}
	s.advance()
	if s.byteAt(1) != 's' {
		return s.scanVariable(begin)
	}
	s.advance()
	if s.byteAt(1) != 'e' {
		return s.scanVariable(begin)
	}
	s.advance()
	if isASCIIAlnum(s.byteAt(1)) {
		return s.scanVariable(begin)
	}
	end := s.pos()
	s.advance()
	return Token{Kind: TokenLiteralFalse, Begin: begin, End: end}
}

// scanMathBlock handles the 0xE2-prefixed 3-byte glyphs (∧ ∨ ⊻ → ↔),
// tentatively consuming and restoring the pre-tentative scanner state on an
// unrecognised second/third byte.
func (s *Scanner) scanMathBlock(begin Pos) Token {
	saved := *s

	s.advance() // consume 0xE2
	second := s.byteAt(0)

	switch second {
	case 0x86:
		s.advance()
		third := s.byteAt(0)
		switch third {
		case 0x92:
			end := s.pos()
			s.advance()
			return Token{Kind: TokenImplication, Begin: begin, End: end}
		case 0x94:
			end := s.pos()
			s.advance()
			return Token{Kind: TokenBiconditional, Begin: begin, End: end}
		}

	case 0x88:
		s.advance()
		third := s.byteAt(0)
		switch third {
		case 0xA7:
			end := s.pos()
			s.advance()
			return Token{Kind: TokenConjunction, Begin: begin, End: end}
		case 0xA8:
			end := s.pos()
			s.advance()
			return Token{Kind: TokenDisjunction, Begin: begin, End: end}
		}

	case 0x8A:
		s.advance()
		third := s.byteAt(0)
		if third == 0xBB {
			end := s.pos()
			s.advance()
			return Token{Kind: TokenExclusiveDisjunction, Begin: begin, End: end}
		}
	}

	*s = saved
	return Token{Kind: TokenBadInput, Begin: begin, End: begin}
}

// scanNegation handles the 0xC2 0xAC (¬) 2-byte glyph, with the same
// tentative-consume/restore behaviour as scanMathBlock.
func (s *Scanner) scanNegation(begin Pos) Token {
	saved := *s

	s.advance() // consume 0xC2
	if s.byteAt(0) == 0xAC {
		end := s.pos()
		s.advance()
		return Token{Kind: TokenNegation, Begin: begin, End: end}
	}

	*s = saved
	return Token{Kind: TokenBadInput, Begin: begin, End: begin}
}
