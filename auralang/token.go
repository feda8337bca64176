package auralang

import "strconv"

type Token struct {
	Kind TokenKind
	Text string
	// Num is the parsed value of a TokenNumber; zero otherwise.
	Num float64
	Pos Pos
}

type TokenKind uint8

const (
	TokenPhrase TokenKind = iota
	TokenKeyword
	TokenOperator
	TokenSymbol
	TokenString
	TokenNumber
	TokenIdentifier
)

func (k TokenKind) String() string {
	switch k {
	case TokenPhrase:
		return "phrase"
	case TokenKeyword:
		return "keyword"
	case TokenOperator:
		return "operator"
	case TokenSymbol:
		return "symbol"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenIdentifier:
		return "identifier"
	}
	return "invalid"
}

// Raw renders the token back to source-shaped text, for the raw
// condition and expression text the generator post-processes.
func (t *Token) Raw() string {
	if t.Kind == TokenNumber {
		return strconv.FormatFloat(t.Num, 'f', -1, 64)
	}
	return t.Text
}

// Pos locates a token for diagnostics. Line is 1-based; Column is the
// 1-based index of the token's first word within the line's word
// sequence. Neither affects semantics.
type Pos struct {
	Source *Source
	Line   int
	Column int
}
