package auralang

import (
	"errors"
	"fmt"
	"strings"
)

// The parser's failure taxonomy. Every user-visible failure wraps one
// of these; the lexer never fails.
var (
	ErrMissingConstructKeyword = errors.New("missing construct keyword")
	ErrMissingIdentifier       = errors.New("missing identifier")
	ErrUnterminatedConditional = errors.New("conditional missing 'then'")
	ErrUnterminatedLoop        = errors.New("loop missing 'do'")
)

// SyntaxError carries a parse failure with its source position and
// renders the offending line with a caret under the offending word.
type SyntaxError struct {
	Err error
	Pos Pos
}

func (s SyntaxError) Error() string {
	if s.Pos.Source == nil {
		return s.Err.Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n",
		s.Err.Error(), s.Pos.Source.Name, s.Pos.Line, s.Pos.Column))

	lines := s.Pos.Source.Lines
	idx := s.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(caretLine(line, s.Pos.Column))
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (s SyntaxError) Unwrap() error {
	return s.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(SyntaxError); ok {
		return err
	}
	return SyntaxError{
		Err: err,
		Pos: pos,
	}
}

// caretLine pads up to the start of the Nth word, preserving tabs so
// the caret stays aligned in terminals.
func caretLine(line string, column int) string {
	var sb strings.Builder
	word := 0
	inWord := false
	for _, r := range line {
		space := r == ' ' || r == '\t'
		if !space && !inWord {
			word++
			inWord = true
		} else if space {
			inWord = false
		}
		if word >= column && !space {
			break
		}
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}
