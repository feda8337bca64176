package auralang

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// Tokenize converts source text into the flat token sequence. It never
// fails: the dialect has no invalid-token concept, unrecognized words
// fall back to identifiers.
func Tokenize(g *Grammar, src *Source) []*Token {
	var tokens []*Token

	for lineIdx, line := range src.Lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, commentMarker) {
			continue
		}

		words := strings.Fields(line)
		for i := 0; i < len(words); {
			pos := Pos{
				Source: src,
				Line:   lineIdx + 1,
				Column: i + 1,
			}

			// Longest phrase match wins over any single-word class.
			if text, width := matchPhrase(g, words[i:]); width > 0 {
				tokens = append(tokens, &Token{
					Kind: TokenPhrase,
					Text: text,
					Pos:  pos,
				})
				i += width
				continue
			}

			// Punctuation glues to words in source like "greet()";
			// split it off so symbols come out as their own tokens.
			// All pieces keep the word's column.
			for _, piece := range splitSymbols(words[i]) {
				tokens = append(tokens, classifyWord(g, piece, pos))
			}
			i++
		}
	}

	return tokens
}

func splitSymbols(word string) []string {
	if word[0] == '"' || word[0] == '\'' || word[0] == '`' {
		return []string{word}
	}
	var pieces []string
	start := 0
	for i, r := range word {
		switch r {
		case '(', ')', '[', ']', '{', '}', ',', ';':
			if start < i {
				pieces = append(pieces, word[start:i])
			}
			pieces = append(pieces, string(r))
			start = i + 1
		}
	}
	if start < len(word) {
		pieces = append(pieces, word[start:])
	}
	return pieces
}

func matchPhrase(g *Grammar, words []string) (string, int) {
	max := g.MaxPhraseWords()
	if max > len(words) {
		max = len(words)
	}
	for n := max; n >= 1; n-- {
		folded := strings.ToLower(strings.Join(words[:n], " "))
		if text, ok := g.LookupPhrase(folded); ok {
			return text, n
		}
	}
	return "", 0
}

func classifyWord(g *Grammar, word string, pos Pos) *Token {
	lower := strings.ToLower(word)

	switch {
	case g.IsKeyword(lower):
		return &Token{Kind: TokenKeyword, Text: lower, Pos: pos}

	case g.IsOperator(word):
		return &Token{Kind: TokenOperator, Text: word, Pos: pos}

	case g.IsSymbol(word):
		return &Token{Kind: TokenSymbol, Text: word, Pos: pos}

	case word[0] == '"' || word[0] == '\'' || word[0] == '`':
		return &Token{Kind: TokenString, Text: word, Pos: pos}

	case numberPattern.MatchString(word):
		num, _ := strconv.ParseFloat(word, 64)
		return &Token{Kind: TokenNumber, Num: num, Pos: pos}
	}

	return &Token{Kind: TokenIdentifier, Text: word, Pos: pos}
}
