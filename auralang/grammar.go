package auralang

import (
	"fmt"
	"regexp"
	"strings"
)

// Grammar is the static vocabulary of the Auralite dialect: multi-word
// phrases, keywords, operators, symbols, and the ordered rewrite rules
// the generator applies to raw expression text. A Grammar is read-only
// after construction, so one instance may serve concurrent transpile
// calls.
type Grammar struct {
	phrases        map[string]string
	keywords       map[string]bool
	operators      map[string]bool
	symbols        map[string]bool
	rewrites       []RewriteRule
	maxPhraseWords int
}

// RewriteRule is one find/replace step over raw expression text.
// Rules run in list order; later rules see the output of earlier ones.
type RewriteRule struct {
	Pattern *regexp.Regexp
	Replace string
}

const commentMarker = "//"

var keywordList = []string{
	"create", "function", "method",
	"build", "class",
	"when", "unless", "then",
	"loop", "repeat", "do",
	"end",
}

var operatorList = []string{
	"+", "-", "*", "/", "%",
	"=", "==", "===", "!=", "!==",
	"<", ">", "<=", ">=",
	"!", "&&", "||",
}

var symbolList = []string{
	"(", ")", "{", "}", "[", "]",
	",", ";", ".", ":",
}

// Built-in phrases and their rewrites, longest idiom first so the
// rewrite pass never leaves a longer idiom half-substituted. The lexer
// does its own longest-match, so order here only matters for rewriting.
var phraseList = []struct {
	Phrase  string
	Rewrite string
}{
	{"wait for result of", "await"},
	{"wait for", "await"},
	{"wait", "await"},
	{"give back", "return"},
	{"send output", ""},
	{"make sure", ""},
	{"is at least", ">="},
	{"is more than", ">"},
	{"is less than", "<"},
	{"is not", "!=="},
	{"is", "==="},
	{"plus", "+"},
	{"minus", "-"},
	{"times", "*"},
	{"divided by", "/"},
}

// DefaultGrammar builds the built-in Auralite vocabulary.
func DefaultGrammar() *Grammar {
	g := &Grammar{
		phrases:   make(map[string]string),
		keywords:  make(map[string]bool),
		operators: make(map[string]bool),
		symbols:   make(map[string]bool),
	}

	for _, kw := range keywordList {
		g.keywords[kw] = true
	}
	for _, op := range operatorList {
		g.operators[op] = true
	}
	for _, sym := range symbolList {
		g.symbols[sym] = true
	}

	for _, entry := range phraseList {
		g.phrases[entry.Phrase] = entry.Phrase
		if n := phraseWidth(entry.Phrase); n > g.maxPhraseWords {
			g.maxPhraseWords = n
		}
	}

	// Statement-shaped idioms take a trailing argument.
	g.mustRewrite(`\bsend output (.+)$`, `console.log($1)`)
	g.mustRewrite(`\bmake sure (.+)$`, `assert($1)`)

	// A leading "until" negates a loop or guard condition once.
	g.mustRewrite(`^until (.+)$`, `!($1)`)

	// Word-for-word substitutions.
	for _, entry := range phraseList {
		if entry.Rewrite == "" {
			continue
		}
		g.mustRewrite(`\b`+regexp.QuoteMeta(entry.Phrase)+`\b`, entry.Rewrite)
	}

	return g
}

func (g *Grammar) mustRewrite(pattern string, replace string) {
	if err := g.AddRewrite(pattern, replace); err != nil {
		panic(err)
	}
}

// AddPhrase registers an extra idiom: the lexer recognizes it as a
// single Phrase token and the generator substitutes it with rewrite.
// The rewrite rule is appended after all existing rules.
func (g *Grammar) AddPhrase(phrase string, rewrite string) error {
	folded := foldPhrase(phrase)
	if folded == "" {
		return fmt.Errorf("empty phrase")
	}
	n := phraseWidth(folded)
	if n > PhraseWindow {
		return fmt.Errorf("phrase %q longer than %d words", phrase, PhraseWindow)
	}
	g.phrases[folded] = folded
	if n > g.maxPhraseWords {
		g.maxPhraseWords = n
	}
	if rewrite != "" {
		return g.AddRewrite(`\b`+regexp.QuoteMeta(folded)+`\b`, rewrite)
	}
	return nil
}

// AddRewrite appends a raw find/replace rule.
func (g *Grammar) AddRewrite(pattern string, replace string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("compile rewrite %q: %w", pattern, err)
	}
	g.rewrites = append(g.rewrites, RewriteRule{
		Pattern: re,
		Replace: replace,
	})
	return nil
}

// PhraseWindow is the widest idiom the lexer will try to match.
const PhraseWindow = 4

func (g *Grammar) MaxPhraseWords() int {
	if g.maxPhraseWords > PhraseWindow {
		return PhraseWindow
	}
	return g.maxPhraseWords
}

func (g *Grammar) LookupPhrase(folded string) (string, bool) {
	text, ok := g.phrases[folded]
	return text, ok
}

func (g *Grammar) IsKeyword(word string) bool {
	return g.keywords[strings.ToLower(word)]
}

func (g *Grammar) IsOperator(word string) bool {
	return g.operators[word]
}

func (g *Grammar) IsSymbol(word string) bool {
	return g.symbols[word]
}

// Rewrite runs the ordered rule list over raw expression text.
func (g *Grammar) Rewrite(text string) string {
	for _, rule := range g.rewrites {
		text = rule.Pattern.ReplaceAllString(text, rule.Replace)
	}
	return text
}

// Rules exposes the rewrite list for inspection. Callers must not
// mutate it.
func (g *Grammar) Rules() []RewriteRule {
	return g.rewrites
}

func foldPhrase(phrase string) string {
	return strings.ToLower(strings.Join(strings.Fields(phrase), " "))
}

func phraseWidth(phrase string) int {
	return len(strings.Fields(phrase))
}
