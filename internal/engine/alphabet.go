package engine

import "strings"

// ============================================================================
// Alphabet - Symbol Domain
// ============================================================================
//
// An Alphabet is the ordered list of symbol tokens a puzzle is built from.
// Index 0 is reserved for "empty" and is never a usable assignment value;
// every other index 1..len(tokens)-1 is an interchangeable symbol. Alphabet
// provides the bidirectional mapping between a token (as it appears in a
// problem/solution string) and its internal index (as BoardState and
// ConstraintEngine operate on it).
//
// ============================================================================

// Alphabet is the ordered, 0-indexed symbol domain for a puzzle. Index 0
// is always the empty token.
type Alphabet struct {
	tokens  []string
	byToken map[string]int
}

// NewAlphabet builds an Alphabet from a whitespace-delimited list of
// tokens. The first token is reserved for "empty". Commas are forbidden
// inside a token (they are the allowed-symbol-set delimiter) and
// duplicate tokens are rejected.
func NewAlphabet(spec string) (*Alphabet, error) {
	fields := strings.Fields(spec)
	if len(fields) < 2 {
		return nil, &ConfigurationError{Attribute: "symbols", Reason: "need an empty token plus at least one symbol"}
	}

	byToken := make(map[string]int, len(fields))
	for i, tok := range fields {
		if strings.Contains(tok, ",") {
			return nil, &ConfigurationError{Attribute: "symbols", Reason: "token \"" + tok + "\" contains a comma"}
		}
		if _, dup := byToken[tok]; dup {
			return nil, &ConfigurationError{Attribute: "symbols", Reason: "duplicate token \"" + tok + "\""}
		}
		byToken[tok] = i
	}

	return &Alphabet{tokens: fields, byToken: byToken}, nil
}

// Size returns the number of tokens, including the empty token at index 0.
func (a *Alphabet) Size() int {
	return len(a.tokens)
}

// NonEmptyCount returns the number of usable (non-empty) symbols.
func (a *Alphabet) NonEmptyCount() int {
	return len(a.tokens) - 1
}

// Token returns the printable token for an internal index. Index 0 is the
// empty token.
func (a *Alphabet) Token(index int) string {
	if index < 0 || index >= len(a.tokens) {
		return ""
	}
	return a.tokens[index]
}

// EmptyToken returns the token used to print an unassigned cell.
func (a *Alphabet) EmptyToken() string {
	return a.tokens[0]
}

// Index returns the internal index for a token and whether it was found.
func (a *Alphabet) Index(token string) (int, bool) {
	idx, ok := a.byToken[token]
	return idx, ok
}

// HasToken reports whether a token is a member of this alphabet (any
// index, including the empty token).
func (a *Alphabet) HasToken(token string) bool {
	_, ok := a.byToken[token]
	return ok
}

// needsDelimiterTokens reports whether this alphabet alone forces
// whitespace-delimited problem strings: true iff any token is longer
// than one character.
func (a *Alphabet) needsDelimiterTokens() bool {
	for _, tok := range a.tokens {
		if len(tok) > 1 {
			return true
		}
	}
	return false
}
