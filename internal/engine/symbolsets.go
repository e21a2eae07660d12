package engine

import "strings"

// ============================================================================
// AllowedSymbolSets - Per-Cell Symbol Restrictions
// ============================================================================
//
// An AllowedSymbolSet gives a name (e.g. "o" for odd, "e" for even, a
// colour name) to a subset of the alphabet. Tagging an empty cell in a
// problem string with that name restricts the cell to only the symbols
// in the set: every other non-empty symbol is pre-excluded by
// incrementing its possibility counter before any deduction runs.
//
// ============================================================================

// AllowedSymbolSets holds the named per-cell symbol masks defined via the
// `allowed_symbols` configuration parameter.
type AllowedSymbolSets struct {
	masks map[string][]bool // name -> mask[symbolIndex] = permitted
}

// NewAllowedSymbolSets returns an empty collection.
func NewAllowedSymbolSets() *AllowedSymbolSets {
	return &AllowedSymbolSets{masks: make(map[string][]bool)}
}

// Configure applies the `allowed_symbols` configuration value: one
// "name=tok,tok,..." definition per line. An empty right-hand side
// deletes that name's mask. An empty value (no lines at all) clears
// every mask. Names must not collide with an alphabet token.
func (s *AllowedSymbolSets) Configure(value string, alphabet *Alphabet) error {
	if strings.TrimSpace(value) == "" {
		s.masks = make(map[string][]bool)
		return nil
	}

	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return &ConfigurationError{Attribute: "allowed_symbols", Reason: "missing '=' in \"" + line + "\""}
		}

		name := strings.TrimSpace(line[:eq])
		rhs := strings.TrimSpace(line[eq+1:])

		if name == "" {
			return &ConfigurationError{Attribute: "allowed_symbols", Reason: "empty set name in \"" + line + "\""}
		}
		if alphabet.HasToken(name) {
			return &ConfigurationError{Attribute: "allowed_symbols", Reason: "name \"" + name + "\" collides with an alphabet token"}
		}

		if rhs == "" {
			delete(s.masks, name)
			continue
		}

		mask := make([]bool, alphabet.Size())
		for _, tok := range strings.Split(rhs, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			idx, ok := alphabet.Index(tok)
			if !ok {
				return &ConfigurationError{Attribute: "allowed_symbols", Reason: "unknown token \"" + tok + "\" in set \"" + name + "\""}
			}
			if idx == 0 {
				return &ConfigurationError{Attribute: "allowed_symbols", Reason: "set \"" + name + "\" may not include the empty token"}
			}
			mask[idx] = true
		}
		s.masks[name] = mask
	}
	return nil
}

// Lookup returns the permitted-symbol mask for a name and whether it
// exists.
func (s *AllowedSymbolSets) Lookup(name string) ([]bool, bool) {
	mask, ok := s.masks[name]
	return mask, ok
}

// HasName reports whether name is a defined allowed-symbol-set name.
func (s *AllowedSymbolSets) HasName(name string) bool {
	_, ok := s.masks[name]
	return ok
}

// needsDelimiterNames reports whether any defined set name is longer
// than one character, which alone forces whitespace-delimited problem
// strings.
func (s *AllowedSymbolSets) needsDelimiterNames() bool {
	for name := range s.masks {
		if len(name) > 1 {
			return true
		}
	}
	return false
}
