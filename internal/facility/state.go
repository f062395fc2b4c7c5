package facility

import (
	"regexp"
	"sort"
	"strings"
)

// UnknownState is returned when no resolution rule matches.
const UnknownState = "Unknown"

// stateNames maps lowercased full US state names (plus the District of
// Columbia) to their standard two-letter abbreviations.
var stateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT",
	"delaware": "DE", "district of columbia": "DC", "florida": "FL",
	"georgia": "GA", "hawaii": "HI", "idaho": "ID", "illinois": "IL",
	"indiana": "IN", "iowa": "IA", "kansas": "KS", "kentucky": "KY",
	"louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN",
	"mississippi": "MS", "missouri": "MO", "montana": "MT",
	"nebraska": "NE", "nevada": "NV", "new hampshire": "NH",
	"new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA",
	"rhode island": "RI", "south carolina": "SC", "south dakota": "SD",
	"tennessee": "TN", "texas": "TX", "utah": "UT", "vermont": "VT",
	"virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
}

// orderedStateNames lists state names longest-first so that substring
// scanning cannot match "virginia" inside "west virginia" or "kansas"
// inside "arkansas". The secondary alphabetical order makes the scan
// fully deterministic.
var orderedStateNames = func() []string {
	names := make([]string, 0, len(stateNames))
	for name := range stateNames {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

var (
	idTokenSplit  = regexp.MustCompile(`[-_]+`)
	trailingState = regexp.MustCompile(`,\s*([A-Za-z]{2})\s*$`)
	alphaOnly     = regexp.MustCompile(`^[A-Za-z]+$`)
)

// ResolveState infers a two-letter state code for a record. The
// resolution chain, first match wins:
//
//  1. the explicit state field
//  2. the structured address state
//  3. the structured location state
//  4. a token heuristic on the record ID (first exactly-two-letter
//     alphabetic token, else a short trailing token)
//  5. free-text location: a trailing ", XX" suffix, else any full US
//     state name as a case-insensitive substring
//  6. UnknownState
//
// This is a heuristic, not a guarantee. In particular the substring
// scan in step 5 will happily read "Georgia" out of a facility name
// that merely contains the word; that known false positive is kept on
// purpose. Resolution is deterministic for a given record.
func ResolveState(r Record) string {
	if s := normalizeState(r.State); s != "" {
		return s
	}
	if s := normalizeState(r.Address.State); s != "" {
		return s
	}
	if s := normalizeState(r.Location.State); s != "" {
		return s
	}
	if s := stateFromID(r.ID); s != "" {
		return s
	}
	if s := stateFromText(r.Location.Text); s != "" {
		return s
	}
	return UnknownState
}

// normalizeState canonicalizes an explicit state value: two-letter
// codes are uppercased, full names are mapped to their abbreviation,
// and anything else passes through trimmed.
func normalizeState(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(s) == 2 && alphaOnly.MatchString(s) {
		return strings.ToUpper(s)
	}
	if code, ok := stateNames[strings.ToLower(s)]; ok {
		return code
	}
	return s
}

// stateFromID splits a slug-style ID on hyphens and underscores and
// returns the first exactly-two-letter alphabetic token uppercased,
// falling back to a short (≤3 character) final token.
func stateFromID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}

	tokens := idTokenSplit.Split(id, -1)
	for _, tok := range tokens {
		if len(tok) == 2 && alphaOnly.MatchString(tok) {
			return strings.ToUpper(tok)
		}
	}

	last := tokens[len(tokens)-1]
	if last != "" && len(last) <= 3 {
		return strings.ToUpper(last)
	}
	return ""
}

// stateFromText extracts a state code from a free-text location:
// a trailing ", XX" suffix wins, else the first full state name found
// as a case-insensitive substring.
func stateFromText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if m := trailingState.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1])
	}

	lower := strings.ToLower(text)
	for _, name := range orderedStateNames {
		if strings.Contains(lower, name) {
			return stateNames[name]
		}
	}
	return ""
}
