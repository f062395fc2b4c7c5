package facility

import "strings"

// IsLTACH reports whether the record looks like a long-term acute care
// hospital. A record matches when its type mentions "ltach", its tag
// set contains "ltach", or, for records without a TBI program, its
// type mentions "inpatient" and its name mentions "ltach".
//
// Pure predicate over decoded data; no I/O.
func IsLTACH(r Record) bool {
	typeLower := strings.ToLower(r.Type)
	if strings.Contains(typeLower, "ltach") {
		return true
	}
	if containsFold(r.Tags, "ltach") {
		return true
	}

	nameLower := strings.ToLower(string(r.Name))
	if !containsFold(r.Programs, "tbi") &&
		strings.Contains(typeLower, "inpatient") &&
		strings.Contains(nameLower, "ltach") {
		return true
	}
	return false
}

// IsTBI reports whether the record has a traumatic brain injury
// program: either an explicit "tbi" program entry or a name that
// mentions TBI or brain injury.
func IsTBI(r Record) bool {
	if containsFold(r.Programs, "tbi") {
		return true
	}

	nameLower := strings.ToLower(string(r.Name))
	return strings.Contains(nameLower, "tbi") ||
		strings.Contains(nameLower, "traumatic brain") ||
		strings.Contains(nameLower, "brain injury")
}

// containsFold reports case-insensitive membership in a string set.
func containsFold(set []string, want string) bool {
	for _, s := range set {
		if strings.EqualFold(strings.TrimSpace(s), want) {
			return true
		}
	}
	return false
}
