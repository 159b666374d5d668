package models

// Subject types a comment thread or engagement action can target.
const (
	SubjectTypeRelic  = "relic"
	SubjectTypeMuseum = "museum"
	SubjectTypeMoment = "moment"
)

// ValidSubjectType reports whether t names a known subject table.
func ValidSubjectType(t string) bool {
	switch t {
	case SubjectTypeRelic, SubjectTypeMuseum, SubjectTypeMoment:
		return true
	}
	return false
}
