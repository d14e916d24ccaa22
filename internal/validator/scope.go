package validator

import "regexp"

// UnknownStruct is reported when no struct declaration precedes the
// property in the file.
const UnknownStruct = "UnknownStruct"

var structDeclPattern = regexp.MustCompile(`^\s*(?:USTRUCT\s*\([^)]*\)\s*)?struct\s+(?:[A-Z][A-Z0-9_]*_API\s+)?(\w+)`)

// resolveScope returns the name of the nearest struct declared above
// the declaration at declIndex (0-based).
//
// This is a nearest-preceding-header heuristic, not a scope tree: it
// does not track brace depth, so a property following a sibling or
// nested struct's header is attributed to that nearer header.
func resolveScope(lines []string, declIndex int) string {
	for i := declIndex - 1; i >= 0; i-- {
		if m := structDeclPattern.FindStringSubmatch(lines[i]); m != nil {
			return m[1]
		}
	}
	return UnknownStruct
}
