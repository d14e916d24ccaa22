package validator

import (
	"regexp"
	"strings"
)

// lookaheadLines bounds how far below a UPROPERTY line a matching FGuid
// declaration may sit. Declarations on the 5th line or later are not
// associated with the annotation.
const lookaheadLines = 4

var (
	upropertyPattern = regexp.MustCompile(`^\s*UPROPERTY\s*\([^)]*\)\s*$`)
	fguidDeclPattern = regexp.MustCompile(`^\s*FGuid\s+(\w+)(?:\s*=\s*([^;]+))?\s*;\s*(?://.*)?$`)
)

// scanProperties finds all UPROPERTY/FGuid pairs in the file's lines.
// The enclosing struct name is left empty; the caller resolves it.
//
// The scan is purely textual: for every annotation line, the first
// FGuid declaration within the lookahead window is taken and the rest
// of the window is ignored. Scanning resumes on the line after the
// annotation, so windows of adjacent annotations may overlap.
func scanProperties(filePath string, lines []string) []Occurrence {
	var found []Occurrence

	for i := 0; i < len(lines); i++ {
		if !upropertyPattern.MatchString(lines[i]) {
			continue
		}

		for j := i + 1; j <= i+lookaheadLines && j < len(lines); j++ {
			m := fguidDeclPattern.FindStringSubmatch(lines[j])
			if m == nil {
				continue
			}

			initializer := strings.TrimSpace(m[2])
			found = append(found, Occurrence{
				FilePath:        filePath,
				LineNumber:      j + 1,
				PropertyName:    m[1],
				UPropertyLine:   strings.TrimSpace(lines[i]),
				DeclarationLine: strings.TrimSpace(lines[j]),
				HasInitializer:  initializer != "",
				Initializer:     initializer,
			})
			break
		}
	}

	return found
}
