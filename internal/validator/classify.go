package validator

import (
	"strings"

	"github.com/vibeheim/guidlint/internal/suppress"
)

// Category is the classification of a single occurrence. Every
// occurrence gets exactly one category.
type Category int

const (
	CategorySuppressed Category = iota
	CategoryValid
	CategoryInvalid
)

// validInitializers is the allow-list of canonical in-class
// initializers: default-construct to the zero guid, or generate a
// fresh unique one. Anything else, including FGuid calls with
// arguments, is invalid.
var validInitializers = map[string]struct{}{
	"FGuid()":          {},
	"FGuid::NewGuid()": {},
}

// Classify resolves the category of one occurrence. Suppression wins
// over validity: a suppressed property stays suppressed even when its
// initializer is on the allow-list.
func Classify(occ Occurrence, store *suppress.Store) Category {
	if store.Matches(occ.FilePath, occ.StructName, occ.PropertyName) {
		return CategorySuppressed
	}
	if occ.HasInitializer {
		if _, ok := validInitializers[strings.TrimSpace(occ.Initializer)]; ok {
			return CategoryValid
		}
	}
	return CategoryInvalid
}

// partition splits found occurrences into the three category buckets,
// preserving declaration order within each bucket.
func partition(found []Occurrence, store *suppress.Store) (valid, invalid, suppressed []Occurrence) {
	for _, occ := range found {
		switch Classify(occ, store) {
		case CategorySuppressed:
			suppressed = append(suppressed, occ)
		case CategoryValid:
			valid = append(valid, occ)
		default:
			invalid = append(invalid, occ)
		}
	}
	return valid, invalid, suppressed
}
