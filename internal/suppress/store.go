package suppress

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Store holds the set of suppression keys for a run. It is built once
// at startup and never mutated afterwards.
type Store struct {
	patterns map[string]struct{}
}

type suppressionFile struct {
	Suppressions []string `json:"suppressions"`
}

// Load reads suppression keys from a JSON file of the form
// {"suppressions": ["FStruct::Property", ...]}. An empty path or a
// missing file yields an empty store. A malformed file also yields an
// empty store with a warning: a broken suppression file must never
// abort a validation run.
func Load(path string, logger hclog.Logger) *Store {
	store := &Store{patterns: make(map[string]struct{})}

	if path == "" {
		return store
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return store
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("could not read suppression file", "path", path, "error", err)
		return store
	}

	var parsed suppressionFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		logger.Warn("could not parse suppression file", "path", path, "error", err)
		return store
	}

	for _, pattern := range parsed.Suppressions {
		store.patterns[pattern] = struct{}{}
	}
	return store
}

// Matches reports whether the property identified by file, struct and
// property name is covered by any suppression key. Keys are compared by
// exact string equality against four candidate forms, so entries that
// never equal a derivable key (comments, for example) are inert.
func (s *Store) Matches(filePath, structName, propertyName string) bool {
	candidates := []string{
		fmt.Sprintf("%s:%s::%s", filePath, structName, propertyName),
		fmt.Sprintf("%s::%s", structName, propertyName),
		fmt.Sprintf("*::%s", propertyName),
		filePath,
	}

	for _, candidate := range candidates {
		if _, ok := s.patterns[candidate]; ok {
			return true
		}
	}
	return false
}

// Len returns the number of loaded suppression keys.
func (s *Store) Len() int {
	return len(s.patterns)
}
