package validator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/vibeheim/guidlint/internal/suppress"
)

// Walker enumerates header files under a root directory and drives the
// scan/resolve/classify pipeline for each of them.
type Walker struct {
	extensions []string
	recursive  bool
	store      *suppress.Store
	logger     hclog.Logger
}

// NewWalker creates a Walker for the given tracked extensions and
// suppression store.
func NewWalker(extensions []string, recursive bool, store *suppress.Store, logger hclog.Logger) *Walker {
	return &Walker{
		extensions: extensions,
		recursive:  recursive,
		store:      store,
		logger:     logger,
	}
}

// Walk validates every tracked file under root. Files with no FGuid
// occurrences are omitted from the result. Paths are processed in
// sorted order so reports are reproducible across platforms. A file
// that cannot be read is logged and skipped, never aborting the walk.
func (w *Walker) Walk(root string) ([]FileOutcome, error) {
	paths, err := w.collect(root)
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var outcomes []FileOutcome
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			w.logger.Warn("could not read file", "path", path, "error", err)
			continue
		}

		outcome := w.validateContent(path, string(data))
		if len(outcome.Found) == 0 {
			continue
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// validateContent runs the full pipeline on one file's text.
func (w *Walker) validateContent(path, content string) FileOutcome {
	lines := strings.Split(content, "\n")

	found := scanProperties(path, lines)
	for i := range found {
		found[i].StructName = resolveScope(lines, found[i].LineNumber-1)
	}

	valid, invalid, suppressed := partition(found, w.store)
	return FileOutcome{
		FilePath:   path,
		Found:      found,
		Valid:      valid,
		Invalid:    invalid,
		Suppressed: suppressed,
	}
}

// collect gathers the candidate file paths under root.
func (w *Walker) collect(root string) ([]string, error) {
	var paths []string

	if w.recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				w.logger.Warn("could not access path", "path", path, "error", err)
				return nil
			}
			if !d.IsDir() && w.tracked(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %q: %w", root, err)
		}
		return paths, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", root, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && w.tracked(entry.Name()) {
			paths = append(paths, filepath.Join(root, entry.Name()))
		}
	}
	return paths, nil
}

func (w *Walker) tracked(path string) bool {
	ext := filepath.Ext(path)
	for _, tracked := range w.extensions {
		if ext == tracked {
			return true
		}
	}
	return false
}
