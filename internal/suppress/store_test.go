package suppress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestLoadMissingFile(t *testing.T) {
	store := Load(filepath.Join(t.TempDir(), "nope.json"), hclog.NewNullLogger())
	if store.Len() != 0 {
		t.Errorf("Expected empty store for a missing file, got %d keys", store.Len())
	}
}

func TestLoadEmptyPath(t *testing.T) {
	store := Load("", hclog.NewNullLogger())
	if store.Len() != 0 {
		t.Errorf("Expected empty store for an empty path, got %d keys", store.Len())
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	// A malformed suppression file must never abort the run.
	store := Load(path, hclog.NewNullLogger())
	if store.Len() != 0 {
		t.Errorf("Expected empty store for a malformed file, got %d keys", store.Len())
	}
}

func TestLoadAndMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppressions.json")
	content := `{"suppressions": ["FChunkData::ChunkId", "*::DebugId", "Source/Legacy.h"]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	store := Load(path, hclog.NewNullLogger())
	if store.Len() != 3 {
		t.Fatalf("Expected 3 keys, got %d", store.Len())
	}

	tests := []struct {
		name       string
		file       string
		structName string
		property   string
		want       bool
	}{
		{"Struct::property match", "Source/Chunk.h", "FChunkData", "ChunkId", true},
		{"Wildcard property match", "Source/Other.h", "FAnything", "DebugId", true},
		{"Bare file match", "Source/Legacy.h", "FLegacy", "AnyId", true},
		{"No match", "Source/Chunk.h", "FChunkData", "OtherId", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.Matches(tt.file, tt.structName, tt.property); got != tt.want {
				t.Errorf("Matches(%q, %q, %q) = %v, want %v", tt.file, tt.structName, tt.property, got, tt.want)
			}
		})
	}
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppressions.json")
	if err := WriteTemplate(path); err != nil {
		t.Fatalf("WriteTemplate failed: %v", err)
	}

	store := Load(path, hclog.NewNullLogger())
	if store.Len() != 4 {
		t.Errorf("Expected 4 template entries, got %d", store.Len())
	}

	// Template entries are comment-like and must never match a key
	// derivable from real occurrences.
	if store.Matches("Source/Chunk.h", "FChunkData", "ChunkId") {
		t.Error("Template entries must be inert")
	}
}
