package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCheckArgs(t *testing.T) {
	tmpDir := t.TempDir()

	tmpFile := filepath.Join(tmpDir, "not-a-dir.h")
	err := os.WriteFile(tmpFile, []byte("struct FThing {};"), 0644)
	assert.NoError(t, err)

	tests := []struct {
		name    string
		options RunOptionsCheck
		args    []string
		wantErr string
	}{
		{
			// valid: guidlint check /path/to/source
			name:    "Valid target directory",
			options: RunOptionsCheck{Format: FormatText},
			args:    []string{tmpDir},
			wantErr: "",
		},
		{
			// valid: guidlint check --format sarif /path/to/source
			name:    "Valid SARIF format",
			options: RunOptionsCheck{Format: FormatSarif},
			args:    []string{tmpDir},
			wantErr: "",
		},
		{
			name:    "Missing target directory",
			options: RunOptionsCheck{Format: FormatText},
			args:    []string{},
			wantErr: "a target directory must be specified",
		},
		{
			name:    "Too many positional arguments",
			options: RunOptionsCheck{Format: FormatText},
			args:    []string{tmpDir, tmpDir},
			wantErr: "only one target directory may be specified",
		},
		{
			name:    "Nonexistent target directory",
			options: RunOptionsCheck{Format: FormatText},
			args:    []string{filepath.Join(tmpDir, "missing")},
			wantErr: "the target directory is not usable",
		},
		{
			name:    "Target is a file, not a directory",
			options: RunOptionsCheck{Format: FormatText},
			args:    []string{tmpFile},
			wantErr: "the target directory is not usable",
		},
		{
			name:    "Unsupported report format",
			options: RunOptionsCheck{Format: "xml"},
			args:    []string{tmpDir},
			wantErr: "unsupported report format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCheckArgs(&tt.options, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
