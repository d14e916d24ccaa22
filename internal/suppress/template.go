package suppress

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteTemplate writes a starter suppression file with commented
// examples to path. The example entries never match a derived key, so
// the template suppresses nothing until edited.
func WriteTemplate(path string) error {
	template := suppressionFile{
		Suppressions: []string{
			"# Example suppressions:",
			"# \"Source/Vibeheim/WorldGen/Public/Data/LegacyStruct.h:FLegacyStruct::LegacyId\"",
			"# \"FTemporaryStruct::TempId\"",
			"# \"*::DebugId\"",
		},
	}

	data, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal suppression template: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write suppression template to %q: %w", path, err)
	}
	return nil
}
