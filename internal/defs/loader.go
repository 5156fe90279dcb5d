// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadWidthClasses reads a width-class configuration file and replaces the
// built-in WidthClassLibrary. The file must contain at least two classes so
// the selector UI stays meaningful.
func LoadWidthClasses(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read width class file: %w", err)
	}

	var classes []WidthClassDefinition
	if err := json.Unmarshal(file, &classes); err != nil {
		return fmt.Errorf("failed to unmarshal width classes: %w", err)
	}

	if len(classes) < 2 {
		return fmt.Errorf("width class file %s defines %d classes, need at least 2", path, len(classes))
	}
	for _, c := range classes {
		if c.Width <= 0 {
			return fmt.Errorf("width class %s has non-positive width %v", c.ID, c.Width)
		}
	}

	WidthClassLibrary = classes
	return nil
}

// LoadDifficulties reads difficulty presets and merges them over the built-in
// library, keyed by preset ID.
func LoadDifficulties(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read difficulty file: %w", err)
	}

	var presets []DifficultyDefinition
	if err := json.Unmarshal(file, &presets); err != nil {
		return fmt.Errorf("failed to unmarshal difficulties: %w", err)
	}

	for _, d := range presets {
		if d.StartInterval <= 0 || d.MinInterval <= 0 {
			return fmt.Errorf("difficulty %s has non-positive spawn interval", d.ID)
		}
		if d.MinInterval > d.StartInterval {
			return fmt.Errorf("difficulty %s: min interval %v exceeds start interval %v", d.ID, d.MinInterval, d.StartInterval)
		}
		DifficultyLibrary[d.ID] = d
	}
	return nil
}
