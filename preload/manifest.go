// Package preload fetches sprite images ahead of the first frame. All entries
// of a manifest are loaded concurrently; each entry that fails falls back to
// its procedural stand-in, so preloading always finishes with a usable image
// for every sprite.
package preload

import (
	"encoding/json"
	"fmt"
	"os"

	"mirefall.dev/mirefall/sprite"
)

// Entry defines a single sprite within a manifest.
type Entry struct {
	Name      string `json:"name"`       // Sprite name (e.g., "goblin")
	Kind      string `json:"kind"`       // "hero", "monster", or "weapon"
	ImagePath string `json:"image_path"` // Path to the image file
}

// Manifest defines the JSON configuration listing every preloadable sprite.
type Manifest struct {
	Name       string  `json:"name"`        // Manifest name
	SpriteSize int     `json:"sprite_size"` // Edge length sprites are normalized to
	Entries    []Entry `json:"entries"`     // Sprites to preload
}

// LoadManifest loads a sprite manifest from a JSON file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	return &m, nil
}

// Validate checks the manifest for entries the loader cannot handle.
func (m *Manifest) Validate() error {
	if m.SpriteSize <= 0 {
		return fmt.Errorf("invalid sprite size: %d", m.SpriteSize)
	}

	seen := make(map[string]bool, len(m.Entries))
	for i, e := range m.Entries {
		if e.Name == "" {
			return fmt.Errorf("entry %d has no name", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate entry name: %s", e.Name)
		}
		seen[e.Name] = true

		if _, err := sprite.ParseKind(e.Kind); err != nil {
			return fmt.Errorf("entry %s: %w", e.Name, err)
		}
		if e.ImagePath == "" {
			return fmt.Errorf("entry %s: image_path is required", e.Name)
		}
	}

	return nil
}

// Descriptors converts manifest entries into sprite descriptors. The
// manifest must have been validated first.
func (m *Manifest) Descriptors() []sprite.Descriptor {
	out := make([]sprite.Descriptor, 0, len(m.Entries))
	for _, e := range m.Entries {
		kind, err := sprite.ParseKind(e.Kind)
		if err != nil {
			continue
		}
		out = append(out, sprite.Descriptor{
			Name:      e.Name,
			Kind:      kind,
			ImagePath: e.ImagePath,
		})
	}
	return out
}

// DefaultManifest builds the standard Mirefall manifest from the sprite
// roster, used when no manifest file is present on disk.
func DefaultManifest(assetsDir string, spriteSize int) *Manifest {
	roster := sprite.Roster(assetsDir)
	entries := make([]Entry, 0, len(roster))
	for _, d := range roster {
		entries = append(entries, Entry{
			Name:      d.Name,
			Kind:      d.Kind.String(),
			ImagePath: d.ImagePath,
		})
	}
	return &Manifest{
		Name:       "mirefall",
		SpriteSize: spriteSize,
		Entries:    entries,
	}
}
