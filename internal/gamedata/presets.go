package gamedata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/gdamore/tcell/v2"
)

// Bounds mirror world.MinDimension and world.MaxDimension; gamedata does not
// import world.
const (
	minPresetDimension = 3
	maxPresetDimension = 2048
)

// ErrInvalidPreset is returned when a preset cannot drive a generation.
var ErrInvalidPreset = errors.New("invalid preset")

// PresetDef defines a named set of generation parameters loaded from JSON.
type PresetDef struct {
	ID         string `json:"id"`         // Unique identifier (e.g., "caverns")
	Name       string `json:"name"`       // Display name (e.g., "Caverns")
	Width      int    `json:"width"`      // Grid columns
	Height     int    `json:"height"`     // Grid rows
	Walks      int    `json:"walks"`      // Number of independent walks
	Steps      int    `json:"steps"`      // Steps per walk
	WallColor  string `json:"wallColor"`  // Hex color for wall tiles
	FloorColor string `json:"floorColor"` // Hex color for floor tiles
}

// Validate checks that the preset describes a grid that can be generated.
func (p *PresetDef) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidPreset)
	}
	if p.Width < minPresetDimension || p.Height < minPresetDimension {
		return fmt.Errorf("%w %q: grid %dx%d is smaller than %dx%d",
			ErrInvalidPreset, p.ID, p.Width, p.Height, minPresetDimension, minPresetDimension)
	}
	if p.Width > maxPresetDimension || p.Height > maxPresetDimension {
		return fmt.Errorf("%w %q: grid %dx%d is larger than %dx%d",
			ErrInvalidPreset, p.ID, p.Width, p.Height, maxPresetDimension, maxPresetDimension)
	}
	if p.Walks < 0 || p.Steps < 0 {
		return fmt.Errorf("%w %q: negative walks or steps", ErrInvalidPreset, p.ID)
	}
	if _, err := ParseHexColor(p.WallColor); err != nil {
		return fmt.Errorf("%w %q: wall color: %w", ErrInvalidPreset, p.ID, err)
	}
	if _, err := ParseHexColor(p.FloorColor); err != nil {
		return fmt.Errorf("%w %q: floor color: %w", ErrInvalidPreset, p.ID, err)
	}
	return nil
}

// WallTCellColor returns the wall color, falling back to dark gray.
func (p *PresetDef) WallTCellColor() tcell.Color {
	color, err := ParseHexColor(p.WallColor)
	if err != nil {
		return tcell.ColorDarkGray
	}
	return color
}

// FloorTCellColor returns the floor color, falling back to gray.
func (p *PresetDef) FloorTCellColor() tcell.Color {
	color, err := ParseHexColor(p.FloorColor)
	if err != nil {
		return tcell.ColorGray
	}
	return color
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads and validates preset definitions from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	return LoadPresetsFS(dataFS)
}

// LoadPresetsFS loads and validates presets.json from fsys.
func LoadPresetsFS(fsys fs.FS) ([]PresetDef, error) {
	file, err := LoadFS[PresetsFile](fsys, PresetsFilename)
	if err != nil {
		return nil, err
	}
	for i := range file.Presets {
		if err := file.Presets[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", PresetsFilename, err)
		}
	}
	return file.Presets, nil
}
