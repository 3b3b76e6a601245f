// Package gamedata provides embedded generation presets and helpers for loading them.
package gamedata

import "embed"

// PresetsFilename is the preset file inside the data filesystem.
const PresetsFilename = "presets.json"

//go:embed presets.json
var dataFS embed.FS
