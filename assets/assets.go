// Package assets embeds the levels shipped with the sandbox.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var assetFS embed.FS

// LevelDir is the directory, inside Levels, that holds the .tmx files.
const LevelDir = "levels"

// Levels returns the embedded level files.
func Levels() fs.FS {
	return assetFS
}
