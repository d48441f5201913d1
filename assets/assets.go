package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:levels
var assetFS embed.FS

// FS returns the embedded assets.
func FS() fs.FS {
	return assetFS
}

// Resolve picks where levels are read from: a directory on disk when dir is
// set, the embedded assets otherwise.
func Resolve(dir string) fs.FS {
	if dir == "" {
		return assetFS
	}
	return os.DirFS(dir)
}
