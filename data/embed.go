// Package data embeds the golden conversion files.
package data

import (
	"embed"
	"io/fs"
)

//go:embed golden/*.gz
var goldenFS embed.FS

// Golden returns the embedded golden files, rooted at the golden directory.
// Files are named <language>.gz and <language>-ordinal.gz.
func Golden() fs.FS {
	sub, err := fs.Sub(goldenFS, "golden")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}
