// Package web embeds the page that renders a board.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Static - the page root: index.html, app.js, style.css and assets/.
func Static() fs.FS {
	static, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}

	return static
}
