// Package assets embeds the code-generation templates and the translation bundles.
package assets

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed templates locales
var content embed.FS

// TemplatesFS returns the templates file system.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(content, "templates")
	if err != nil {
		log.Fatalf("failed to create templates sub-filesystem: %v", err)
	}
	return sub
}

// LocalesFS returns the translation bundles file system.
func LocalesFS() fs.FS {
	sub, err := fs.Sub(content, "locales")
	if err != nil {
		log.Fatalf("failed to create locales sub-filesystem: %v", err)
	}
	return sub
}
