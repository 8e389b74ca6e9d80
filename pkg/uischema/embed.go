package uischema

import (
	"embed"
	"io/fs"
)

//go:embed ui/schema/*
var embeddedSchema embed.FS

// DefaultDocumentName is the bundled application UI schema inside EmbeddedFS.
const DefaultDocumentName = "application.yaml"

// EmbeddedFS returns the bundled UI schema assets.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedSchema, "ui/schema")
	if err != nil {
		panic(err)
	}
	return sub
}

// Default loads the bundled application UI schema.
func Default() (Document, error) {
	return Load(EmbeddedFS(), SourceFromFS(DefaultDocumentName))
}
