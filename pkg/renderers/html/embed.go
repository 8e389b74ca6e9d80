package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the bundled templates so callers can copy or extend them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
