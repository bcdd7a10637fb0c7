package league

import (
	"embed"
	"io/fs"

	template "github.com/goliatone/go-template"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

//go:embed static/*.css static/*.js
var embeddedStatic embed.FS

// StaticAssets returns the embedded stylesheet and browser script referenced
// by the dashboard page.
func StaticAssets() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewTemplateRenderer creates a go-template renderer backed by the embedded
// dashboard templates.
func NewTemplateRenderer() (Renderer, error) {
	return template.NewRenderer(
		template.WithFS(embeddedTemplates),
		template.WithBaseDir("templates"),
		template.WithExtension(".html"),
	)
}
