// internal/app/resources/resources.go
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Static assets are served from StaticDir on disk under StaticPrefix.
const (
	StaticPrefix = "/static"
	StaticDir    = "public"
)

// Layout blocks every page template wraps itself in.
const (
	LayoutTop    = "layout_top"
	LayoutBottom = "layout_bottom"
)

// FS holds the shared layout templates.
//
//go:embed templates/*.gohtml
var FS embed.FS

var registerOnce sync.Once

// LoadSharedTemplates registers the page layout used by every feature.
// Safe to call more than once.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       FS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}
