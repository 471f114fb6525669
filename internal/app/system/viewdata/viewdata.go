// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/dalemusser/bankadmin/internal/app/system/console"
	"github.com/dalemusser/bankadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// NavItem is one entry of the top navigation.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	Nav         []NavItem

	// One-shot status message from the previous action
	Flash template.HTML
}

var (
	mu       sync.RWMutex
	siteName = models.DefaultSiteName
)

// Init sets the site name shown in the header. Call once at startup.
func Init(name string) {
	if name == "" {
		return
	}
	mu.Lock()
	siteName = name
	mu.Unlock()
}

// SiteName returns the configured site name.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return siteName
}

// NewBaseVM creates a fully populated BaseVM for a page. The console's
// pending flash message, if any, is consumed.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	cur := httpnav.CurrentPath(r)
	vm := BaseVM{
		SiteName:    SiteName(),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: cur,
		Nav: []NavItem{
			{Label: "Dashboard", Href: "/", Active: cur == "/"},
			{Label: "Users", Href: "/users", Active: cur == "/users"},
		},
	}
	if c, ok := console.FromRequest(r); ok {
		vm.Flash = c.TakeFlash()
	}
	return vm
}
