package resources

import (
	"html/template"
	"strings"
	"testing"
)

type layoutData struct {
	Title    string
	SiteName string
	Nav      []struct {
		Label, Href string
		Active      bool
	}
	Flash template.HTML
}

func TestLayout_Parses(t *testing.T) {
	tmpl, err := template.ParseFS(FS, "templates/*.gohtml")
	if err != nil {
		t.Fatalf("parse layout: %v", err)
	}
	for _, name := range []string{LayoutTop, LayoutBottom} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("layout block %q not defined", name)
		}
	}
}

func TestLayout_RendersFlash(t *testing.T) {
	tmpl := template.Must(template.ParseFS(FS, "templates/*.gohtml"))

	var sb strings.Builder
	data := layoutData{Title: "Users", SiteName: "Bank Admin", Flash: "User <strong>x</strong> added."}
	if err := tmpl.ExecuteTemplate(&sb, LayoutTop, data); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "<title>Users · Bank Admin</title>") {
		t.Errorf("missing title in %q", out)
	}
	if !strings.Contains(out, "<strong>x</strong>") {
		t.Errorf("flash not rendered as HTML in %q", out)
	}
}

func TestLoadSharedTemplates_Idempotent(t *testing.T) {
	LoadSharedTemplates()
	LoadSharedTemplates()
}
