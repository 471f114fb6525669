package users

import (
	"html/template"
	"strings"
	"testing"

	"github.com/dalemusser/bankadmin/internal/app/resources"
	"github.com/dalemusser/bankadmin/internal/app/system/inputval"
	"github.com/dalemusser/bankadmin/internal/app/system/viewdata"
	"github.com/dalemusser/bankadmin/internal/domain/models"
)

func parsePage(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := template.New("page").ParseFS(resources.FS, "templates/*.gohtml")
	if err != nil {
		t.Fatalf("parse layout: %v", err)
	}
	if _, err := tmpl.ParseFS(FS, "templates/*.gohtml"); err != nil {
		t.Fatalf("parse users templates: %v", err)
	}
	return tmpl
}

func render(t *testing.T, data listData) string {
	t.Helper()
	var sb strings.Builder
	if err := parsePage(t).ExecuteTemplate(&sb, "users_list", data); err != nil {
		t.Fatalf("execute: %v", err)
	}
	return sb.String()
}

func seedRows() []userRow {
	var rows []userRow
	for _, u := range models.SeedUsers() {
		rows = append(rows, rowFor(u))
	}
	return rows
}

func TestUsersList_RowsAndClasses(t *testing.T) {
	out := render(t, listData{
		BaseVM: viewdata.BaseVM{Title: "Users", SiteName: "Bank Admin"},
		Rows:   seedRows(),
		Total:  4,
		Modal:  "none",
	})

	for _, want := range []string{
		`id="user-1"`, "admin@bank.com", "role-admin", "status-inactive", "Activate", "Deactivate",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "modal-backdrop") {
		t.Error("no dialog should be rendered")
	}
}

func TestUsersList_AddDialogWithErrors(t *testing.T) {
	out := render(t, listData{
		BaseVM: viewdata.BaseVM{Title: "Users"},
		Rows:   seedRows(),
		Modal:  "add",
		Add: formVM{
			Username: "ab",
			Role:     "Admin",
			Errors:   inputval.Result{Errors: []inputval.FieldError{
				{Field: "username", Message: "Username must be at least 3 characters."},
			}},
			Roles:    models.RoleOptions,
		},
	})

	if !strings.Contains(out, `action="/users/add"`) {
		t.Error("add form not rendered")
	}
	if !strings.Contains(out, "Username must be at least 3 characters.") {
		t.Error("field error not rendered")
	}
	if !strings.Contains(out, `<option value="Admin" selected>`) {
		t.Error("role not preselected")
	}
}

func TestUsersList_DeleteDialogNamesRecord(t *testing.T) {
	sel := rowFor(models.SeedUsers()[2])
	out := render(t, listData{
		Rows:     seedRows(),
		Modal:    "delete",
		Selected: &sel,
	})
	if !strings.Contains(out, "Delete <strong>user2</strong>") {
		t.Error("delete confirmation does not name the record")
	}
}

func TestUsersList_EditDialogPasswordOptional(t *testing.T) {
	sel := rowFor(models.SeedUsers()[1])
	out := render(t, listData{
		Rows:     seedRows(),
		Modal:    "edit",
		Selected: &sel,
		Edit:     formVM{Username: "user1", Roles: models.RoleOptions, Optional: true},
	})
	if !strings.Contains(out, "(optional)") {
		t.Error("edit dialog should mark password optional")
	}
	if !strings.Contains(out, "Edit User #2") {
		t.Error("edit dialog should show the record id")
	}
}
