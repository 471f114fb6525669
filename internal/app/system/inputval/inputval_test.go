package inputval

import "testing"

func validAdd() map[string]string {
	return map[string]string{
		FieldUsername: "bob",
		FieldPassword: "secret1",
		FieldEmail:    "b@x.com",
		FieldPhone:    "555",
		FieldRole:     "User",
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"b@x.com", true},
		{"  admin@bank.com  ", true},
		{"user@localhost", true},
		{"admin@mailserver", true},
		{"o'brien@bank-1.co.uk", true},

		{"", false},
		{"   ", false},
		{"user", false},
		{"user@", false},
		{"@example.com", false},
		{"user @example.com", false},
		{"User Name <user@example.com>", false},
		{"a..b@example.com", false},
		{"user@-bank.com", false},
		{"user@bank..com", false},
		{"a@b@c", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := IsValidEmail(tt.email)
			if got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidate_AddUser_Valid(t *testing.T) {
	res := Validate(AddUserRules, validAdd())
	if res.HasErrors() {
		t.Fatalf("expected no errors, got %v", res.Errors)
	}
	if res.First() != "" {
		t.Errorf("First() = %q, want empty", res.First())
	}
}

func TestValidate_AddUser_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		want  string
	}{
		{"empty username", FieldUsername, "", "Username is required."},
		{"short username", FieldUsername, "bo", "Username must be at least 3 characters."},
		{"empty password", FieldPassword, "", "Password is required."},
		{"short password", FieldPassword, "12345", "Password must be at least 6 characters."},
		{"empty email", FieldEmail, "", "Email is required."},
		{"bad email", FieldEmail, "not-an-email", "Email must be a valid email address."},
		{"empty phone", FieldPhone, "", "Phone is required."},
		{"empty role", FieldRole, "", "Role is required."},
		{"unknown role", FieldRole, "Root", "Role must be one of: Admin, User."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validAdd()
			values[tt.field] = tt.value

			res := Validate(AddUserRules, values)

			if len(res.Errors) != 1 {
				t.Fatalf("expected exactly one error, got %v", res.Errors)
			}
			if got := res.For(tt.field); got != tt.want {
				t.Errorf("For(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestValidate_EditUser_PasswordOptional(t *testing.T) {
	for _, pw := range []string{"", "x", "a-much-longer-password"} {
		values := validAdd()
		values[FieldPassword] = pw

		if res := Validate(EditUserRules, values); res.HasErrors() {
			t.Errorf("password %q: unexpected errors %v", pw, res.Errors)
		}
	}
}

func TestValidate_EditUser_UsernameStillRequired(t *testing.T) {
	values := validAdd()
	values[FieldUsername] = ""

	res := Validate(EditUserRules, values)
	if res.For(FieldUsername) == "" {
		t.Error("expected username error")
	}
}

func TestValidate_OrderAndMissingKeys(t *testing.T) {
	res := Validate(AddUserRules, map[string]string{})

	if len(res.Errors) != len(AddUserRules) {
		t.Fatalf("expected %d errors, got %d", len(AddUserRules), len(res.Errors))
	}
	for i, rule := range AddUserRules {
		if res.Errors[i].Field != rule.Field {
			t.Errorf("Errors[%d].Field = %q, want %q", i, res.Errors[i].Field, rule.Field)
		}
	}
	if res.First() != "Username is required." {
		t.Errorf("First() = %q", res.First())
	}
	if res.For(FieldRole) != "Role is required." {
		t.Errorf("For(role) = %q", res.For(FieldRole))
	}
}

func TestValidate_SingleLabelEmailDomain(t *testing.T) {
	for _, email := range []string{"user@localhost", "admin@mailserver"} {
		values := validAdd()
		values[FieldEmail] = email

		if msg := Validate(AddUserRules, values).For(FieldEmail); msg != "" {
			t.Errorf("add %q: unexpected error %q", email, msg)
		}
		if msg := Validate(EditUserRules, values).For(FieldEmail); msg != "" {
			t.Errorf("edit %q: unexpected error %q", email, msg)
		}
	}
}
