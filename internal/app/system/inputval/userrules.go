package inputval

// Field names shared by the Add and Edit user forms.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldRole     = "role"
)

// AddUserRules applies to the Add User form. The password is required here
// even though it is never stored on the record.
var AddUserRules = Rules{
	{Field: FieldUsername, Label: "Username", Tag: "required,min=3"},
	{Field: FieldPassword, Label: "Password", Tag: "required,min=6"},
	{Field: FieldEmail, Label: "Email", Tag: "required,mailbox"},
	{Field: FieldPhone, Label: "Phone", Tag: "required"},
	{Field: FieldRole, Label: "Role", Tag: "required,oneof=Admin User"},
}

// EditUserRules applies to the Edit User form. Password is optional and has
// no length rule.
var EditUserRules = Rules{
	{Field: FieldUsername, Label: "Username", Tag: "required,min=3"},
	{Field: FieldPassword, Label: "Password"},
	{Field: FieldEmail, Label: "Email", Tag: "required,mailbox"},
	{Field: FieldPhone, Label: "Phone", Tag: "required"},
	{Field: FieldRole, Label: "Role", Tag: "required,oneof=Admin User"},
}
