// Package client is the Go SDK for the ECIRS billing API. It mirrors what
// the dashboard front end does: field validation for registration drafts, a
// token-injecting HTTP client, persistent credentials and a session that
// reacts to expiry.
package client

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field identifies a validated entry of the registration draft.
type Field string

const (
	FieldUsername        Field = "username"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldFullName        Field = "full_name"
	FieldPhone           Field = "phone"
	FieldRole            Field = "role"
	FieldStationCodes    Field = "station_codes"
)

// Rule describes the constraints for a single field. Each field carries one
// message returned on any violation; checks run in the fixed order
// required, min length, max length, pattern, and the first failure wins.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Message   string
}

var rules = map[Field]Rule{
	FieldUsername: {
		Required:  true,
		MinLength: 3,
		MaxLength: 50,
		Pattern:   regexp.MustCompile(`^[a-zA-Z0-9_-]+$`),
		Message:   "Username must be 3-50 characters (alphanumeric, underscore, hyphen only)",
	},
	FieldEmail: {
		Required: true,
		Pattern:  regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
		Message:  "Please enter a valid email address",
	},
	FieldPassword: {
		Required:  true,
		MinLength: 6,
		Message:   "Password must be at least 6 characters",
	},
	FieldFullName: {
		Required: true,
		Message:  "Full name is required",
	},
	FieldPhone: {
		Required:  true,
		MinLength: 10,
		MaxLength: 20,
		Pattern:   regexp.MustCompile(`^\+?[0-9]{10,20}$`),
		Message:   "Phone must be 10-20 digits",
	},
}

// ValidateField checks value against the rule registered for field. It
// returns the field's message on the first violated check, or "" when the
// value passes or no rule exists for the field.
func ValidateField(field Field, value string) string {
	rule, ok := rules[field]
	if !ok {
		return ""
	}
	if rule.Required && strings.TrimSpace(value) == "" {
		return rule.Message
	}
	// Lengths count characters, not bytes, so a multibyte password is not
	// shorter than what the user typed.
	length := utf8.RuneCountInString(value)
	if rule.MinLength > 0 && length < rule.MinLength {
		return rule.Message
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return rule.Message
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		return rule.Message
	}
	return ""
}

// RegisterForm is the draft a registration flow accumulates before
// submission. It is a plain value: copy it freely, mutate through the
// wizard's setters.
type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
	Phone           string
	Role            string
	StationCodes    []string
	Status          string
}

// NewRegisterForm returns the defaults a fresh flow starts from.
func NewRegisterForm() RegisterForm {
	return RegisterForm{Role: "viewer", Status: "active"}
}

func (f RegisterForm) fieldValue(field Field) string {
	switch field {
	case FieldUsername:
		return f.Username
	case FieldEmail:
		return f.Email
	case FieldPassword:
		return f.Password
	case FieldConfirmPassword:
		return f.ConfirmPassword
	case FieldFullName:
		return f.FullName
	case FieldPhone:
		return f.Phone
	case FieldRole:
		return f.Role
	}
	return ""
}

// ValidateForm checks the whole draft at once: every ruled field, the
// password confirmation, the station selection and the role. An empty map
// means the draft is ready to submit.
func ValidateForm(form RegisterForm) map[Field]string {
	errs := make(map[Field]string)

	for _, field := range []Field{FieldUsername, FieldEmail, FieldPassword, FieldFullName, FieldPhone} {
		if msg := ValidateField(field, form.fieldValue(field)); msg != "" {
			errs[field] = msg
		}
	}

	if form.Password != "" && form.ConfirmPassword != "" && form.Password != form.ConfirmPassword {
		errs[FieldConfirmPassword] = "Passwords do not match"
	}
	if len(form.StationCodes) == 0 {
		errs[FieldStationCodes] = "Please select at least one station"
	}
	if form.Role == "" {
		errs[FieldRole] = "Please select a role"
	}
	return errs
}
