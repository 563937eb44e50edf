package client

// ValidateStep validates only the fields the given wizard step owns, so an
// error on step 2 never mentions a step 1 field.
//
// Step 1 covers basic information (full name, phone, email), step 2 the
// account credentials (username, password, confirmation) and step 3 the
// role and station selection. An unknown step validates nothing.
func ValidateStep(step int, form RegisterForm) map[Field]string {
	errs := make(map[Field]string)

	switch step {
	case 1:
		for _, field := range []Field{FieldFullName, FieldPhone, FieldEmail} {
			if msg := ValidateField(field, form.fieldValue(field)); msg != "" {
				errs[field] = msg
			}
		}
	case 2:
		for _, field := range []Field{FieldUsername, FieldPassword} {
			if msg := ValidateField(field, form.fieldValue(field)); msg != "" {
				errs[field] = msg
			}
		}
		if form.Password != "" && form.ConfirmPassword != "" && form.Password != form.ConfirmPassword {
			errs[FieldConfirmPassword] = "Passwords do not match"
		} else if form.ConfirmPassword == "" {
			errs[FieldConfirmPassword] = "Please confirm your password"
		}
	case 3:
		if form.Role == "" {
			errs[FieldRole] = "Please select a role"
		}
		if len(form.StationCodes) == 0 {
			errs[FieldStationCodes] = "Please select at least one station"
		}
	}
	return errs
}
