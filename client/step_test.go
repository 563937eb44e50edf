package client

import "testing"

func TestValidateStep_StepOneOnlyOwnsBasicFields(t *testing.T) {
	errs := ValidateStep(1, RegisterForm{})

	for _, field := range []Field{FieldFullName, FieldPhone, FieldEmail} {
		if errs[field] == "" {
			t.Errorf("expected error for %s", field)
		}
	}
	for _, field := range []Field{FieldUsername, FieldPassword, FieldConfirmPassword, FieldRole, FieldStationCodes} {
		if _, ok := errs[field]; ok {
			t.Errorf("step 1 must not report %s", field)
		}
	}
}

func TestValidateStep_StepTwoShortUsernameAndMissingConfirmation(t *testing.T) {
	form := RegisterForm{
		Username: "ab",
		Password: "abcdef",
		FullName: "X",
		Phone:    "08030000000",
		Email:    "a@b.com",
	}

	errs := ValidateStep(2, form)
	if len(errs) != 2 {
		t.Fatalf("expected exactly 2 errors, got %+v", errs)
	}
	if errs[FieldUsername] != rules[FieldUsername].Message {
		t.Fatalf("unexpected username message: %q", errs[FieldUsername])
	}
	if errs[FieldConfirmPassword] != "Please confirm your password" {
		t.Fatalf("unexpected confirmation message: %q", errs[FieldConfirmPassword])
	}
}

func TestValidateStep_StepTwoPasswordMismatch(t *testing.T) {
	form := RegisterForm{
		Username:        "sadiq_ibrahim",
		Password:        "abcdef",
		ConfirmPassword: "abcdeg",
	}

	errs := ValidateStep(2, form)
	if errs[FieldConfirmPassword] != "Passwords do not match" {
		t.Fatalf("expected mismatch message, got %+v", errs)
	}
}

func TestValidateStep_StepTwoClean(t *testing.T) {
	form := RegisterForm{
		Username:        "sadiq_ibrahim",
		Password:        "abcdef",
		ConfirmPassword: "abcdef",
	}
	if errs := ValidateStep(2, form); len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestValidateStep_StepThree(t *testing.T) {
	errs := ValidateStep(3, RegisterForm{})
	if errs[FieldRole] != "Please select a role" {
		t.Fatalf("unexpected role message: %q", errs[FieldRole])
	}
	if errs[FieldStationCodes] != "Please select at least one station" {
		t.Fatalf("unexpected station message: %q", errs[FieldStationCodes])
	}

	form := RegisterForm{Role: "viewer", StationCodes: []string{"DL-KAN"}}
	if errs := ValidateStep(3, form); len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestValidateStep_UnknownStepValidatesNothing(t *testing.T) {
	if errs := ValidateStep(4, RegisterForm{}); len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}
