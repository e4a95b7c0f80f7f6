package validator

import "testing"

func TestValidateRegister_Valid(t *testing.T) {
	t.Parallel()

	errs := ValidateRegister("Ana", "ana@example.com", "Sup3rSecret")
	if errs.HasErrors() {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateRegister_MissingFields(t *testing.T) {
	t.Parallel()

	errs := ValidateRegister("", "", "")
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected error for %q, got %v", field, errs)
		}
	}
}

func TestValidateRegister_BadEmail(t *testing.T) {
	t.Parallel()

	errs := ValidateRegister("Ana", "not-an-email", "Sup3rSecret")
	if _, ok := errs["email"]; !ok {
		t.Fatalf("expected email error, got %v", errs)
	}
}

func TestValidateRegister_WeakPassword(t *testing.T) {
	t.Parallel()

	cases := []string{"short", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"}
	for _, password := range cases {
		errs := ValidateRegister("Ana", "ana@example.com", password)
		if _, ok := errs["password"]; !ok {
			t.Fatalf("expected password error for %q, got %v", password, errs)
		}
	}
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	if errs := ValidateLogin("ana@example.com", "anything"); errs.HasErrors() {
		t.Fatalf("expected no errors, got %v", errs)
	}

	errs := ValidateLogin("", "")
	if _, ok := errs["email"]; !ok {
		t.Fatalf("expected email error, got %v", errs)
	}
	if _, ok := errs["password"]; !ok {
		t.Fatalf("expected password error, got %v", errs)
	}
}

func TestValidateActivity(t *testing.T) {
	t.Parallel()

	if errs := ValidateActivity("buy milk", "two liters"); errs.HasErrors() {
		t.Fatalf("expected no errors, got %v", errs)
	}

	errs := ValidateActivity("   ", "")
	if _, ok := errs["title"]; !ok {
		t.Fatalf("expected title error, got %v", errs)
	}
	if _, ok := errs["description"]; !ok {
		t.Fatalf("expected description error, got %v", errs)
	}
}
