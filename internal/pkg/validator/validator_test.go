package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidEmployeeID(t *testing.T) {
	valid := []string{"Empaa11bb22", "Emp00000000", "Empdeadbeef"}
	invalid := []string{
		"emp00000000", // lowercase prefix
		"EmpDEADBEEF", // uppercase hex
		"Emp1234567",  // too short
		"Emp123456789",
		"EMP-12345678",
		"",
	}
	for _, id := range valid {
		if !IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDepartmentCode(t *testing.T) {
	valid := []string{"DEP-1A2B3C4D", "DEP-00000000", "DEP-DEADBEEF"}
	invalid := []string{
		"dep-1a2b3c4d", // lowercase
		"DEP-1234567",  // too short
		"DEP-123456789",
		"DEP1A2B3C4D",
		"",
	}
	for _, code := range valid {
		if !IsValidDepartmentCode(code) {
			t.Errorf("IsValidDepartmentCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidDepartmentCode(code) {
			t.Errorf("IsValidDepartmentCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if d, ok := IsValidDate("2026-06-17"); !ok {
		t.Errorf("IsValidDate(2026-06-17) = false, want true")
	} else if d.Year() != 2026 || int(d.Month()) != 6 || d.Day() != 17 {
		t.Errorf("IsValidDate(2026-06-17) parsed to %v", d)
	}

	invalid := []string{"17-06-2026", "2026/06/17", "2026-13-01", "2026-06-17T10:00:00Z", ""}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2026-06-17T10:00:00Z",
		"2026-06-17T10:00:00+07:00",
		"2026-06-17T10:00:00.123456789Z",
	}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	invalid := []string{"2026-06-17", "10:00:00", ""}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is too short"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["email"] != "email is required" {
		t.Errorf("ToMap()[email] = %q", m["email"])
	}
	if errs.Error() == "" {
		t.Error("Error() returned empty string")
	}
}
