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
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-06-15"); !ok {
		t.Error(`IsValidDate("2025-06-15") = false, want true`)
	}
	if date, ok := IsValidDate("2025-06-15"); ok {
		if date.Year() != 2025 || date.Month() != 6 || date.Day() != 15 {
			t.Errorf("IsValidDate parsed wrong date: %v", date)
		}
	}

	invalid := []string{"2025-13-01", "2025-06-32", "15-06-2025", "2025/06/15", "yesterday", ""}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP-0001", "A1", "X-42-B", "0001"}
	invalid := []string{"", "E", "emp-0001", "EMP 0001", "-EMP", "EMP-00000000000000000001"}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"annual", "sick", "unpaid", "other"}
	if !IsInSlice("sick", slice) {
		t.Error(`IsInSlice("sick") = false, want true`)
	}
	if IsInSlice("SICK", slice) {
		t.Error(`IsInSlice("SICK") = true, want false`)
	}
	if IsInSlice("maternity", slice) {
		t.Error(`IsInSlice("maternity") = true, want false`)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is too short"},
	}

	if errs.Error() != "email: email is required; password: password is too short" {
		t.Errorf("unexpected Error() output: %q", errs.Error())
	}

	m := errs.ToMap()
	if m["email"] != "email is required" || m["password"] != "password is too short" {
		t.Errorf("unexpected ToMap() output: %v", m)
	}
}
