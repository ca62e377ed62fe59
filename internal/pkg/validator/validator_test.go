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
		{"\t\n", true},
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // v1, not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-02-28"); !ok {
		t.Error("IsValidDate(\"2026-02-28\") = false, want true")
	}
	invalid := []string{"2026-13-01", "2026-02-30", "28-02-2026", "2026/02/28", ""}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidHexColor(t *testing.T) {
	valid := []string{"#fff", "#FFFFFF", "#1a2b3c"}
	invalid := []string{"fff", "#ffff", "#1a2b3g", "#", ""}
	for _, c := range valid {
		if !IsValidHexColor(c) {
			t.Errorf("IsValidHexColor(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidHexColor(c) {
			t.Errorf("IsValidHexColor(%q) = true, want false", c)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+3312345678", "0612345678", "+33 6 12 34 56 78", "06-12-34-56-78"}
	invalid := []string{"12345", "+33abc45678", "1234567890123456", ""}
	for _, p := range valid {
		if !IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", p)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	cases := []struct {
		year, month int
		want        bool
	}{
		{2026, 1, true},
		{2026, 12, true},
		{2026, 0, false},
		{2026, 13, false},
		{1999, 6, false},
		{2101, 6, false},
	}
	for _, c := range cases {
		got := IsValidPeriod(c.year, c.month)
		if got != c.want {
			t.Errorf("IsValidPeriod(%d, %d) = %v, want %v", c.year, c.month, got, c.want)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "role", Message: "is invalid"},
	}

	want := "email: is required; role: is invalid"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["email"] != "is required" || m["role"] != "is invalid" {
		t.Errorf("ToMap() = %v", m)
	}
}
