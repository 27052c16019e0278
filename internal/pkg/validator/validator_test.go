package validator

import (
	"testing"
	"time"
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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2026-06-15"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", "not a date", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2023-01-01 09:00:00", "2026-06-15 23:59:59"}
	invalid := []string{"2023-01-01", "2023-01-01 25:00:00", "2023-01-01T09:00:00", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	in := time.Date(2026, 6, 15, 9, 30, 0, 0, time.UTC)

	if got := FormatDate(in); got != "2026-06-15" {
		t.Errorf("FormatDate = %q, want %q", got, "2026-06-15")
	}
	if got := FormatDateTime(in); got != "2026-06-15 09:30:00" {
		t.Errorf("FormatDateTime = %q, want %q", got, "2026-06-15 09:30:00")
	}

	parsed, err := ParseDateTime(FormatDateTime(in))
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	if !parsed.Equal(in) {
		t.Errorf("round trip = %v, want %v", parsed, in)
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Pending", "Approved", "Rejected"}
	if !IsInSlice("Approved", slice) {
		t.Error("IsInSlice(\"Approved\") = false, want true")
	}
	if IsInSlice("approved", slice) {
		t.Error("IsInSlice(\"approved\") = true, want false")
	}
	if IsInSlice("", slice) {
		t.Error("IsInSlice(\"\") = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"},
		{Field: "employee_id", Message: "employee_id is required"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap returned %d entries, want 2", len(m))
	}
	if m["employee_id"] != "employee_id is required" {
		t.Errorf("unexpected message: %q", m["employee_id"])
	}
	if errs.Error() == "" {
		t.Error("Error() returned empty string")
	}
}
