package util

import (
	"testing"
	"time"
)

func TestValidateAmount_Positive(t *testing.T) {
	testCases := []float64{0.01, 1.0, 100.5, 9999999.99}

	for _, amount := range testCases {
		err := ValidateAmount(amount)
		if err != nil {
			t.Errorf("ValidateAmount(%f) error = %v, want nil", amount, err)
		}
	}
}

func TestValidateAmount_NonPositive(t *testing.T) {
	testCases := []float64{0, -0.01, -100, -9999.99}

	for _, amount := range testCases {
		err := ValidateAmount(amount)
		if err == nil {
			t.Errorf("ValidateAmount(%f) error = nil, want error", amount)
		}
	}
}

func TestValidateAmount_TooLarge(t *testing.T) {
	err := ValidateAmount(100000000)

	if err == nil {
		t.Error("ValidateAmount(100000000) error = nil, want error")
	}
}

func TestParseDate_Valid(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"2024-01-01", "2024-01-01"},
		{"2024-12-31", "2024-12-31"},
		{"2025-06-15T10:30:00", "2025-06-15"},
		{"2025-06-15T03:30:00+09:00", "2025-06-14"}, // UTC normalization
	}

	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v, want nil", tc.in, err)
			continue
		}
		if got.Location() != time.UTC {
			t.Errorf("ParseDate(%q) location = %v, want UTC", tc.in, got.Location())
		}
		if day := got.Format("2006-01-02"); day != tc.want {
			t.Errorf("ParseDate(%q) day = %s, want %s", tc.in, day, tc.want)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
	}

	for _, date := range testCases {
		_, err := ParseDate(date)
		if err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Groceries run"); err != nil {
		t.Errorf("ValidateName(valid) error = %v, want nil", err)
	}
	if err := ValidateName("x"); err == nil {
		t.Error("ValidateName(short) error = nil, want error")
	}
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidateName(string(long)); err == nil {
		t.Error("ValidateName(long) error = nil, want error")
	}
}
