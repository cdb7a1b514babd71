package httpx

import (
	"strings"
	"testing"
)

type testStruct struct {
	Email  string `validate:"required,email"`
	Name   string `validate:"required,min=3,max=50"`
	ISBN   string `validate:"omitempty,isbn"`
	Date   string `validate:"omitempty,dateformat"`
	Rating int    `validate:"gte=1,lte=5"`
}

func TestValidateStruct_ValidInput(t *testing.T) {
	s := testStruct{
		Email:  "test@example.com",
		Name:   "testuser",
		ISBN:   "9780123456789",
		Date:   "2024-10-15",
		Rating: 4,
	}

	details := ValidateStruct(s)
	if len(details) != 0 {
		t.Errorf("Expected no validation errors, got %d", len(details))
	}
}

func TestValidateStruct_RequiredFields(t *testing.T) {
	s := testStruct{Rating: 3}

	details := ValidateStruct(s)
	if len(details) == 0 {
		t.Fatal("Expected validation errors for required fields")
	}

	hasEmailError := false
	hasNameError := false
	for _, d := range details {
		if d.Field == "email" && strings.Contains(d.Message, "required") {
			hasEmailError = true
		}
		if d.Field == "name" && strings.Contains(d.Message, "required") {
			hasNameError = true
		}
	}

	if !hasEmailError {
		t.Error("Expected email required error")
	}
	if !hasNameError {
		t.Error("Expected name required error")
	}
}

func TestValidateStruct_ISBN(t *testing.T) {
	valid := []string{"9780123456789", "978-0-123456-78-9", "0123456789", "012345678X"}
	for _, isbn := range valid {
		s := testStruct{Email: "a@b.com", Name: "abc", ISBN: isbn, Rating: 3}
		if details := ValidateStruct(s); len(details) != 0 {
			t.Errorf("Expected ISBN %q to be valid, got %v", isbn, details)
		}
	}

	invalid := []string{"12345", "978012345678", "not-an-isbn"}
	for _, isbn := range invalid {
		s := testStruct{Email: "a@b.com", Name: "abc", ISBN: isbn, Rating: 3}
		if details := ValidateStruct(s); len(details) == 0 {
			t.Errorf("Expected ISBN %q to be invalid", isbn)
		}
	}
}

func TestValidateStruct_DateFormat(t *testing.T) {
	valid := []string{"2024-10-15", "1999-01-01"}
	for _, date := range valid {
		s := testStruct{Email: "a@b.com", Name: "abc", Date: date, Rating: 3}
		if details := ValidateStruct(s); len(details) != 0 {
			t.Errorf("Expected date %q to be valid, got %v", date, details)
		}
	}

	invalid := []string{"15-10-2024", "2024/10/15", "2024-13-01", "yesterday"}
	for _, date := range invalid {
		s := testStruct{Email: "a@b.com", Name: "abc", Date: date, Rating: 3}
		if details := ValidateStruct(s); len(details) == 0 {
			t.Errorf("Expected date %q to be invalid", date)
		}
	}
}

func TestValidateStruct_RatingBounds(t *testing.T) {
	for _, rating := range []int{0, 6} {
		s := testStruct{Email: "a@b.com", Name: "abc", Rating: rating}
		if details := ValidateStruct(s); len(details) == 0 {
			t.Errorf("Expected rating %d to be invalid", rating)
		}
	}
}
