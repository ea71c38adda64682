package auth

import (
	"errors"
	"testing"

	"roamio/apperr"
)

func TestValidateRegistration(t *testing.T) {
	valid := RegisterInput{
		Username: "wanderer",
		Email:    "wanderer@example.com",
		Password: "hunter2hunter2",
	}
	if err := ValidateRegistration(valid); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"blank username", RegisterInput{Username: " ", Email: "a@b.c", Password: "x"}},
		{"blank email", RegisterInput{Username: "a", Email: "", Password: "x"}},
		{"email without at sign", RegisterInput{Username: "a", Email: "not-an-email", Password: "x"}},
		{"empty password", RegisterInput{Username: "a", Email: "a@b.c", Password: ""}},
	}

	for _, c := range cases {
		err := ValidateRegistration(c.in)
		if err == nil {
			t.Errorf("%s: expected an error", c.name)
			continue
		}
		if !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("%s: expected a validation error, got %v", c.name, err)
		}
	}
}
