package itinerary

import (
	"errors"
	"testing"

	"roamio/apperr"
	"roamio/models"
)

func validInput() CreateInput {
	return CreateInput{
		Title:       "Spring in Kyoto",
		Destination: "Kyoto, Japan",
		StartDate:   "2026-04-01",
		EndDate:     "2026-04-08",
		Budget:      2500,
		TravelStyle: models.StyleCultural,
	}
}

func TestValidateCreate(t *testing.T) {
	if err := ValidateCreate(validInput()); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestValidateCreateRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"blank title", func(in *CreateInput) { in.Title = "  " }},
		{"blank destination", func(in *CreateInput) { in.Destination = "" }},
		{"zero budget", func(in *CreateInput) { in.Budget = 0 }},
		{"negative budget", func(in *CreateInput) { in.Budget = -100 }},
		{"missing start date", func(in *CreateInput) { in.StartDate = "" }},
		{"malformed end date", func(in *CreateInput) { in.EndDate = "04/08/2026" }},
		{"unknown travel style", func(in *CreateInput) { in.TravelStyle = "spelunking" }},
	}

	for _, c := range cases {
		in := validInput()
		c.mutate(&in)
		err := ValidateCreate(in)
		if err == nil {
			t.Errorf("%s: expected an error", c.name)
			continue
		}
		if !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("%s: expected a validation error, got %v", c.name, err)
		}
	}
}

func TestValidateCreateDateOrder(t *testing.T) {
	in := validInput()
	in.StartDate = "2026-04-08"
	in.EndDate = "2026-04-01"

	err := ValidateCreate(in)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected a validation error for inverted dates, got %v", err)
	}

	// a single-day trip is fine
	in.StartDate = "2026-04-08"
	in.EndDate = "2026-04-08"
	if err := ValidateCreate(in); err != nil {
		t.Fatalf("expected same-day range to pass, got %v", err)
	}
}

func TestValidateCreateStyleOptional(t *testing.T) {
	in := validInput()
	in.TravelStyle = ""
	if err := ValidateCreate(in); err != nil {
		t.Fatalf("expected empty style to pass, got %v", err)
	}
}
