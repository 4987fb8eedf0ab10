package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/oapi-codegen/nullable"
)

func TestValidate_LeadInput(t *testing.T) {
	cases := []struct {
		name  string
		in    LeadInput
		field string
	}{
		{"valid", LeadInput{Name: "Ada", Email: "ada@example.com", Source: "Website"}, ""},
		{"missing name", LeadInput{Email: "ada@example.com", Source: "Website"}, "name"},
		{"blank name", LeadInput{Name: "   ", Email: "ada@example.com", Source: "Website"}, "name"},
		{"missing email", LeadInput{Name: "Ada", Source: "Website"}, "email"},
		{"malformed email", LeadInput{Name: "Ada", Email: "not-an-email", Source: "Website"}, "email"},
		{"missing source", LeadInput{Name: "Ada", Email: "ada@example.com"}, "source"},
		{"blank status", LeadInput{Name: "Ada", Email: "ada@example.com", Source: "Website", Status: "  "}, "status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.in)
			if tc.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error: got %v, want *ValidationError", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("field: got %q, want %q", ve.Field, tc.field)
			}
			if ve.Message == "" {
				t.Fatal("empty message")
			}
		})
	}
}

func TestValidate_FirstFailingField(t *testing.T) {
	err := Validate(LeadInput{})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error: got %v", err)
	}
	if ve.Field != "name" {
		t.Fatalf("first field: got %q, want name", ve.Field)
	}
	if ve.Message != "name is required" {
		t.Fatalf("message: got %q", ve.Message)
	}
}

func TestValidate_LeadPatch(t *testing.T) {
	empty := ""
	bad := "nope"
	blank := Status(" ")
	if err := Validate(LeadPatch{}); err != nil {
		t.Fatalf("empty patch: %v", err)
	}
	if err := Validate(LeadPatch{Name: &empty}); !IsValidation(err) {
		t.Fatalf("empty name: got %v", err)
	}
	if err := Validate(LeadPatch{Email: &bad}); !IsValidation(err) {
		t.Fatalf("bad email: got %v", err)
	}
	if err := Validate(LeadPatch{Status: &blank}); !IsValidation(err) {
		t.Fatalf("blank status: got %v", err)
	}
}

func TestLeadPatch_Apply(t *testing.T) {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	quick := "call back"
	base := Lead{ID: 7, Name: "Ada", Email: "ada@example.com", Source: "Website", Status: StatusNew, FollowUpDate: &due, Notes: &quick}

	name := "Ada L."
	status := StatusContacted
	got := LeadPatch{Name: &name, Status: &status}.Apply(base)
	if got.Name != "Ada L." || got.Status != StatusContacted {
		t.Fatalf("applied fields: got %+v", got)
	}
	if got.Email != base.Email || got.Source != base.Source || got.ID != 7 {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if got.FollowUpDate == nil || !got.FollowUpDate.Equal(due) {
		t.Fatalf("follow-up should be kept: %v", got.FollowUpDate)
	}

	cleared := LeadPatch{
		FollowUpDate: nullable.NewNullNullable[time.Time](),
		Notes:        nullable.NewNullNullable[string](),
	}.Apply(base)
	if cleared.FollowUpDate != nil || cleared.Notes != nil {
		t.Fatalf("null should clear: %+v", cleared)
	}

	next := due.AddDate(0, 0, 7)
	moved := LeadPatch{FollowUpDate: nullable.NewNullableWithValue(next)}.Apply(base)
	if moved.FollowUpDate == nil || !moved.FollowUpDate.Equal(next) {
		t.Fatalf("follow-up: got %v, want %v", moved.FollowUpDate, next)
	}
	if base.FollowUpDate != &due {
		t.Fatal("Apply mutated its input")
	}
}
