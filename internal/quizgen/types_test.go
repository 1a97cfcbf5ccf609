package quizgen

import (
	"strings"
	"testing"

	"github.com/ankhbayar/mcqgen/internal/catalog"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr string
	}{
		{"valid", func(r *Request) {}, ""},
		{"unknown subject", func(r *Request) { r.Subject = "Хими" }, "subject"},
		{"empty sample", func(r *Request) { r.SampleProblem = "" }, "sample problem"},
		{"whitespace sample", func(r *Request) { r.SampleProblem = " \n\t " }, "sample problem"},
		{"zero questions", func(r *Request) { r.QuestionCount = 0 }, "question count"},
		{"too many questions", func(r *Request) { r.QuestionCount = 21 }, "question count"},
		{"one option", func(r *Request) { r.OptionCount = 1 }, "option count"},
		{"seven options", func(r *Request) { r.OptionCount = 7 }, "option count"},
		{"negative temperature", func(r *Request) { r.Temperature = -0.1 }, "temperature"},
		{"hot temperature", func(r *Request) { r.Temperature = 1.5 }, "temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestRequestValidate_RangeBoundaries(t *testing.T) {
	req := testRequest()
	req.QuestionCount = 1
	req.OptionCount = 2
	req.Temperature = 0.0
	if err := req.Validate(); err != nil {
		t.Errorf("lower bounds should be valid: %v", err)
	}

	req.QuestionCount = 20
	req.OptionCount = 6
	req.Temperature = 1.0
	req.Subject = catalog.SubjectMath
	if err := req.Validate(); err != nil {
		t.Errorf("upper bounds should be valid: %v", err)
	}
}
