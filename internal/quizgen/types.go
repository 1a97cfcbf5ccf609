package quizgen

import (
	"fmt"
	"strings"

	"github.com/ankhbayar/mcqgen/internal/catalog"
)

// Request bundles the parameters of one generation action. Built fresh per
// action and never mutated afterwards.
type Request struct {
	// Subject is the school subject (physics or math).
	Subject catalog.Subject

	// MainTopic and Subtopic narrow the subject, e.g. "Механик" / "Кинематик".
	MainTopic string
	Subtopic  string

	// SampleProblem is the user-supplied example the generated problems
	// should resemble. Included in the prompt verbatim.
	SampleProblem string

	// QuestionCount is the number of problems to generate. Range: 1-20.
	QuestionCount int

	// OptionCount is the number of choices per problem. Range: 2-6.
	OptionCount int

	// Model is the friendly model name, e.g. "gemini-flash".
	Model string

	// Temperature controls output variety. Range: 0.0-1.0.
	Temperature float64
}

// Validate checks the request ranges and the sample problem.
func (r Request) Validate() error {
	if r.Subject != catalog.SubjectPhysics && r.Subject != catalog.SubjectMath {
		return fmt.Errorf("unknown subject %q", r.Subject)
	}
	if strings.TrimSpace(r.SampleProblem) == "" {
		return fmt.Errorf("sample problem is empty")
	}
	if r.QuestionCount < 1 || r.QuestionCount > 20 {
		return fmt.Errorf("question count %d out of range [1,20]", r.QuestionCount)
	}
	if r.OptionCount < 2 || r.OptionCount > 6 {
		return fmt.Errorf("option count %d out of range [2,6]", r.OptionCount)
	}
	if r.Temperature < 0 || r.Temperature > 1 {
		return fmt.Errorf("temperature %.2f out of range [0.0,1.0]", r.Temperature)
	}
	return nil
}

// Problem is one generated multiple-choice problem, as extracted from model
// output. Nothing beyond presence of the fields is guaranteed: the option
// count may differ from the request and the correct answer may not appear
// among the options.
type Problem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}
