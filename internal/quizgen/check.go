package quizgen

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// problemSchema describes the shape a well-formed problem object should
// have. Option count bounds are filled in per request.
func problemSchema(optionCount int) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": optionCount,
				"maxItems": optionCount,
			},
			"correct_answer": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
		"required": []any{"question", "options", "correct_answer"},
	}
}

// CheckProblems inspects extracted problems against the request's option
// count and returns one warning per finding. This is an opt-in report: the
// extraction pipeline itself accepts every shape the model produces, and
// nothing here mutates or drops a problem.
func CheckProblems(problems []Problem, optionCount int) []string {
	compiled, err := compileProblemSchema(optionCount)
	if err != nil {
		return []string{fmt.Sprintf("schema compile failed: %v", err)}
	}

	var warnings []string
	for i, p := range problems {
		doc, err := json.Marshal(p)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("бодлого %d: marshal failed: %v", i+1, err))
			continue
		}
		var parsed any
		if err := json.Unmarshal(doc, &parsed); err != nil {
			warnings = append(warnings, fmt.Sprintf("бодлого %d: %v", i+1, err))
			continue
		}
		if err := compiled.Validate(parsed); err != nil {
			warnings = append(warnings, fmt.Sprintf("бодлого %d: %v", i+1, err))
		}
		if p.CorrectAnswer != "" && len(p.Options) > 0 && !slices.Contains(p.Options, p.CorrectAnswer) {
			warnings = append(warnings, fmt.Sprintf("бодлого %d: зөв хариулт сонголтуудын дунд алга", i+1))
		}
	}
	return warnings
}

func compileProblemSchema(optionCount int) (*jsonschema.Schema, error) {
	def := problemSchema(optionCount)

	// The compiler wants a parsed JSON value, not a Go map with typed
	// values. Round-trip through encoding/json to normalize.
	raw, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	url := "schema://mcq-problem.json"
	if err := c.AddResource(url, parsed); err != nil {
		return nil, err
	}
	return c.Compile(url)
}
