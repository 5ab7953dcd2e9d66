package questionnaires

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValidationResult is the outcome of checking an answer set against a
// question list. Valid is true exactly when Errors is empty.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidateAnswers checks a submitted answer set against the declared
// question list. Answers are keyed by position: the answer to the question
// at index i lives under "question_<i>". The function is pure; it is run
// unchanged on both creation and update of an answer set, and an update is
// judged on its own merits regardless of what was stored before.
func ValidateAnswers(questions []Question, answers map[string]interface{}) ValidationResult {
	if len(questions) == 0 {
		return ValidationResult{
			Valid:  false,
			Errors: []string{"questionnaire has no question definitions"},
		}
	}

	var errs []string
	for i, q := range questions {
		key := fmt.Sprintf("question_%d", i)
		value, present := answers[key]

		// A required question that is missing or answered with an empty
		// string fails here; no additional type check is applied.
		if q.Required && (!present || isEmptyString(value)) {
			errs = append(errs, fmt.Sprintf("%s: %q is required", key, q.Text))
			continue
		}
		if !present {
			continue
		}

		switch q.Type {
		case QuestionMultipleChoice, QuestionDropdown:
			s, ok := value.(string)
			if !ok || !containsOption(q.Options, s) {
				errs = append(errs, fmt.Sprintf("%s: answer must be one of %s", key, strings.Join(q.Options, ", ")))
			}

		case QuestionCheckbox:
			selected, ok := toStringSlice(value)
			if !ok {
				errs = append(errs, fmt.Sprintf("%s: answer must be a list of options", key))
				continue
			}
			for _, s := range selected {
				if !containsOption(q.Options, s) {
					errs = append(errs, fmt.Sprintf("%s: %q is not one of %s", key, s, strings.Join(q.Options, ", ")))
				}
			}

		case QuestionScale:
			n, ok := toNumber(value)
			min, max := scaleBounds(q)
			if !ok || n < min || n > max {
				errs = append(errs, fmt.Sprintf("%s: answer must be a number between %g and %g", key, min, max))
			}

		case QuestionText:
			if _, ok := value.(string); !ok {
				errs = append(errs, fmt.Sprintf("%s: answer must be text", key))
			}

		default:
			errs = append(errs, fmt.Sprintf("%s: unknown question type %q", key, q.Type))
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func isEmptyString(v interface{}) bool {
	s, ok := v.(string)
	return ok && s == ""
}

func containsOption(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}

// toStringSlice accepts both decoded-JSON ([]interface{}) and typed
// ([]string) answer lists.
func toStringSlice(v interface{}) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// toNumber coerces the shapes a JSON answer can arrive in.
func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func scaleBounds(q Question) (float64, float64) {
	min, max := 0.0, 10.0
	if q.Min != nil {
		min = *q.Min
	}
	if q.Max != nil {
		max = *q.Max
	}
	return min, max
}

// CheckSchema validates a question list itself before a questionnaire is
// stored: every question needs a known type, choice questions need options,
// and scale bounds must be ordered.
func CheckSchema(questions []Question) []string {
	if len(questions) == 0 {
		return []string{"questions must be a non-empty array"}
	}

	var errs []string
	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("question %d: text is required", i))
		}
		switch q.Type {
		case QuestionMultipleChoice, QuestionDropdown, QuestionCheckbox:
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("question %d: options are required for %s questions", i, q.Type))
			}
		case QuestionScale:
			min, max := scaleBounds(q)
			if min > max {
				errs = append(errs, fmt.Sprintf("question %d: scale min %g exceeds max %g", i, min, max))
			}
		case QuestionText:
			// no extra constraints
		default:
			errs = append(errs, fmt.Sprintf("question %d: unknown question type %q", i, q.Type))
		}
	}
	return errs
}
