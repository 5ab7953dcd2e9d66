package questionnaires

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func intakeQuestions() []Question {
	return []Question{
		{Text: "What brings you here?", Type: QuestionText, Required: true},
		{Text: "Been in therapy before?", Type: QuestionMultipleChoice, Required: true, Options: []string{"Yes", "No"}},
		{Text: "Stress level", Type: QuestionScale, Required: false, Min: floatPtr(1), Max: floatPtr(5)},
		{Text: "Focus areas", Type: QuestionCheckbox, Required: false, Options: []string{"a", "b", "c"}},
		{Text: "Frequency", Type: QuestionDropdown, Required: false, Options: []string{"Weekly", "Monthly"}},
	}
}

func TestValidateAnswersAllValid(t *testing.T) {
	result := ValidateAnswers(intakeQuestions(), map[string]interface{}{
		"question_0": "Sleep problems",
		"question_1": "Yes",
		"question_2": float64(3),
		"question_3": []interface{}{"a", "c"},
		"question_4": "Weekly",
	})

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateAnswersOptionalMayBeOmitted(t *testing.T) {
	result := ValidateAnswers(intakeQuestions(), map[string]interface{}{
		"question_0": "Sleep problems",
		"question_1": "No",
	})

	assert.True(t, result.Valid)
}

func TestValidateAnswersRequiredMissing(t *testing.T) {
	result := ValidateAnswers(intakeQuestions(), map[string]interface{}{
		"question_1": "Yes",
	})

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "question_0")
	assert.Contains(t, result.Errors[0], "is required")
}

// An empty string on a required question produces exactly one error; the
// type check is not applied on top.
func TestValidateAnswersRequiredEmptyStringSingleError(t *testing.T) {
	questions := []Question{
		{Text: "Pick one", Type: QuestionMultipleChoice, Required: true, Options: []string{"Yes", "No"}},
	}

	result := ValidateAnswers(questions, map[string]interface{}{"question_0": ""})

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "is required")
}

func TestValidateAnswersChoiceOutsideOptions(t *testing.T) {
	result := ValidateAnswers(intakeQuestions(), map[string]interface{}{
		"question_0": "text",
		"question_1": "Maybe",
	})

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "question_1")
	assert.Contains(t, result.Errors[0], "Yes, No")
}

func TestValidateAnswersScaleBounds(t *testing.T) {
	questions := intakeQuestions()

	inRange := ValidateAnswers(questions, map[string]interface{}{
		"question_0": "text",
		"question_1": "Yes",
		"question_2": "3",
	})
	assert.True(t, inRange.Valid, "string-encoded number within bounds should pass")

	outOfRange := ValidateAnswers(questions, map[string]interface{}{
		"question_0": "text",
		"question_1": "Yes",
		"question_2": "6",
	})
	require.False(t, outOfRange.Valid)
	require.Len(t, outOfRange.Errors, 1)
	assert.Contains(t, outOfRange.Errors[0], "between 1 and 5")

	notANumber := ValidateAnswers(questions, map[string]interface{}{
		"question_0": "text",
		"question_1": "Yes",
		"question_2": "three",
	})
	assert.False(t, notANumber.Valid)
}

func TestValidateAnswersScaleDefaultBounds(t *testing.T) {
	questions := []Question{{Text: "Rate it", Type: QuestionScale}}

	assert.True(t, ValidateAnswers(questions, map[string]interface{}{"question_0": float64(10)}).Valid)
	assert.False(t, ValidateAnswers(questions, map[string]interface{}{"question_0": float64(11)}).Valid)
	assert.False(t, ValidateAnswers(questions, map[string]interface{}{"question_0": float64(-1)}).Valid)
}

func TestValidateAnswersCheckbox(t *testing.T) {
	questions := intakeQuestions()
	base := map[string]interface{}{
		"question_0": "text",
		"question_1": "Yes",
	}

	valid := map[string]interface{}{"question_3": []string{"a", "c"}}
	for k, v := range base {
		valid[k] = v
	}
	assert.True(t, ValidateAnswers(questions, valid).Valid)

	unknown := map[string]interface{}{"question_3": []interface{}{"a", "d"}}
	for k, v := range base {
		unknown[k] = v
	}
	result := ValidateAnswers(questions, unknown)
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `"d"`)

	notAList := map[string]interface{}{"question_3": "a"}
	for k, v := range base {
		notAList[k] = v
	}
	assert.False(t, ValidateAnswers(questions, notAList).Valid)
}

func TestValidateAnswersTextMustBeString(t *testing.T) {
	questions := []Question{{Text: "Notes", Type: QuestionText}}

	result := ValidateAnswers(questions, map[string]interface{}{"question_0": float64(42)})
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "must be text")
}

func TestValidateAnswersEmptyQuestionList(t *testing.T) {
	result := ValidateAnswers(nil, map[string]interface{}{"question_0": "hello"})

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "questionnaire has no question definitions", result.Errors[0])
}

func TestValidateAnswersCollectsMultipleErrors(t *testing.T) {
	result := ValidateAnswers(intakeQuestions(), map[string]interface{}{
		"question_1": "Maybe",
		"question_2": float64(99),
	})

	require.False(t, result.Valid)
	assert.Len(t, result.Errors, 3) // missing required, bad choice, out-of-range scale
}

func TestCheckSchema(t *testing.T) {
	assert.Empty(t, CheckSchema(intakeQuestions()))

	errs := CheckSchema(nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "questions must be a non-empty array", errs[0])

	errs = CheckSchema([]Question{
		{Text: "", Type: QuestionText},
		{Text: "Pick", Type: QuestionDropdown},
		{Text: "Rate", Type: QuestionScale, Min: floatPtr(5), Max: floatPtr(1)},
		{Text: "Odd", Type: QuestionType("matrix")},
	})
	assert.Len(t, errs, 4)
}
