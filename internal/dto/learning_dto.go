package dto

import "sensor-ops/internal/model"

// TopicsResponse groups Learning_Content rows by category.
type TopicsResponse struct {
	Topics   []model.LearningTopic `json:"topics"`
	Warnings []string              `json:"warnings,omitempty"`
}

// QuizResponse lists the questions with their choices. The answer key
// never leaves the server.
type QuizResponse struct {
	Questions []QuizQuestionView `json:"questions"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// QuizQuestionView is one question as presented to the client.
type QuizQuestionView struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizAnswerRequest grades one selected choice.
type QuizAnswerRequest struct {
	Index  int    `json:"index" binding:"min=0"`
	Answer string `json:"answer" binding:"required"`
}

// QuizAnswerResponse reveals the key and, on a miss, the explanation.
type QuizAnswerResponse struct {
	Correct     bool   `json:"correct"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation,omitempty"`
}

// CalculatorsResponse lists the Calc_Tools formulas. Expressions stay
// server-side; clients see only the variable names to prompt for.
type CalculatorsResponse struct {
	Formulas []model.CalcFormula `json:"formulas"`
	Warnings []string            `json:"warnings,omitempty"`
}

// CalcRequest evaluates one named formula against supplied values.
type CalcRequest struct {
	Name   string             `json:"name" binding:"required"`
	Values map[string]float64 `json:"values" binding:"required"`
}

// CalcResponse is the evaluation result with its display unit.
type CalcResponse struct {
	Name   string  `json:"name"`
	Result float64 `json:"result"`
	Unit   string  `json:"unit,omitempty"`
}
