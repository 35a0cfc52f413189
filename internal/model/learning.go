package model

// LearningTopic is one Learning_Content row.
type LearningTopic struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Formula  string `json:"formula,omitempty"`
	Info     string `json:"info,omitempty"`
	Example  string `json:"example,omitempty"`
}

// QuizQuestion is one Quiz_Data row. The answer key stays server-side;
// the DTO layer strips it before responding.
type QuizQuestion struct {
	Question    string
	Options     []string
	Answer      string
	Explanation string
}

// CalcFormula is one Calc_Tools row: a named calculator with its
// variable list and expression.
type CalcFormula struct {
	Name        string   `json:"name"`
	Variables   []string `json:"variables"`
	Expression  string   `json:"-"` // evaluated server-side only
	Unit        string   `json:"unit,omitempty"`
	Description string   `json:"description,omitempty"`
}
