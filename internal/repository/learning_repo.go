package repository

import (
	"context"
	"strings"

	"sensor-ops/internal/core/formula"
	"sensor-ops/internal/model"
	"sensor-ops/pkg/constants"
)

// LearningRepository reads the knowledge-base tabs: Learning_Content,
// Quiz_Data and Calc_Tools.
type LearningRepository interface {
	ListTopics(ctx context.Context) ([]model.LearningTopic, error)
	ListQuestions(ctx context.Context) ([]model.QuizQuestion, error)
	ListFormulas(ctx context.Context) ([]model.CalcFormula, error)
}

type learningRepository struct {
	loader TableLoader
}

func NewLearningRepository(loader TableLoader) LearningRepository {
	return &learningRepository{loader: loader}
}

func (r *learningRepository) ListTopics(ctx context.Context) ([]model.LearningTopic, error) {
	table, err := loadNormalized(ctx, r.loader, constants.SheetLearningContent, 0)
	if err != nil {
		return nil, err
	}

	if missing := table.MissingColumns(constants.ColTopicTitle); len(missing) > 0 {
		return nil, schemaError(constants.SheetLearningContent, missing, table)
	}

	topics := make([]model.LearningTopic, 0, len(table.Rows))
	for _, row := range table.Rows {
		title, ok := row.Get(constants.ColTopicTitle)
		if !ok {
			continue
		}
		topics = append(topics, model.LearningTopic{
			Category: row.GetOr(constants.ColTopicCategory, "ทั่วไป"),
			Title:    title,
			Formula:  row.GetOr(constants.ColTopicFormula, ""),
			Info:     row.GetOr(constants.ColTopicInfo, ""),
			Example:  row.GetOr(constants.ColTopicExample, ""),
		})
	}
	return topics, nil
}

var quizChoiceColumns = []string{
	constants.ColQuizChoiceA,
	constants.ColQuizChoiceB,
	constants.ColQuizChoiceC,
	constants.ColQuizChoiceD,
}

func (r *learningRepository) ListQuestions(ctx context.Context) ([]model.QuizQuestion, error) {
	table, err := loadNormalized(ctx, r.loader, constants.SheetQuizData, 0)
	if err != nil {
		return nil, err
	}

	if missing := table.MissingColumns(constants.ColQuizQuestion, constants.ColQuizAnswer); len(missing) > 0 {
		return nil, schemaError(constants.SheetQuizData, missing, table)
	}

	questions := make([]model.QuizQuestion, 0, len(table.Rows))
	for _, row := range table.Rows {
		question, ok := row.Get(constants.ColQuizQuestion)
		if !ok {
			continue
		}
		answer, ok := row.Get(constants.ColQuizAnswer)
		if !ok {
			continue
		}
		options := make([]string, 0, len(quizChoiceColumns))
		for _, col := range quizChoiceColumns {
			if v, ok := row.Get(col); ok && !strings.EqualFold(v, "nan") {
				options = append(options, v)
			}
		}
		if len(options) == 0 {
			continue
		}
		questions = append(questions, model.QuizQuestion{
			Question:    question,
			Options:     options,
			Answer:      answer,
			Explanation: row.GetOr(constants.ColQuizExplain, ""),
		})
	}
	return questions, nil
}

func (r *learningRepository) ListFormulas(ctx context.Context) ([]model.CalcFormula, error) {
	table, err := loadNormalized(ctx, r.loader, constants.SheetCalcTools, 0)
	if err != nil {
		return nil, err
	}

	if missing := table.MissingColumns(constants.ColCalcName, constants.ColCalcVars, constants.ColCalcEquation); len(missing) > 0 {
		return nil, schemaError(constants.SheetCalcTools, missing, table)
	}

	formulas := make([]model.CalcFormula, 0, len(table.Rows))
	for _, row := range table.Rows {
		name, ok := row.Get(constants.ColCalcName)
		if !ok {
			continue
		}
		expression, ok := row.Get(constants.ColCalcEquation)
		if !ok {
			continue
		}
		vars := formula.ParseVariables(row.GetOr(constants.ColCalcVars, ""))
		if len(vars) == 0 {
			continue
		}
		formulas = append(formulas, model.CalcFormula{
			Name:        name,
			Variables:   vars,
			Expression:  expression,
			Unit:        row.GetOr(constants.ColCalcUnit, ""),
			Description: row.GetOr(constants.ColCalcDesc, ""),
		})
	}
	return formulas, nil
}
