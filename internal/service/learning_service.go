package service

import (
	"context"
	"strings"

	"sensor-ops/internal/core/formula"
	"sensor-ops/internal/dto"
	"sensor-ops/internal/repository"
	pkgErrors "sensor-ops/pkg/responses"
)

type LearningService interface {
	Topics(ctx context.Context) (*dto.TopicsResponse, error)
	Quiz(ctx context.Context) (*dto.QuizResponse, error)
	GradeAnswer(ctx context.Context, req *dto.QuizAnswerRequest) (*dto.QuizAnswerResponse, error)
	Calculators(ctx context.Context) (*dto.CalculatorsResponse, error)
	Calculate(ctx context.Context, req *dto.CalcRequest) (*dto.CalcResponse, error)
}

type learningService struct {
	learningRepo repository.LearningRepository
}

func NewLearningService(learningRepo repository.LearningRepository) LearningService {
	return &learningService{learningRepo: learningRepo}
}

func (s *learningService) Topics(ctx context.Context) (*dto.TopicsResponse, error) {
	topics, err := s.learningRepo.ListTopics(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TopicsResponse{Topics: topics}, nil
}

func (s *learningService) Quiz(ctx context.Context) (*dto.QuizResponse, error) {
	questions, err := s.learningRepo.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.QuizResponse{Questions: make([]dto.QuizQuestionView, 0, len(questions))}
	for i, q := range questions {
		resp.Questions = append(resp.Questions, dto.QuizQuestionView{
			Index:    i,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return resp, nil
}

// GradeAnswer checks the selected choice against the key. A choice
// counts as correct when either string contains the other, which
// tolerates keys stored as bare letters or as full option text.
func (s *learningService) GradeAnswer(ctx context.Context, req *dto.QuizAnswerRequest) (*dto.QuizAnswerResponse, error) {
	questions, err := s.learningRepo.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	if req.Index < 0 || req.Index >= len(questions) {
		return nil, pkgErrors.ErrQuizNotFound
	}

	q := questions[req.Index]
	answer := strings.TrimSpace(req.Answer)
	key := strings.TrimSpace(q.Answer)
	correct := answer != "" && key != "" &&
		(strings.Contains(answer, key) || strings.Contains(key, answer))

	resp := &dto.QuizAnswerResponse{
		Correct: correct,
		Answer:  key,
	}
	if !correct {
		resp.Explanation = q.Explanation
	}
	return resp, nil
}

func (s *learningService) Calculators(ctx context.Context) (*dto.CalculatorsResponse, error) {
	formulas, err := s.learningRepo.ListFormulas(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CalculatorsResponse{Formulas: formulas}, nil
}

// Calculate evaluates the named Calc_Tools formula against the caller's
// values. Evaluation failures surface the evaluator's message and
// withhold the result.
func (s *learningService) Calculate(ctx context.Context, req *dto.CalcRequest) (*dto.CalcResponse, error) {
	formulas, err := s.learningRepo.ListFormulas(ctx)
	if err != nil {
		return nil, err
	}

	for _, f := range formulas {
		if f.Name != req.Name {
			continue
		}
		result, err := formula.Evaluate(f.Expression, req.Values)
		if err != nil {
			return nil, pkgErrors.Wrap(pkgErrors.CodeEvalError, "formula evaluation failed", err)
		}
		return &dto.CalcResponse{
			Name:   f.Name,
			Result: result,
			Unit:   f.Unit,
		}, nil
	}
	return nil, pkgErrors.ErrFormulaNotFound
}
