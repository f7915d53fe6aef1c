package evaluator

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"interview-service/internal/llm"
	"interview-service/internal/models"

	"github.com/google/uuid"
)

// Evaluator grades answers against a rubric. The LLM path is preferred; on
// any call or parse failure the deterministic heuristic scorer takes over so
// evaluation never hard-fails.
type Evaluator struct {
	LLM llm.Client
}

func NewEvaluator(client llm.Client) *Evaluator {
	return &Evaluator{LLM: client}
}

const evaluatorSystemPrompt = `You are a rigorous interview evaluator. You grade answers against a rubric and respond with strict JSON only.`

var defaultCriteria = []string{"correctness", "depth", "clarity", "structure"}

// llmEvaluation mirrors the JSON shape requested from the model.
type llmEvaluation struct {
	OverallScore    float64                 `json:"overall_score"`
	CriterionScores []models.CriterionScore `json:"criterion_scores"`
	Strengths       []string                `json:"strengths"`
	Weaknesses      []string                `json:"weaknesses"`
	Suggestions     []string                `json:"suggestions"`
	CoveredPoints   []string                `json:"covered_points"`
	MissingPoints   []string                `json:"missing_points"`
	Summary         string                  `json:"summary"`
}

// EvaluateAnswer grades one question+answer pair.
func (e *Evaluator) EvaluateAnswer(ctx context.Context, req *models.EvaluationRequest) (*models.AnswerEvaluation, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, fmt.Errorf("question is required")
	}
	if strings.TrimSpace(req.Answer) == "" {
		return nil, fmt.Errorf("answer is required")
	}

	criteria := req.Criteria
	if len(criteria) == 0 {
		criteria = defaultCriteria
	}

	if e.LLM != nil {
		var parsed llmEvaluation
		if err := e.LLM.GenerateJSON(ctx, evaluatorSystemPrompt, e.buildPrompt(req, criteria), &parsed); err == nil {
			if eval := e.fromLLM(req, &parsed); eval != nil {
				return eval, nil
			}
		} else {
			log.Printf("answer evaluation via LLM failed: %v", err)
		}
	}

	return e.heuristicEvaluation(req, criteria), nil
}

func (e *Evaluator) buildPrompt(req *models.EvaluationRequest, criteria []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Evaluate this interview answer on a 0-100 scale.\n\n")
	fmt.Fprintf(&b, "Question (%s, difficulty %s): %s\n", req.QuestionType, req.Difficulty, req.Question)
	if req.Role != "" {
		fmt.Fprintf(&b, "Candidate role: %s-level %s\n", req.Level, req.Role)
	}
	fmt.Fprintf(&b, "\nAnswer:\n%s\n", req.Answer)

	fmt.Fprintf(&b, "\nGrading criteria: %s.\n", strings.Join(criteria, ", "))
	if len(req.ExpectedPoints) > 0 {
		fmt.Fprintf(&b, "A strong answer covers: %s.\n", strings.Join(req.ExpectedPoints, "; "))
	}

	b.WriteString(`
Respond with JSON only:
{"overall_score": 0, "criterion_scores": [{"criterion": "...", "score": 0, "comment": "..."}], "strengths": ["..."], "weaknesses": ["..."], "suggestions": ["..."], "covered_points": ["..."], "missing_points": ["..."], "summary": "..."}`)

	return b.String()
}

// fromLLM converts a parsed model response, rejecting out-of-range results so
// they fall through to the heuristic path.
func (e *Evaluator) fromLLM(req *models.EvaluationRequest, parsed *llmEvaluation) *models.AnswerEvaluation {
	if parsed.OverallScore < 0 || parsed.OverallScore > 100 {
		return nil
	}

	eval := e.newEvaluation(req, parsed.OverallScore, true)
	eval.CriterionScores = parsed.CriterionScores
	eval.CoveredPoints = parsed.CoveredPoints
	eval.MissingPoints = parsed.MissingPoints
	eval.Summary = parsed.Summary
	eval.Strengths = toFeedback(models.FeedbackStrength, parsed.Strengths)
	eval.Weaknesses = toFeedback(models.FeedbackWeakness, parsed.Weaknesses)
	eval.Suggestions = toFeedback(models.FeedbackSuggestion, parsed.Suggestions)
	return eval
}

func (e *Evaluator) newEvaluation(req *models.EvaluationRequest, score float64, usedLLM bool) *models.AnswerEvaluation {
	return &models.AnswerEvaluation{
		ID:           uuid.NewString(),
		SessionID:    req.SessionID,
		QuestionID:   req.QuestionID,
		QuestionType: req.QuestionType,
		OverallScore: score,
		ScoreLevel:   models.ScoreLevelFor(score),
		UsedLLM:      usedLLM,
		EvaluatedAt:  time.Now(),
	}
}

func toFeedback(category string, texts []string) []models.FeedbackItem {
	items := make([]models.FeedbackItem, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t) == "" {
			continue
		}
		items = append(items, models.FeedbackItem{Category: category, Text: t})
	}
	return items
}
