package evaluator

import (
	"strings"

	"interview-service/internal/models"
)

// Deterministic fallback scorer. Combines answer length, keyword overlap with
// the expected points, and structural cues into a 0-100 score. Same input
// always yields the same score.

const (
	lengthWeight    = 40.0
	keywordWeight   = 40.0
	structureWeight = 20.0
)

func (e *Evaluator) heuristicEvaluation(req *models.EvaluationRequest, criteria []string) *models.AnswerEvaluation {
	lengthScore := lengthComponent(req.Answer)
	keywordScore, covered, missing := keywordComponent(req.Answer, req.ExpectedPoints)
	structureScore := structureComponent(req.Answer)

	total := lengthScore + keywordScore + structureScore
	eval := e.newEvaluation(req, total, false)

	// Heuristic scoring has no per-criterion signal; spread the overall
	// score evenly so the shape matches the LLM path.
	for _, criterion := range criteria {
		eval.CriterionScores = append(eval.CriterionScores, models.CriterionScore{
			Criterion: criterion,
			Score:     total,
			Comment:   "estimated without model assistance",
		})
	}

	eval.CoveredPoints = covered
	eval.MissingPoints = missing
	eval.Summary = "Automated fallback evaluation based on answer length, coverage of expected points, and structure."

	if lengthScore >= lengthWeight*0.6 {
		eval.Strengths = append(eval.Strengths, models.FeedbackItem{
			Category: models.FeedbackStrength,
			Text:     "Answer has substantial depth for the question asked.",
		})
	} else {
		eval.Weaknesses = append(eval.Weaknesses, models.FeedbackItem{
			Category: models.FeedbackWeakness,
			Text:     "Answer is brief; interviewers expect more elaboration.",
		})
		eval.Suggestions = append(eval.Suggestions, models.FeedbackItem{
			Category: models.FeedbackSuggestion,
			Text:     "Expand the answer with concrete examples and trade-offs.",
		})
	}
	if len(missing) > 0 {
		eval.Weaknesses = append(eval.Weaknesses, models.FeedbackItem{
			Category: models.FeedbackWeakness,
			Text:     "Several expected points were not covered: " + strings.Join(missing, ", "),
		})
	}
	if len(covered) > 0 {
		eval.Strengths = append(eval.Strengths, models.FeedbackItem{
			Category: models.FeedbackStrength,
			Text:     "Covered key points: " + strings.Join(covered, ", "),
		})
	}

	return eval
}

// lengthComponent scores up to lengthWeight based on word count, saturating
// at 150 words.
func lengthComponent(answer string) float64 {
	words := len(strings.Fields(answer))
	if words >= 150 {
		return lengthWeight
	}
	return float64(words) / 150.0 * lengthWeight
}

// keywordComponent scores coverage of expected points. Without expected
// points it awards half weight, since there is nothing to check against.
func keywordComponent(answer string, expectedPoints []string) (float64, []string, []string) {
	if len(expectedPoints) == 0 {
		return keywordWeight / 2, nil, nil
	}

	lower := strings.ToLower(answer)
	var covered, missing []string
	for _, point := range expectedPoints {
		if pointCovered(lower, point) {
			covered = append(covered, point)
		} else {
			missing = append(missing, point)
		}
	}

	ratio := float64(len(covered)) / float64(len(expectedPoints))
	return ratio * keywordWeight, covered, missing
}

// pointCovered checks whether any significant word of the expected point
// appears in the answer.
func pointCovered(lowerAnswer, point string) bool {
	for _, word := range strings.Fields(strings.ToLower(point)) {
		if len(word) < 4 {
			continue
		}
		if strings.Contains(lowerAnswer, word) {
			return true
		}
	}
	return false
}

// structureComponent rewards multi-paragraph answers, enumerations, and
// concrete examples.
func structureComponent(answer string) float64 {
	score := 0.0
	if strings.Count(answer, "\n") >= 2 {
		score += structureWeight * 0.4
	}
	lower := strings.ToLower(answer)
	for _, marker := range []string{"for example", "e.g.", "first", "second", "finally", "trade-off", "tradeoff"} {
		if strings.Contains(lower, marker) {
			score += structureWeight * 0.2
		}
	}
	if score > structureWeight {
		score = structureWeight
	}
	return score
}
