package generator

import (
	"context"
	"fmt"
	"log"
	"strings"

	"interview-service/internal/llm"
	"interview-service/internal/models"
)

// Generator produces interview questions for a role/level, using the LLM when
// available and falling back to the template bank when a call or parse fails.
type Generator struct {
	LLM llm.Client
}

func NewGenerator(client llm.Client) *Generator {
	return &Generator{LLM: client}
}

const systemPrompt = `You are an expert technical interviewer. You produce interview questions as strict JSON with no commentary.`

// GenerateQuestions builds the requested mix of questions. Each question type
// is requested separately so a single bad LLM response only degrades that
// type to templates. Generator order is preserved: technical, behavioral,
// situational, system design.
func (g *Generator) GenerateQuestions(ctx context.Context, req *models.GenerationRequest) (*models.QuestionSet, error) {
	if req.Role == "" {
		return nil, fmt.Errorf("role is required")
	}
	if req.Level == "" {
		return nil, fmt.Errorf("level is required")
	}
	if req.TotalRequested() <= 0 {
		return nil, fmt.Errorf("at least one question must be requested")
	}

	set := &models.QuestionSet{
		Role:    req.Role,
		Level:   req.Level,
		UsedLLM: true,
	}

	batches := []struct {
		qtype string
		count int
	}{
		{models.QuestionTechnical, req.NumTechnical},
		{models.QuestionBehavioral, req.NumBehavioral},
		{models.QuestionSituational, req.NumSituational},
		{models.QuestionSystemDesign, req.NumSystemDesign},
	}

	for _, batch := range batches {
		if batch.count <= 0 {
			continue
		}
		questions, usedLLM := g.generateBatch(ctx, req, batch.qtype, batch.count)
		if !usedLLM {
			set.UsedLLM = false
		}
		set.Questions = append(set.Questions, questions...)
	}

	return set, nil
}

// generateBatch generates count questions of one type, reporting whether the
// LLM path succeeded.
func (g *Generator) generateBatch(ctx context.Context, req *models.GenerationRequest, qtype string, count int) ([]models.GeneratedQuestion, bool) {
	if g.LLM != nil {
		prompt := g.buildPrompt(req, qtype, count)

		var raw []models.GeneratedQuestion
		if err := g.LLM.GenerateJSON(ctx, systemPrompt, prompt, &raw); err == nil {
			questions := sanitizeQuestions(raw, qtype, req.Level, count)
			if len(questions) > 0 {
				return questions, true
			}
		} else {
			log.Printf("question generation via LLM failed for type %s: %v", qtype, err)
		}
	}

	return templateQuestions(qtype, req.Level, req.Role, count), false
}

// buildPrompt assembles the type-specific generation prompt.
func (g *Generator) buildPrompt(req *models.GenerationRequest, qtype string, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d %s interview questions for a %s-level %s candidate.\n",
		count, strings.ReplaceAll(qtype, "_", " "), req.Level, req.Role)

	if req.TargetCompany != "" {
		fmt.Fprintf(&b, "The candidate is interviewing at %s; tailor the questions to that company's domain.\n", req.TargetCompany)
	}
	if len(req.FocusAreas) > 0 {
		fmt.Fprintf(&b, "Focus areas: %s.\n", strings.Join(req.FocusAreas, ", "))
	}
	if req.ResumeContext != "" {
		fmt.Fprintf(&b, "Candidate resume context:\n%s\n", req.ResumeContext)
	}

	switch qtype {
	case models.QuestionTechnical:
		b.WriteString("Questions must probe hands-on engineering knowledge, not trivia.\n")
	case models.QuestionBehavioral:
		b.WriteString("Questions must ask for specific past situations (STAR format answers).\n")
	case models.QuestionSituational:
		b.WriteString("Questions must present a hypothetical workplace scenario and ask how the candidate would act.\n")
	case models.QuestionSystemDesign:
		b.WriteString("Questions must describe a system to design, with explicit scale constraints.\n")
	}

	fmt.Fprintf(&b, `Respond with a JSON array only. Each element:
{"question": "...", "type": "%s", "difficulty": "easy|medium|hard", "category": "...", "skills_tested": ["..."], "expected_duration_minutes": 5}`, qtype)

	return b.String()
}

// sanitizeQuestions drops malformed items and normalizes fields. A response
// with fewer valid items than requested under-fills rather than retrying.
func sanitizeQuestions(raw []models.GeneratedQuestion, qtype, level string, count int) []models.GeneratedQuestion {
	questions := make([]models.GeneratedQuestion, 0, count)
	for _, q := range raw {
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		q.Type = qtype
		if q.Difficulty == "" {
			q.Difficulty = defaultDifficulty(level)
		}
		if q.ExpectedDurationMinutes <= 0 {
			q.ExpectedDurationMinutes = defaultDuration(qtype)
		}
		if q.Category == "" {
			q.Category = qtype
		}
		questions = append(questions, q)
		if len(questions) == count {
			break
		}
	}
	return questions
}

func defaultDifficulty(level string) string {
	switch level {
	case models.LevelJunior:
		return models.DifficultyEasy
	case models.LevelSenior:
		return models.DifficultyHard
	default:
		return models.DifficultyMedium
	}
}

func defaultDuration(qtype string) int {
	if qtype == models.QuestionSystemDesign {
		return 20
	}
	return 5
}
