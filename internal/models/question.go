package models

// GeneratedQuestion is one question as produced by the question generator.
type GeneratedQuestion struct {
	Question                string   `bson:"question" json:"question"`
	Type                    string   `bson:"type" json:"type"`
	Difficulty              string   `bson:"difficulty" json:"difficulty"`
	Category                string   `bson:"category" json:"category"`
	SkillsTested            []string `bson:"skills_tested" json:"skills_tested"`
	ExpectedDurationMinutes int      `bson:"expected_duration_minutes" json:"expected_duration_minutes"`
}

// QuestionSet is the generator's response for one generation request.
type QuestionSet struct {
	Questions []GeneratedQuestion `bson:"questions" json:"questions"`
	Role      string              `bson:"role" json:"role"`
	Level     string              `bson:"level" json:"level"`
	UsedLLM   bool                `bson:"used_llm" json:"used_llm"`
}

// GenerationRequest describes the question mix wanted for a new session.
type GenerationRequest struct {
	Role            string   `json:"role" binding:"required"`
	Level           string   `json:"level" binding:"required"`
	TargetCompany   string   `json:"target_company"`
	ResumeContext   string   `json:"resume_context"`
	FocusAreas      []string `json:"focus_areas"`
	NumTechnical    int      `json:"num_technical"`
	NumBehavioral   int      `json:"num_behavioral"`
	NumSituational  int      `json:"num_situational"`
	NumSystemDesign int      `json:"num_system_design"`
}

// TotalRequested returns the number of questions the request asks for.
func (r *GenerationRequest) TotalRequested() int {
	return r.NumTechnical + r.NumBehavioral + r.NumSituational + r.NumSystemDesign
}
