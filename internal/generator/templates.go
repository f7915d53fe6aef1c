package generator

import (
	"fmt"

	"interview-service/internal/models"
)

// Fallback template bank, indexed by question type and experience level. Role
// is substituted at selection time. Used whenever the LLM path fails so
// generation never hard-fails.

type questionTemplate struct {
	text     string
	category string
	skills   []string
	duration int
}

var templateBank = map[string]map[string][]questionTemplate{
	models.QuestionTechnical: {
		models.LevelJunior: {
			{"Walk me through how you would debug a %s application that crashes on startup.", "debugging", []string{"debugging", "fundamentals"}, 5},
			{"Explain the difference between an array and a linked list, and when you would pick each as a %s.", "data structures", []string{"data-structures"}, 5},
			{"What does version control give a %s team, and describe your branching workflow.", "tooling", []string{"git", "collaboration"}, 5},
		},
		models.LevelMid: {
			{"Describe a performance problem you found in production as a %s and how you diagnosed it.", "performance", []string{"profiling", "debugging"}, 8},
			{"How would you design the error-handling strategy for a service a %s team owns?", "reliability", []string{"error-handling", "api-design"}, 8},
			{"Explain how you would add test coverage to a legacy codebase you inherited as a %s.", "testing", []string{"testing", "refactoring"}, 8},
		},
		models.LevelSenior: {
			{"As a senior %s, how do you evaluate whether to adopt a new framework or library across teams?", "architecture", []string{"architecture", "leadership"}, 10},
			{"Describe the most complex migration you led as a %s and how you de-risked it.", "architecture", []string{"migrations", "planning"}, 10},
			{"How would you establish coding standards and review culture for a growing %s organization?", "leadership", []string{"code-review", "mentoring"}, 10},
		},
	},
	models.QuestionBehavioral: {
		models.LevelJunior: {
			{"Tell me about a time you received difficult feedback on your work as a %s.", "feedback", []string{"communication"}, 5},
			{"Describe a situation where you had to learn a new technology quickly for a %s task.", "learning", []string{"adaptability"}, 5},
		},
		models.LevelMid: {
			{"Tell me about a disagreement with a teammate about a %s design decision and how it resolved.", "conflict", []string{"communication", "collaboration"}, 6},
			{"Describe a time you missed a deadline as a %s. What happened and what changed afterwards?", "accountability", []string{"planning", "ownership"}, 6},
		},
		models.LevelSenior: {
			{"Tell me about a time you had to push back on a product requirement as a senior %s.", "influence", []string{"leadership", "communication"}, 8},
			{"Describe how you grew a struggling engineer on your %s team.", "mentoring", []string{"mentoring", "leadership"}, 8},
		},
	},
	models.QuestionSituational: {
		models.LevelJunior: {
			{"Your %s task is blocked on another team for a week. What do you do?", "prioritization", []string{"communication", "initiative"}, 5},
		},
		models.LevelMid: {
			{"A production incident pages you during a %s release freeze. Walk me through your first hour.", "incident response", []string{"incident-response", "judgment"}, 6},
		},
		models.LevelSenior: {
			{"Two teams want your %s group to own the same new component. How do you decide and communicate it?", "org design", []string{"leadership", "negotiation"}, 8},
		},
	},
	models.QuestionSystemDesign: {
		models.LevelJunior: {
			{"Design a URL shortener for internal %s use. Start with the data model.", "system design", []string{"api-design", "data-modeling"}, 15},
		},
		models.LevelMid: {
			{"Design a rate limiter for a public API your %s team exposes, handling 10k requests per second.", "system design", []string{"distributed-systems", "api-design"}, 20},
		},
		models.LevelSenior: {
			{"Design a multi-region notification system for a %s platform with 50M users.", "system design", []string{"distributed-systems", "scalability"}, 25},
		},
	},
}

// templateQuestions selects count fallback questions, cycling the bank when
// count exceeds it.
func templateQuestions(qtype, level, role string, count int) []models.GeneratedQuestion {
	bank := templateBank[qtype][level]
	if len(bank) == 0 {
		bank = templateBank[qtype][models.LevelMid]
	}
	if len(bank) == 0 {
		return nil
	}

	questions := make([]models.GeneratedQuestion, 0, count)
	for i := 0; i < count; i++ {
		tpl := bank[i%len(bank)]
		questions = append(questions, models.GeneratedQuestion{
			Question:                fmt.Sprintf(tpl.text, role),
			Type:                    qtype,
			Difficulty:              defaultDifficulty(level),
			Category:                tpl.category,
			SkillsTested:            tpl.skills,
			ExpectedDurationMinutes: tpl.duration,
		})
	}
	return questions
}
