package main

import (
	"log"
	"time"

	"interview-service/internal/auth"
	"interview-service/internal/config"
	"interview-service/internal/db"
	"interview-service/internal/evaluator"
	"interview-service/internal/event"
	"interview-service/internal/generator"
	"interview-service/internal/handlers"
	"interview-service/internal/llm"
	"interview-service/internal/repository"
	"interview-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	gin.SetMode(cfg.GinMode)
	db.InitMongo(cfg.MongoURI)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.EventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMMaxRetries)
	questionGen := generator.NewGenerator(llmClient)
	answerEval := evaluator.NewEvaluator(llmClient)

	sessionRepo := repository.NewSessionRepository(database)
	progressRepo := repository.NewProgressRepository(database)

	sessionService := service.NewSessionService(sessionRepo, progressRepo, questionGen, answerEval)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	progressHandler := handlers.NewProgressHandler(sessionService)

	setupRoutes(r, sessionHandler, progressHandler, publisher)

	r.Run(":" + cfg.Port)
}

func setupRoutes(r *gin.Engine, sessionHandler *handlers.SessionHandler, progressHandler *handlers.ProgressHandler, publisher *event.EventPublisher) {
	publish := func(eventType string, payload gin.H) {
		if publisher != nil {
			publisher.Publish(eventType, payload)
		}
	}

	// Protected session routes
	protectedSession := r.Group("/protected/interview/session")
	protectedSession.Use(auth.Middleware())
	{
		protectedSession.POST("/", func(c *gin.Context) {
			sessionHandler.CreateSession(c)
			publish(event.SessionCreated, gin.H{
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		})

		protectedSession.POST("/:id/start", func(c *gin.Context) {
			sessionHandler.StartSession(c)
			publish(event.SessionStarted, gin.H{
				"session_id": c.Param("id"),
				"user_id":    c.GetHeader("X-User-ID"),
				"timestamp":  time.Now(),
			})
		})

		protectedSession.POST("/:id/answer", func(c *gin.Context) {
			sessionHandler.SubmitAnswer(c)
			publish(event.AnswerSubmitted, gin.H{
				"session_id": c.Param("id"),
				"user_id":    c.GetHeader("X-User-ID"),
				"timestamp":  time.Now(),
			})
		})

		protectedSession.POST("/:id/skip", func(c *gin.Context) {
			sessionHandler.SkipQuestion(c)
			publish(event.QuestionSkipped, gin.H{
				"session_id": c.Param("id"),
				"user_id":    c.GetHeader("X-User-ID"),
				"timestamp":  time.Now(),
			})
		})

		protectedSession.POST("/:id/complete", func(c *gin.Context) {
			sessionHandler.CompleteSession(c)
			publish(event.SessionCompleted, gin.H{
				"session_id": c.Param("id"),
				"user_id":    c.GetHeader("X-User-ID"),
				"timestamp":  time.Now(),
			})
		})

		protectedSession.POST("/:id/pause", sessionHandler.PauseSession)
		protectedSession.POST("/:id/resume", sessionHandler.ResumeSession)
		protectedSession.POST("/:id/cancel", sessionHandler.CancelSession)
	}

	// Public session routes (read-only)
	publicSession := r.Group("/public/interview/session")
	{
		publicSession.GET("/:id", sessionHandler.GetSession)
	}

	// Protected progress routes
	protectedProgress := r.Group("/protected/interview/user")
	protectedProgress.Use(auth.Middleware())
	{
		protectedProgress.GET("/:userId/sessions", sessionHandler.GetUserSessions)
		protectedProgress.GET("/:userId/progress", func(c *gin.Context) {
			progressHandler.GetUserProgress(c)
			publish(event.ProgressUpdated, gin.H{
				"user_id":   c.Param("userId"),
				"timestamp": time.Now(),
			})
		})
		protectedProgress.GET("/:userId/analytics", progressHandler.GetProgressAnalytics)
		protectedProgress.GET("/:userId/learning-path", progressHandler.GenerateLearningPath)
		protectedProgress.GET("/:userId/milestones", progressHandler.GetMilestones)
		protectedProgress.GET("/:userId/compare", progressHandler.CompareSessions)
	}
}
