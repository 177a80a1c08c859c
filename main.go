package main

import (
	"log"
	"time"

	"readdash-service/internal/config"
	"readdash-service/internal/db"
	"readdash-service/internal/event"
	"readdash-service/internal/generation"
	"readdash-service/internal/grading"
	"readdash-service/internal/handlers"
	"readdash-service/internal/middleware"
	"readdash-service/internal/repository"
	"readdash-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.InitMongo(cfg.MongoURI); err != nil {
		log.Fatalf("MongoDB init failed: %v", err)
	}
	defer db.CloseMongo()
	database := db.Client.Database(cfg.MongoDatabase)

	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Repositories, services, handlers
	quizRepo := repository.NewQuizRepository(database)
	resultRepo := repository.NewResultRepository(database)
	userRepo := repository.NewUserRepository(database)
	achievementRepo := repository.NewAchievementRepository(database)

	quizService := service.NewQuizService(quizRepo)
	quizHandler := handlers.NewQuizHandler(quizService)

	resultService := service.NewResultService(resultRepo, quizRepo, userRepo, achievementRepo,
		grading.Options{FillBlanksByText: cfg.GradeFillBlanksByText})
	resultHandler := handlers.NewResultHandler(resultService)

	userService := service.NewUserService(userRepo, achievementRepo)
	userHandler := handlers.NewUserHandler(userService)

	generationClient := generation.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	generationHandler := handlers.NewGenerationHandler(generationClient)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	public := r.Group("/public/readdash")
	{
		public.GET("/quiz", quizHandler.ListQuizzes)
		public.GET("/quiz/:id", quizHandler.GetQuiz)
	}

	protected := r.Group("/protected/readdash", middleware.Identity(cfg.JWTSecret))
	{
		protected.POST("/quiz/:id/submit", func(c *gin.Context) {
			resultHandler.SubmitQuiz(c)
			publisher.Publish("readdash.result.submitted", gin.H{
				"quiz_id": c.Param("id"),
				"user_id": c.GetString(middleware.CtxUID),
			})
		})
		protected.GET("/quiz/:id/best", resultHandler.GetBestAttempt)
		protected.GET("/quiz/:id/review/:resultId", resultHandler.GetReview)

		protected.GET("/user/me", userHandler.Me)
		protected.GET("/user/me/results", resultHandler.GetMyResults)
		protected.GET("/user/me/achievements", userHandler.MyAchievements)
		protected.DELETE("/user/me/results/:quizId", func(c *gin.Context) {
			resultHandler.ResetQuiz(c)
			publisher.Publish("readdash.progress.reset", gin.H{
				"quiz_id": c.Param("quizId"),
				"user_id": c.GetString(middleware.CtxUID),
			})
		})

		admin := protected.Group("/", middleware.RequireAdmin())
		{
			admin.POST("/quiz", func(c *gin.Context) {
				quizHandler.CreateQuiz(c)
				publisher.Publish("readdash.quiz.created", gin.H{
					"user_id": c.GetString(middleware.CtxUID),
				})
			})
			admin.PUT("/quiz/:id", quizHandler.UpdateQuiz)
			admin.DELETE("/quiz/:id", func(c *gin.Context) {
				quizHandler.DeleteQuiz(c)
				publisher.Publish("readdash.quiz.deleted", gin.H{
					"quiz_id": c.Param("id"),
					"user_id": c.GetString(middleware.CtxUID),
				})
			})
			admin.GET("/quiz/:id/results", resultHandler.GetQuizResults)
			admin.POST("/generate", generationHandler.GenerateQuiz)
			admin.GET("/admin/users", userHandler.ListUsers)
			admin.PUT("/admin/users/:uid/role", userHandler.SetRole)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
