package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/supermanager/interview-eval/config"
	"github.com/supermanager/interview-eval/database"
	_ "github.com/supermanager/interview-eval/docs"
	adminctrl "github.com/supermanager/interview-eval/internal/controller/admin"
	interviewerctrl "github.com/supermanager/interview-eval/internal/controller/interviewer"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/metrics"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := fx.New(
			coreModule,

			fx.Provide(
				NewRegistry,
				NewMetrics,
				NewRubricCache,
				NewGinEngine,
			),

			fx.Provide(
				service.NewRubricService,
				service.NewEvaluationService,
				service.NewFreelancerService,
			),

			fx.Provide(
				adminctrl.NewRubricController,
				interviewerctrl.NewEvaluationController,
				interviewerctrl.NewFreelancerController,
			),

			fx.Invoke(database.Migrate),
			fx.Invoke(RegisterRoutesAndStartServer),
		)

		if err := app.Start(cmd.Context()); err != nil {
			return err
		}
		<-app.Done()
		log.Info().Msg("Application shutting down gracefully...")

		stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return app.Stop(stopCtx)
	},
}

func NewGinEngine(cfg *config.Config, m *metrics.Metrics, reg *prometheus.Registry) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(m.Middleware())

	origins := cfg.Server.CORSOrigins
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(
	router *gin.Engine,
	store *repository.Store,
	rubricCtrl *adminctrl.RubricController,
	evaluationCtrl *interviewerctrl.EvaluationController,
	freelancerCtrl *interviewerctrl.FreelancerController,
) {
	router.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Database: "down"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
	})

	api := router.Group("/api/v1")

	api.GET("/rubric", rubricCtrl.GetRubric)

	categories := api.Group("/categories")
	{
		categories.GET("", rubricCtrl.ListCategories)
		categories.POST("", rubricCtrl.CreateCategory)
		categories.GET("/:id", rubricCtrl.GetCategory)
		categories.PUT("/:id", rubricCtrl.UpdateCategory)
		categories.DELETE("/:id", rubricCtrl.DeleteCategory)
		categories.GET("/:id/questions", rubricCtrl.ListQuestions)
		categories.GET("/:id/checkpoints", rubricCtrl.ListCheckpoints)
		categories.GET("/:id/red-flags", rubricCtrl.ListRedFlags)
	}

	api.POST("/questions", rubricCtrl.CreateQuestion)
	api.PUT("/questions/:id", rubricCtrl.UpdateQuestion)
	api.DELETE("/questions/:id", rubricCtrl.DeleteQuestion)

	api.POST("/checkpoints", rubricCtrl.CreateCheckpoint)
	api.PUT("/checkpoints/:id", rubricCtrl.UpdateCheckpoint)
	api.DELETE("/checkpoints/:id", rubricCtrl.DeleteCheckpoint)

	api.POST("/red-flags", rubricCtrl.CreateRedFlag)
	api.PUT("/red-flags/:id", rubricCtrl.UpdateRedFlag)
	api.DELETE("/red-flags/:id", rubricCtrl.DeleteRedFlag)

	api.POST("/freelancers", freelancerCtrl.CreateFreelancer)
	api.GET("/freelancers/:id", freelancerCtrl.GetFreelancer)

	evaluations := api.Group("/evaluations")
	{
		evaluations.GET("", evaluationCtrl.ListEvaluations)
		evaluations.POST("", evaluationCtrl.CreateEvaluation)
		evaluations.GET("/:id", evaluationCtrl.GetEvaluation)
		evaluations.PUT("/:id", evaluationCtrl.UpdateEvaluation)
		evaluations.DELETE("/:id", evaluationCtrl.DeleteEvaluation)

		evaluations.POST("/:id/category-scores", evaluationCtrl.AddCategoryScore)
		evaluations.PUT("/:id/category-scores/:category_id", evaluationCtrl.UpsertCategoryScore)
		evaluations.POST("/:id/checkpoint-results", evaluationCtrl.AddCheckpointResult)
		evaluations.PUT("/:id/checkpoint-results/:checkpoint_id", evaluationCtrl.UpsertCheckpointResult)
		evaluations.POST("/:id/red-flag-findings", evaluationCtrl.AddRedFlagFinding)
		evaluations.PUT("/:id/red-flag-findings/:red_flag_id", evaluationCtrl.UpsertRedFlagFinding)

		evaluations.POST("/:id/calculate-score", evaluationCtrl.CalculateTotalScore)
		evaluations.POST("/:id/set-recommendation", evaluationCtrl.SetRecommendation)
	}
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	store *repository.Store,
	rubricCtrl *adminctrl.RubricController,
	evaluationCtrl *interviewerctrl.EvaluationController,
	freelancerCtrl *interviewerctrl.FreelancerController,
) {
	RegisterRoutes(router, store, rubricCtrl, evaluationCtrl, freelancerCtrl)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview evaluation API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}
