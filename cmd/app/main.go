package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"huakai/cmd/fx/controllers_fx"
	"huakai/cmd/fx/itinerary_fx"
	"huakai/cmd/fx/llm_fx"
	"huakai/cmd/fx/logger_fx"
	"huakai/cmd/fx/mail_fx"
	"huakai/cmd/fx/memcache_fx"
	"huakai/cmd/fx/questions_fx"
	"huakai/cmd/fx/search_fx"
	"huakai/internal/api/controllers"
	"huakai/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		logger_fx.Module,
		llm_fx.Module,
		memcache_fx.Module,
		search_fx.Module,
		questions_fx.Module,
		itinerary_fx.Module,
		mail_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	logger *zap.Logger,
	pagesController *controllers.PagesController,
	questionsController *controllers.QuestionsController,
	plansController *controllers.PlansController,
	exportController *controllers.ExportController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))

	RegisterRoutes(r, pagesController, questionsController, plansController, exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	pagesController *controllers.PagesController,
	questionsController *controllers.QuestionsController,
	plansController *controllers.PlansController,
	exportController *controllers.ExportController) {

	r.GET("/", pagesController.Index)

	api := r.Group("/api/v1")
	api.GET("/questions", questionsController.GetQuestions)

	plansGroup := api.Group("/plans")
	plansGroup.POST("", plansController.CreatePlan)
	plansGroup.POST("/export/download", exportController.DownloadItinerary)
	plansGroup.POST("/export/email", exportController.EmailItinerary)
}
