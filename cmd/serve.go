package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "github.com/okoye-peter/project-management-app/internal/configs"
	httpapi "github.com/okoye-peter/project-management-app/internal/http"
	middleware "github.com/okoye-peter/project-management-app/internal/http/middlewares"
	"github.com/okoye-peter/project-management-app/internal/logging"
	repository "github.com/okoye-peter/project-management-app/internal/repositories"
	"github.com/okoye-peter/project-management-app/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the project management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		logger, err := logging.New(cfg.LogDir)
		if err != nil {
			log.Fatalf("logger setup failed: %v", err)
		}

		database := config.NewDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		projectRepo := repository.NewProjectRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		teamRepo := repository.NewTeamRepository(database)
		userRepo := repository.NewUserRepository(database)

		handler := httpapi.NewHandler(
			services.NewTaskService(taskRepo),
			services.NewProjectService(projectRepo),
			services.NewTeamService(teamRepo, userRepo, projectRepo),
			services.NewUserService(userRepo),
			logger,
		)

		e := echo.New()
		e.HTTPErrorHandler = httpapi.NewErrorHandler(logger)
		e.Use(middleware.RequestLogger(logger))
		e.Use(middleware.RateLimiter(redisClient, cfg.RateLimit, time.Minute))
		httpapi.Register(e, handler)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
