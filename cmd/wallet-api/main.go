package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/skills-wallet-api/internal/generator"
	"github.com/noah-isme/skills-wallet-api/internal/handler"
	"github.com/noah-isme/skills-wallet-api/internal/middleware"
	"github.com/noah-isme/skills-wallet-api/internal/service"
	"github.com/noah-isme/skills-wallet-api/internal/store"
	"github.com/noah-isme/skills-wallet-api/pkg/config"
	"github.com/noah-isme/skills-wallet-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/skills-wallet-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/skills-wallet-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	st := store.New()
	if cfg.Seed.Enabled {
		if err := store.Seed(st); err != nil {
			logr.Sugar().Fatalw("failed to seed store", "error", err)
		}
	}

	validate := validator.New()
	gen := generator.New(nil)

	authService := service.NewAuthService(st, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	subjectService := service.NewSubjectService(st, validate, logr)
	classService := service.NewClassService(st, validate, logr)
	examService := service.NewExamService(st, gen, validate, logr)
	evaluationService := service.NewEvaluationService(st, logr)
	credentialService := service.NewCredentialService(st, validate, logr)
	verificationService := service.NewVerificationService(st, logr)

	var metricsService *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsService = service.NewMetricsService()
	}

	var exportService *service.WalletExportService
	if cfg.Export.Enabled {
		exportService = service.NewWalletExportService(verificationService, cfg.Export.Title, logr)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsService != nil {
		r.Use(middleware.Metrics(metricsService))
	}

	router := &handler.Router{
		Auth:         handler.NewAuthHandler(authService),
		Subjects:     handler.NewSubjectHandler(subjectService, classService),
		Exams:        handler.NewExamHandler(examService, evaluationService),
		Credentials:  handler.NewCredentialHandler(credentialService, metricsService),
		Verification: handler.NewVerificationHandler(verificationService, metricsService),
		Wallet:       handler.NewWalletHandler(verificationService, exportService),
		Metrics:      handler.NewMetricsHandler(metricsService),
		AuthService:  authService,
	}
	router.Register(r, cfg.APIPrefix)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
