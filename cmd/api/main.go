package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/ai"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/auth"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/cache"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/config"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/database"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/handler"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/interview"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/logger"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/metrics"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/middleware"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/repository"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/resume"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Metrics    *metrics.Collector
	Limiter    *middleware.RateLimiter
	Handler    *handler.Handler
	TokenMaker *auth.JWTMaker
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	if err := database.RunMigrations(cfg.DB.DSN); err != nil {
		sugar.Fatal(err)
	}

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	// A missing API key is not an error: every AI feature has a
	// deterministic fallback path.
	var aiClient *ai.Client
	if cfg.OpenAI.APIKey != "" {
		aiClient = ai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, cfg.OpenAI.Timeout)
		sugar.Infof("completion client configured, model=%s", cfg.OpenAI.Model)
	} else {
		sugar.Warn("OPENAI_API_KEY not set, running in fallback-only mode")
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			sugar.Fatal(err)
		}
		defer redisClient.Close()
	}

	bank, err := interview.LoadBank()
	if err != nil {
		sugar.Fatal(err)
	}

	collector := metrics.NewCollector()
	repo := repository.NewRepository(pool)
	tokenMaker := auth.NewJWTMaker(cfg.JWT.Secret)
	limiter := middleware.NewRateLimiter(cfg.Limiter, redisClient, log)
	defer limiter.Stop()

	var interviewAI interview.Completer
	var resumeAI resume.Completer
	if aiClient != nil {
		interviewAI = aiClient
		resumeAI = aiClient
	}

	interviewSvc := interview.NewService(&repo.Session, bank, interviewAI, interview.NewFeedbackGenerator(nil), log, collector)
	resumeSvc := resume.NewService(&repo.Resume, resumeAI, nil, log, collector)

	app := &application{
		DB:      pool,
		Logger:  log,
		Config:  cfg,
		Metrics: collector,
		Limiter: limiter,
		Handler: &handler.Handler{
			Logger:         log,
			Users:          &repo.User,
			Interviews:     interviewSvc,
			Resumes:        resumeSvc,
			TokenMaker:     tokenMaker,
			AccessTokenTTL: cfg.JWT.AccessTokenTTL,
			UploadDir:      cfg.Upload.Dir,
			MaxUploadBytes: cfg.Upload.MaxBytes,
		},
		TokenMaker: tokenMaker,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
