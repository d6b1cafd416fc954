package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"blog-platform/internal/config"
	"blog-platform/internal/domain"
	"blog-platform/internal/infrastructure/database"
	"blog-platform/internal/logger"
	"blog-platform/internal/repository"
	"blog-platform/internal/service"
	"blog-platform/internal/validator"
)

func main() {
	usersFile := flag.String("users", "", "NDJSON file of users to load")
	contentFile := flag.String("content", "", "NDJSON file of content to load")
	commentsFile := flag.String("comments", "", "NDJSON file of comments to load")
	dump := flag.String("dump", "", "Write stored records of this resource type (users, content, comments) as NDJSON instead of loading")
	out := flag.String("out", "-", "Output file for -dump; - is stdout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", slog.String("error", err.Error()))
	}
	logger.Setup(os.Stderr, cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		if _, err := database.Migrate(cfg.DatabaseURL(), cfg.MigrationsDir); err != nil {
			logger.Fatal("Failed to run migrations", slog.String("error", err.Error()))
		}
	}

	pool, err := database.NewPostgres(ctx, database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", slog.String("error", err.Error()))
	}
	defer pool.Close()

	seeder := service.NewSeedService(
		repository.NewPostgresUserRepository(pool),
		repository.NewPostgresContentRepository(pool),
		repository.NewPostgresCommentRepository(pool),
		validator.NewValidator(),
		cfg.BatchSize,
	)

	if *dump != "" {
		if err := runDump(ctx, seeder, *dump, *out); err != nil {
			logger.Fatal("Dump failed", slog.String("resource_type", *dump), slog.String("error", err.Error()))
		}
		return
	}

	// Comments reference content and users, content references users.
	steps := []struct {
		resourceType string
		path         string
	}{
		{"users", *usersFile},
		{"content", *contentFile},
		{"comments", *commentsFile},
	}

	ran := false
	failed := false
	for _, step := range steps {
		if step.path == "" {
			continue
		}
		ran = true

		result, err := seedFile(ctx, seeder, step.resourceType, step.path)
		if err != nil {
			logger.Fatal("Seeding failed",
				slog.String("resource_type", step.resourceType),
				slog.String("file", step.path),
				slog.String("error", err.Error()),
			)
		}
		log := logger.WithFields(
			slog.String("resource_type", step.resourceType),
			slog.String("file", step.path),
		)
		log.Info("Seed file processed",
			slog.Int("total", result.TotalRecords),
			slog.Int("success", result.SuccessCount),
			slog.Int("failed", result.FailureCount),
		)
		if result.FailureCount > 0 {
			failed = true
			for _, e := range result.Errors {
				log.Warn("Rejected record",
					slog.Int("row", e.Row),
					slog.String("field", e.Field),
					slog.String("reason", e.Reason),
				)
			}
		}
	}

	if !ran {
		flag.Usage()
		os.Exit(2)
	}
	if failed {
		os.Exit(1)
	}
}

func seedFile(ctx context.Context, seeder *service.SeedService, resourceType, path string) (domain.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.ImportResult{}, err
	}
	defer f.Close()

	return seeder.Seed(ctx, resourceType, f)
}

func runDump(ctx context.Context, seeder *service.SeedService, resourceType, path string) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	count, err := seeder.Dump(ctx, resourceType, w)
	if err != nil {
		return err
	}
	logger.Info("Dump completed", slog.String("resource_type", resourceType), slog.Int("count", count))
	return nil
}
