package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"TaskTrackerAPI/external/resend"
	"TaskTrackerAPI/internal/config"
	"TaskTrackerAPI/internal/db"
	"TaskTrackerAPI/internal/middleware"
	"TaskTrackerAPI/internal/repository"
	"TaskTrackerAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

// Version is set via ldflags during build
var Version = "dev"

// sources chains an env var and a TOML key as value sources for a flag
func sources(envKey, tomlKey string, tomlSrc altsrc.Sourcer) cli.ValueSourceChain {
	chain := cli.EnvVars(envKey)
	chain.Chain = append(chain.Chain, toml.TOML(tomlKey, tomlSrc))
	return chain
}

func main() {
	var configFile string
	tomlSrc := altsrc.NewStringPtrSourcer(&configFile)

	cmd := &cli.Command{
		Name:    "tasktracker",
		Usage:   "Task tracking API server",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Value:       "config.toml",
				Usage:       "Path to configuration file",
				Destination: &configFile,
				Sources:     cli.EnvVars("CONFIG"),
			},
			&cli.StringFlag{
				Name:    "host",
				Value:   "0.0.0.0",
				Usage:   "Server host",
				Sources: sources("HOST", "server.host", tomlSrc),
			},
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "Server port",
				Sources: sources("PORT", "server.port", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "database-dsn",
				Usage:   "PostgreSQL connection string",
				Sources: sources("DATABASE_DSN", "database.dsn", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "redis-addr",
				Value:   "127.0.0.1:6379",
				Usage:   "Redis address for the OTP store",
				Sources: sources("REDIS_ADDR", "redis.addr", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "redis-password",
				Usage:   "Redis password",
				Sources: sources("REDIS_PASSWORD", "redis.password", tomlSrc),
			},
			&cli.IntFlag{
				Name:    "redis-db",
				Value:   0,
				Usage:   "Redis database number",
				Sources: sources("REDIS_DB", "redis.db", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "jwt-secret",
				Usage:   "Secret key for signing session tokens",
				Sources: sources("JWT_SECRET", "auth.jwt_secret", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level: debug, info, warn, error",
				Sources: sources("LOG_LEVEL", "log.level", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "Log format: text, json",
				Sources: sources("LOG_FORMAT", "log.format", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "resend-api-key",
				Usage:   "Resend API key; notifications are logged only when unset",
				Sources: sources("RESEND_API_KEY", "mail.resend_api_key", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "mail-from",
				Value:   "TaskTracker <onboarding@resend.dev>",
				Usage:   "From address for outgoing mail",
				Sources: sources("MAIL_FROM", "mail.from", tomlSrc),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.NewFromCLI(cmd)
			if err := cfg.Validate(); err != nil {
				return err
			}
			setupLogger(cfg.Log.Level, cfg.Log.Format)
			return run(ctx, cfg)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, cfg.Database.DSN); err != nil {
		return err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	// ======================
	// EXTERNALS
	// ======================
	var mailer services.Mailer
	if cfg.Mail.ResendAPIKey != "" {
		mailer, err = resend.NewMailer(cfg.Mail.ResendAPIKey, cfg.Mail.From)
		if err != nil {
			return err
		}
	} else {
		mailer = services.NewLogMailer(slog.Default())
	}

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	todoRepo := repository.NewTodoRepository(pool)
	otpRepo := repository.NewOTPRepository(rdb)

	// ======================
	// SERVICES
	// ======================
	tokenSvc := services.NewTokenService(cfg.Auth.JWTSecret)
	userSvc := services.NewUserService(userRepo, otpRepo, tokenSvc, mailer, slog.Default())
	todoSvc := services.NewTodoService(todoRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ping": "pong"})
	})

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	authGuard := middleware.JWT(tokenSvc, userRepo)
	registerUserRoutes(e, userSvc, authGuard)
	registerTodoRoutes(e, todoSvc, authGuard)

	slog.Info("starting server", "addr", cfg.ListenAddr(), "version", Version)
	return e.Start(cfg.ListenAddr())
}

func setupLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
}
