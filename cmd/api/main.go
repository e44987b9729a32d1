package main

import (
	"context"
	"expvar"
	"fmt"
	"os"
	"runtime"
	"time"

	"ruchi/internal/auth"
	"ruchi/internal/chat"
	"ruchi/internal/db"
	"ruchi/internal/env"
	"ruchi/internal/geocode"
	"ruchi/internal/mailer"
	"ruchi/internal/notifications"
	"ruchi/internal/ratelimiter"
	"ruchi/internal/sharecode"
	"ruchi/internal/store"

	"github.com/9ssi7/exponent"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	return ratelimiter.Config{
		RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 200),
		TimeFrame:            5 * time.Second,
		Enabled:              env.GetBool("RATE_LIMITER_ENABLED", false),
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	// Configure the encoder to be a console encoder with color
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel
	if env.GetBool("DEBUG", false) {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

func loadConfig() config {
	return config{
		addr:   env.GetString("ADDR", ":8080"),
		env:    env.GetString("ENV", "development"),
		apiURL: env.GetString("EXTERNAL_URL", "localhost:8080"),
		db: dbConfig{
			addr:         env.GetString("DB_ADDR", ""),
			maxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			maxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		mail: mailConfig{
			smtp: mailer.SMTPConfig{
				Host:     env.GetString("SMTP_HOST", ""),
				Port:     env.GetInt("SMTP_PORT", 587),
				Username: env.GetString("SMTP_USER", ""),
				Password: env.GetString("SMTP_PASS", ""),
				From:     env.GetString("SMTP_FROM", ""),
			},
		},
		auth: authConfig{
			basic: basicConfig{
				user: env.GetString("AUTH_BASIC_USER", "admin"),
				pass: env.GetString("AUTH_BASIC_PASS", "admin"),
			},
			token: tokenConfig{
				refreshSecret:   env.GetString("AUTH_TOKEN_REFRESH_SECRET", "ruchi-refresh-dev-secret"),
				secret:          env.GetString("AUTH_TOKEN_SECRET", "ruchi-dev-secret"),
				accessTokenExp:  time.Hour * 24 * 3, // 3 days
				refreshTokenExp: time.Hour * 24 * 9, // 9 days
				iss:             "Ruchi",
			},
			mockLogin:   env.GetBool("AUTH_MOCK_LOGIN", true),
			demoAdmin:   env.GetBool("AUTH_DEMO_ADMIN", false),
			adminEmails: env.GetList("ADMIN_EMAILS"),
		},
		rateLimiter: LoadRateLimiterConfig(),
		geocode: geocodeConfig{
			url:     env.GetString("GEOCODE_URL", geocode.DefaultBaseURL),
			timeout: env.GetDuration("GEOCODE_TIMEOUT", geocode.DefaultTimeout),
		},
		chat: chat.Config{
			APIKey:  env.GetString("GEMINI_API_KEY", ""),
			Model:   env.GetString("GEMINI_MODEL", chat.DefaultModel),
			BaseURL: env.GetString("GEMINI_URL", chat.DefaultBaseURL),
			Timeout: env.GetDuration("GEMINI_TIMEOUT", 30*time.Second),
		},
		shareSalt:   env.GetString("SHARECODE_SALT", "ruchi-spots"),
		expoEnabled: env.GetBool("EXPO_ENABLED", false),
	}
}

var version = "1.0.0"

//	@title			Ruchi Spots API
//	@description	API for Ruchi Spots, discover and review the best food spots across Kerala.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	// .env is optional; the environment wins when both are set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Error loading .env file:", err)
	}

	cfg := loadConfig()

	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// storage
	var storage store.Storage
	var pool *pgxpool.Pool
	if cfg.db.addr != "" {
		pool, err = db.New(db.Config{
			Addr:         cfg.db.addr,
			MaxOpenConns: int32(cfg.db.maxOpenConns),
			MaxIdleTime:  cfg.db.maxIdleTime,
		})
		if err != nil {
			logger.Fatal(err)
		}
		defer pool.Close()
		logger.Info("database connection pool established")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = store.Migrate(ctx, pool)
		cancel()
		if err != nil {
			logger.Fatal(err)
		}

		storage = store.NewPostgresStorage(pool)
	} else {
		logger.Warn("DB_ADDR not set, using in-memory storage; data lasts only as long as the process")
		storage = store.NewMemoryStorage()
	}

	shareCodes, err := sharecode.New(cfg.shareSalt)
	if err != nil {
		logger.Fatal(err)
	}

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// Authenticator
	jwtAuthenticator := auth.NewJWTAuthenticator(auth.Config{
		Secret:          cfg.auth.token.secret,
		RefreshSecret:   cfg.auth.token.refreshSecret,
		Issuer:          cfg.auth.token.iss,
		AccessTokenExp:  cfg.auth.token.accessTokenExp,
		RefreshTokenExp: cfg.auth.token.refreshTokenExp,
	})

	app := &application{
		config:        cfg,
		logger:        logger,
		store:         storage,
		authenticator: jwtAuthenticator,
		rateLimiter:   rateLimiter,
		geocoder:      geocode.NewClient(cfg.geocode.url, cfg.geocode.timeout),
		assistant:     chat.NewClient(cfg.chat),
		shareCodes:    shareCodes,
	}

	if cfg.mail.smtp.Host != "" {
		smtp, err := mailer.NewSMTPMailer(cfg.mail.smtp)
		if err != nil {
			logger.Fatal(err)
		}
		app.mailer = smtp
	}

	if cfg.expoEnabled {
		app.push = notifications.NewExpoAdapter(exponent.NewClient())
	}

	if !app.assistant.Configured() {
		logger.Warn("GEMINI_API_KEY not set, chat assistant disabled")
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	if pool != nil {
		expvar.Publish("database", expvar.Func(func() any {
			return pool.Stat().TotalConns()
		}))
	}
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
