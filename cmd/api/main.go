package main

import (
	"expvar"
	"kassa/internal/payments"
	"kassa/internal/ratelimiter"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig(logger *zap.SugaredLogger) ratelimiter.Config {
	// Default values
	defaultRequests := 20
	defaultEnabled := true

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil && parsedVal > 0 {
			requestsPerTimeFrame = parsedVal
		} else {
			logger.Warnw("invalid RATELIMITER_REQUESTS_COUNT, using default", "value", val, "default", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			logger.Warnw("invalid RATE_LIMITER_ENABLED, using default", "value", val, "default", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder // This adds color to log levels (INFO, WARN, ERROR)

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

func getEnv(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return fallback
}

var version = "1.0.0"

//	@title			Kassa API
//	@description	Builds signed FreeKassa payment links for the site.

//	@contact.name	API Support

//	@BasePath					/v1
//	@securityDefinitions.basic	BasicAuth

func main() {
	logger, err := NewLogger()
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer logger.Sync()

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		logger.Warnw("no .env file loaded, using process environment", "error", err.Error())
	}

	cfg := config{
		addr:   getEnv("ADDR", ":8080"),
		env:    getEnv("ENV", "development"),
		apiURL: os.Getenv("EXTERNAL_URL"),
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
		rateLimiter: LoadRateLimiterConfig(logger),
		freekassa: freekassaConfig{
			baseURL: os.Getenv(payments.EnvBaseURL),
		},
	}

	credentials := payments.NewEnvCredentials(os.LookupEnv)
	if sc, err := credentials.Resolve(); err != nil {
		logger.Warnw("freekassa credentials unavailable, payment redirects will fail", "error", err.Error())
	} else if sc.Insecure {
		logger.Warnw("freekassa dev mode: using placeholder credentials, never enable in production", "signing_context", sc)
	} else {
		logger.Infow("freekassa credentials loaded", "signing_context", sc)
	}

	paymentManager := payments.NewPaymentManager()
	paymentManager.RegisterGateway(payments.ProviderFreeKassa, payments.NewFreeKassaAdapter(
		&loggedCredentials{next: credentials, logger: logger},
		cfg.freekassa.baseURL,
	))

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)
	defer rateLimiter.Stop()

	app := &application{
		config:      cfg,
		logger:      logger,
		payments:    paymentManager,
		rateLimiter: rateLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	if err := app.run(mux); err != nil {
		logger.Fatal(err)
	}
}
