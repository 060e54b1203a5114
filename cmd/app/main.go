package main

import (
	"fmt"
	"os"
	"time"

	"foodorder/cmd"
	"foodorder/internal/adapters/out/postgres/menurepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/rabbitmq"
	"foodorder/internal/core/ports"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	redisClient := connectRedis(configs, logger)
	publisher := connectRabbitMQ(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, publisher, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RedisURL:    goDotEnvVariable("REDIS_URL"),
		RabbitMQURL: goDotEnvVariable("RABBITMQ_URL"),
		CartExpiry:  cartExpiry(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func cartExpiry() time.Duration {
	raw := goDotEnvVariable("CART_EXPIRY")
	if raw == "" {
		return 30 * time.Minute
	}

	expiry, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid CART_EXPIRY value %q: %v", raw, err)
	}
	return expiry
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// connectRedis is optional wiring: without REDIS_URL the app falls back to
// the in-memory cart store.
func connectRedis(configs cmd.Config, logger *slog.Logger) *redis.Client {
	if configs.RedisURL == "" {
		logger.Info("REDIS_URL not set, using in-memory cart store")
		return nil
	}

	opts, err := redis.ParseURL(configs.RedisURL)
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}
	return redis.NewClient(opts)
}

// connectRabbitMQ is optional wiring: without RABBITMQ_URL order events are
// simply not published.
func connectRabbitMQ(configs cmd.Config, logger *slog.Logger) ports.OrderEventPublisher {
	if configs.RabbitMQURL == "" {
		logger.Info("RABBITMQ_URL not set, order events disabled")
		return nil
	}

	conn, err := amqp.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	publisher, err := rabbitmq.NewPublisher(conn)
	if err != nil {
		log.Fatalf("Failed to create event publisher: %v", err)
	}
	return publisher
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e, app.CreateSessionMiddleware())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
