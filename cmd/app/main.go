package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/francomiret/orders-tracker-app/cmd"
	"github.com/francomiret/orders-tracker-app/internal/adapters/in/http"
	"github.com/francomiret/orders-tracker-app/internal/adapters/in/kafka"
	"github.com/francomiret/orders-tracker-app/internal/adapters/out/postgres/alertrepo"
	"github.com/francomiret/orders-tracker-app/internal/adapters/out/postgres/notificationrepo"
	"github.com/francomiret/orders-tracker-app/internal/adapters/out/postgres/orderrepo"
	"github.com/francomiret/orders-tracker-app/internal/adapters/out/postgres/rulerepo"
	"github.com/francomiret/orders-tracker-app/internal/adapters/out/rabbitmq"
	"github.com/francomiret/orders-tracker-app/internal/core/ports"
	"github.com/francomiret/orders-tracker-app/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)

	var pushSender ports.PushSender
	if configs.RabbitMQURL == "" {
		slog.Warn("RabbitMQ URL not configured, push notifications disabled")
	} else {
		sender, err := rabbitmq.NewAmqpPushSender(configs.RabbitMQURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer func() { _ = sender.Close() }()
		pushSender = sender
	}

	app := cmd.NewCompositionRoot(configs, gormDB, pushSender)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startKafkaConsumer(ctx, &app, configs, logger)

	jobManager := jobs.NewJobManager(
		app.CreateExecuteAlertRulesCommandHandler(),
		configs.RuleEvaluationCron,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:    goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaOrderStatusTopic: goDotEnvVariable("KAFKA_ORDER_STATUS_TOPIC"),
		RabbitMQURL:           goDotEnvVariable("RABBITMQ_URL"),
		BusinessTimezone:      goDotEnvVariable("BUSINESS_TIMEZONE"),
		RuleEvaluationCron:    goDotEnvVariable("RULE_EVALUATION_CRON"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}
	if err = sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize gorm: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.EventDTO{},
		&alertrepo.AlertDTO{},
		&rulerepo.RuleDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startKafkaConsumer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	if configs.KafkaHost == "" {
		slog.Warn("Kafka host not configured, status change consumer disabled")
		return
	}

	changeStatusHandler := app.CreateChangeOrderStatusCommandHandler()
	consumer, err := kafka.NewOrderStatusConsumer(
		[]string{configs.KafkaHost},
		configs.KafkaConsumerGroup,
		configs.KafkaOrderStatusTopic,
		&changeStatusHandler,
	)
	if err != nil {
		log.Fatalf("Failed to create Kafka consumer: %v", err)
	}

	go func() {
		defer func() { _ = consumer.Close() }()
		if err := consumer.Run(ctx); err != nil {
			logger.Error("kafka consumer stopped", "error", err)
		}
	}()
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) {
	handlers := http.Handlers{
		CreateOrder:       app.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: app.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:       app.CreateDeleteOrderCommandHandler(),
		CreateAlertRule:   app.CreateCreateAlertRuleCommandHandler(),
		UpdateAlertRule:   app.CreateUpdateAlertRuleCommandHandler(),
		ToggleAlertRule:   app.CreateToggleAlertRuleCommandHandler(),
		DeleteAlertRule:   app.CreateDeleteAlertRuleCommandHandler(),
		ExecuteAlertRules: app.CreateExecuteAlertRulesCommandHandler(),
		CreateAlert:       app.CreateCreateAlertCommandHandler(),
		ResolveAlert:      app.CreateResolveAlertCommandHandler(),
		DeleteAlert:       app.CreateDeleteAlertCommandHandler(),
		MarkRead:          app.CreateMarkNotificationReadCommandHandler(),
		MarkAllRead:       app.CreateMarkAllNotificationsReadCommandHandler(),
		DeleteNotif:       app.CreateDeleteNotificationCommandHandler(),

		GetOrders:            app.CreateGetOrdersQueryHandler(),
		GetOrder:             app.CreateGetOrderQueryHandler(),
		GetStatusHistory:     app.CreateGetOrderStatusHistoryQueryHandler(),
		ValidateIntegrity:    app.CreateValidateOrderIntegrityQueryHandler(),
		GetAlerts:            app.CreateGetAlertsQueryHandler(),
		GetAlert:             app.CreateGetAlertQueryHandler(),
		GetAlertRules:        app.CreateGetAlertRulesQueryHandler(),
		GetAlertRule:         app.CreateGetAlertRuleQueryHandler(),
		GetAlertRuleStats:    app.CreateGetAlertRuleStatsQueryHandler(),
		GetNotifications:     app.CreateGetNotificationsQueryHandler(),
		GetNotificationStats: app.CreateGetNotificationStatsQueryHandler(),
	}

	e := echo.New()
	e.Use(http.MetricsMiddleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := http.NewServer(handlers)
	server.RegisterRoutes(e)

	go func() {
		<-ctx.Done()
		_ = e.Shutdown(context.Background())
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != nethttp.ErrServerClosed {
		e.Logger.Fatal(err)
	}
}
