package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"commerce/cmd"
	httpin "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/kafka"
	"commerce/internal/adapters/out/postgres/notificationrepo"
	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/adapters/out/postgres/permissionrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)

	sender, err := kafka.NewSender(strings.Split(configs.KafkaHost, ","), configs.KafkaNotificationTopic)
	if err != nil {
		log.Fatalf("Error connecting Kafka producer: %v", err)
	}
	defer sender.Close()

	app, err := cmd.NewCompositionRoot(configs, gormDB, sender, logger)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationTopic: goDotEnvVariable("KAFKA_NOTIFICATION_TOPIC"),
		OrderNumberPrefix:      goDotEnvVariable("ORDER_NUMBER_PREFIX"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&notificationrepo.NotificationRuleDTO{},
		&permissionrepo.ActorCapabilityDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrderTotalsQueryHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
		app.CreateGate(),
		app.CreateOrderRepository(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
