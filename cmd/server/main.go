package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Aben-G/E-commerce-main/internal/config"
	"github.com/Aben-G/E-commerce-main/internal/es"
	"github.com/Aben-G/E-commerce-main/internal/handlers"
	"github.com/Aben-G/E-commerce-main/internal/logging"
	authmw "github.com/Aben-G/E-commerce-main/internal/middleware/auth"
	loggingmw "github.com/Aben-G/E-commerce-main/internal/middleware/logging"
	"github.com/Aben-G/E-commerce-main/internal/mykafka"
	"github.com/Aben-G/E-commerce-main/internal/service/dashboard"
	"github.com/Aben-G/E-commerce-main/internal/service/token"
	httpserver "github.com/Aben-G/E-commerce-main/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	tokens := &token.TokenService{JWTSecret: jwtSecret}

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod, err = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
		if err != nil {
			log.Fatal(err)
		}
	}

	var esClient *elasticsearch.Client
	if configuration.ES_URL != "" {
		esClient, err = es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:               db,
		Gate:             &authmw.Gate{Tokens: tokens},
		AuthHandler:      &handlers.AuthHandler{DB: db, Tokens: tokens, Producer: prod},
		ProductHandler:   &handlers.ProductHandler{DB: db, Producer: prod, ES: esClient, Index: "product"},
		UserHandler:      &handlers.UserHandler{DB: db, Producer: prod},
		UploadHandler:    &handlers.UploadHandler{Dir: configuration.UPLOAD_DIR},
		DashboardHandler: &handlers.DashboardHandler{Dashboard: &dashboard.Service{DB: db}},
		SearchHandler:    &handlers.SearchHandler{ES: esClient, Index: "product"},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
