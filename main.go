package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/freelancer-robiul/study-mate-b12-a10-server/config"
	"github.com/freelancer-robiul/study-mate-b12-a10-server/handlers"
	"github.com/freelancer-robiul/study-mate-b12-a10-server/routes"
	"github.com/freelancer-robiul/study-mate-b12-a10-server/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.ConnectDB(connectCtx)
	connectCancel()
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}

	cache := utils.NewCache()

	e := echo.New()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.RegisterRoutes(e, db, cache)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server stopped: %v", err)
		}
	}()
	log.Printf("Server app listening on port %s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	// close the store connection; in-flight requests are not drained
	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	if err := db.Close(closeCtx); err != nil {
		log.Printf("MongoDB disconnect failed: %v", err)
	}
}
