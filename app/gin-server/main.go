package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/xtrius/ultimate-interviewer/config"
	"github.com/xtrius/ultimate-interviewer/internal/api/handlers"
	"github.com/xtrius/ultimate-interviewer/internal/api/middleware"
	"github.com/xtrius/ultimate-interviewer/internal/api/routes"
	"github.com/xtrius/ultimate-interviewer/internal/logger"
	"github.com/xtrius/ultimate-interviewer/internal/providers/rtc"
	"github.com/xtrius/ultimate-interviewer/internal/services"
)

func main() {
	_ = godotenv.Load()

	if err := config.InitLiveKit(); err != nil {
		log.Fatalf("LiveKit init error: %v", err)
	}

	l := logger.New()

	roomClient := config.NewRoomServiceClient()
	signer := rtc.NewKeySigner(config.LiveKit.APIKey, config.LiveKit.APISecret)

	tokenSvc := services.NewTokenService(signer, config.LiveKit.URL)
	roomSvc := services.NewRoomService(roomClient)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Health: handlers.NewHealthHandler(config.LiveKit.URL),
		Token:  handlers.NewTokenHandler(tokenSvc, l),
		Room:   handlers.NewRoomHandler(roomSvc, l),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	l.WithField("livekit_url", config.LiveKit.URL).Info("ultimate interviewer control plane starting")
	l.WithField("port", port).Info("listening")

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
