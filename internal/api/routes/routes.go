package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/xtrius/ultimate-interviewer/internal/api/handlers"
)

type Deps struct {
	Health *handlers.HealthHandler
	Token  *handlers.TokenHandler
	Room   *handlers.RoomHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	api.GET("/health", d.Health.Health)

	api.POST("/token", d.Token.Issue)

	api.POST("/interview/create", d.Room.Create)
	api.GET("/rooms", d.Room.List)
	api.GET("/rooms/:roomName", d.Room.Get)
	api.DELETE("/interview/:roomName", d.Room.Delete)
}
