package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "Ultimate Interviewer"

type HealthHandler struct {
	livekitURL string
}

func NewHealthHandler(livekitURL string) *HealthHandler {
	return &HealthHandler{livekitURL: livekitURL}
}

type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	LiveKitConnected bool   `json:"livekit_connected"`
	Timestamp        string `json:"timestamp"`
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:           "ok",
		Service:          serviceName,
		LiveKitConnected: h.livekitURL != "",
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	})
}
