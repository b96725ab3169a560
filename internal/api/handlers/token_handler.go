package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/xtrius/ultimate-interviewer/internal/services"
	"github.com/xtrius/ultimate-interviewer/internal/utils"
)

type TokenHandler struct {
	svc services.TokenService
	log *logrus.Logger
}

func NewTokenHandler(svc services.TokenService, log *logrus.Logger) *TokenHandler {
	return &TokenHandler{svc: svc, log: log}
}

type TokenRequest struct {
	RoomName        string         `json:"roomName"`
	ParticipantName string         `json:"participantName"`
	ParticipantType string         `json:"participantType"` // candidate|interviewer|agent
	Persona         string         `json:"persona"`
	Metadata        map[string]any `json:"metadata"`
}

func (h *TokenHandler) Issue(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "TokenHandler.Issue", "invalid request body", err))
		return
	}

	cred, err := h.svc.IssueToken(services.IssueTokenRequest{
		RoomName:        req.RoomName,
		ParticipantName: req.ParticipantName,
		ParticipantType: req.ParticipantType,
		Persona:         req.Persona,
		Metadata:        req.Metadata,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"room":        cred.RoomName,
		"participant": cred.ParticipantName,
		"type":        cred.ParticipantType,
	}).Info("token issued")

	c.JSON(http.StatusOK, cred)
}
