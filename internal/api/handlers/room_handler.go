package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/xtrius/ultimate-interviewer/internal/models"
	"github.com/xtrius/ultimate-interviewer/internal/services"
	"github.com/xtrius/ultimate-interviewer/internal/utils"
)

type RoomHandler struct {
	svc services.RoomService
	log *logrus.Logger
}

func NewRoomHandler(svc services.RoomService, log *logrus.Logger) *RoomHandler {
	return &RoomHandler{svc: svc, log: log}
}

type CreateInterviewRequest struct {
	InterviewType   string `json:"interviewType"`
	CandidateName   string `json:"candidateName"`
	Duration        int    `json:"duration"`        // seconds
	EnableRecording *bool  `json:"enableRecording"` // defaults to true
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "RoomHandler.Create", "invalid request body", err))
		return
	}

	room, err := h.svc.CreateInterview(c.Request.Context(), services.CreateInterviewRequest{
		InterviewType:   req.InterviewType,
		CandidateName:   req.CandidateName,
		Duration:        req.Duration,
		EnableRecording: req.EnableRecording,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"room":      room.RoomName,
		"candidate": room.CandidateName,
		"type":      room.InterviewType,
	}).Info("interview room created")

	c.JSON(http.StatusOK, room)
}

type ListRoomsResponse struct {
	Rooms []models.RoomSummary `json:"rooms"`
}

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.svc.ListRooms(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListRoomsResponse{Rooms: rooms})
}

type RoomDetailResponse struct {
	RoomName     string                   `json:"roomName"`
	Participants []models.RoomParticipant `json:"participants"`
}

func (h *RoomHandler) Get(c *gin.Context) {
	roomName := c.Param("roomName")

	participants, err := h.svc.GetRoom(c.Request.Context(), roomName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, RoomDetailResponse{
		RoomName:     roomName,
		Participants: participants,
	})
}

type DeleteRoomResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *RoomHandler) Delete(c *gin.Context) {
	roomName := c.Param("roomName")

	if err := h.svc.DeleteRoom(c.Request.Context(), roomName); err != nil {
		writeError(c, err)
		return
	}

	h.log.WithField("room", roomName).Info("interview room deleted")

	c.JSON(http.StatusOK, DeleteRoomResponse{
		Success: true,
		Message: fmt.Sprintf("Interview room %s has been ended", roomName),
	})
}
