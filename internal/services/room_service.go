package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/livekit/protocol/livekit"

	"github.com/xtrius/ultimate-interviewer/internal/models"
	"github.com/xtrius/ultimate-interviewer/internal/providers/rtc"
	"github.com/xtrius/ultimate-interviewer/internal/utils"
)

const (
	// defaultDurationSeconds is echoed to clients when no duration is
	// requested. It is advisory only; nothing here ends a room when it
	// elapses.
	defaultDurationSeconds = 1800

	// roomEmptyTimeoutSeconds lets LiveKit reclaim a room that has sat
	// empty for five minutes.
	roomEmptyTimeoutSeconds = 300

	roomMaxParticipants = 10
)

type RoomService interface {
	CreateInterview(ctx context.Context, req CreateInterviewRequest) (*models.CreatedRoom, error)
	ListRooms(ctx context.Context) ([]models.RoomSummary, error)
	GetRoom(ctx context.Context, roomName string) ([]models.RoomParticipant, error)
	DeleteRoom(ctx context.Context, roomName string) error
}

type CreateInterviewRequest struct {
	InterviewType   string
	CandidateName   string
	Duration        int   // seconds, defaults to defaultDurationSeconds
	EnableRecording *bool // defaults to true
}

type roomService struct {
	rooms rtc.RoomAPI
	now   func() time.Time
}

func NewRoomService(rooms rtc.RoomAPI) RoomService {
	return &roomService{rooms: rooms, now: time.Now}
}

// RoomNameAt derives the room identifier for an interview created at the
// given instant: interview_{type}_{epochMillis}. Two creations of the same
// interview type within one millisecond would collide; interview creation
// is human-paced, so the window is accepted rather than closed with a
// random suffix that clients parsing room names would trip over.
func RoomNameAt(interviewType string, at time.Time) string {
	return fmt.Sprintf("interview_%s_%d", interviewType, at.UnixMilli())
}

func (s *roomService) CreateInterview(ctx context.Context, req CreateInterviewRequest) (*models.CreatedRoom, error) {
	const op = "RoomService.CreateInterview"

	if req.InterviewType == "" || req.CandidateName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "interviewType and candidateName are required", nil)
	}

	duration := req.Duration
	if duration <= 0 {
		duration = defaultDurationSeconds
	}
	enableRecording := true
	if req.EnableRecording != nil {
		enableRecording = *req.EnableRecording
	}

	now := s.now().UTC()
	name := RoomNameAt(req.InterviewType, now)

	meta, err := json.Marshal(models.InterviewRoomMetadata{
		InterviewType:   req.InterviewType,
		CandidateName:   req.CandidateName,
		CreatedAt:       now.Format(time.RFC3339),
		EnableRecording: enableRecording,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode room metadata", err)
	}

	room, err := s.rooms.CreateRoom(ctx, &livekit.CreateRoomRequest{
		Name:            name,
		EmptyTimeout:    roomEmptyTimeoutSeconds,
		MaxParticipants: roomMaxParticipants,
		Metadata:        string(meta),
	})
	if err != nil {
		return nil, utils.FromBackend(op, err)
	}

	return &models.CreatedRoom{
		RoomName:        room.Name,
		InterviewType:   req.InterviewType,
		CandidateName:   req.CandidateName,
		Duration:        duration,
		EnableRecording: enableRecording,
		CreatedAt:       room.CreationTime,
	}, nil
}

func (s *roomService) ListRooms(ctx context.Context) ([]models.RoomSummary, error) {
	const op = "RoomService.ListRooms"

	resp, err := s.rooms.ListRooms(ctx, &livekit.ListRoomsRequest{})
	if err != nil {
		return nil, utils.FromBackend(op, err)
	}

	out := make([]models.RoomSummary, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		out = append(out, models.RoomSummary{
			Name:            r.Name,
			Sid:             r.Sid,
			NumParticipants: r.NumParticipants,
			CreationTime:    r.CreationTime,
			Metadata:        parseMetadata(r.Metadata),
		})
	}
	return out, nil
}

func (s *roomService) GetRoom(ctx context.Context, roomName string) ([]models.RoomParticipant, error) {
	const op = "RoomService.GetRoom"

	if roomName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "roomName is required", nil)
	}

	resp, err := s.rooms.ListParticipants(ctx, &livekit.ListParticipantsRequest{Room: roomName})
	if err != nil {
		return nil, utils.FromBackend(op, err)
	}

	out := make([]models.RoomParticipant, 0, len(resp.Participants))
	for _, p := range resp.Participants {
		out = append(out, models.RoomParticipant{
			Identity: p.Identity,
			Name:     p.Name,
			Metadata: parseMetadata(p.Metadata),
			JoinedAt: p.JoinedAt,
		})
	}
	return out, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomName string) error {
	const op = "RoomService.DeleteRoom"

	if roomName == "" {
		return utils.E(utils.CodeInvalidArgument, op, "roomName is required", nil)
	}

	_, err := s.rooms.DeleteRoom(ctx, &livekit.DeleteRoomRequest{Room: roomName})
	if err != nil {
		wrapped := utils.FromBackend(op, err)
		// Deleting an already-absent room is a success: the caller asked
		// for the room to be gone, and it is.
		if utils.IsCode(wrapped, utils.CodeNotFound) {
			return nil
		}
		return wrapped
	}
	return nil
}

// parseMetadata decodes the metadata blob LiveKit stores on rooms and
// participants. Anything unparseable degrades to an empty map so one bad
// entry cannot fail a whole listing.
func parseMetadata(raw string) map[string]any {
	md := map[string]any{}
	if raw == "" {
		return md
	}
	if err := json.Unmarshal([]byte(raw), &md); err != nil {
		return map[string]any{}
	}
	return md
}
