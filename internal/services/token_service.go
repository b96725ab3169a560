package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/livekit/protocol/auth"

	"github.com/xtrius/ultimate-interviewer/internal/models"
	"github.com/xtrius/ultimate-interviewer/internal/providers/rtc"
	"github.com/xtrius/ultimate-interviewer/internal/utils"
)

const (
	RoleCandidate   = "candidate"
	RoleInterviewer = "interviewer"
	RoleAgent       = "agent"

	DefaultPersona = "default"

	// tokenValidity bounds every issued credential; clients reconnect with
	// a fresh token rather than refreshing an old one.
	tokenValidity = 6 * time.Hour
)

type TokenService interface {
	IssueToken(req IssueTokenRequest) (*models.AccessCredential, error)
}

type IssueTokenRequest struct {
	RoomName        string
	ParticipantName string
	ParticipantType string         // defaults to candidate
	Persona         string         // defaults to "default"
	Metadata        map[string]any // caller extras, merged over the base fields
}

type tokenService struct {
	signer rtc.Signer
	url    string
	now    func() time.Time
}

func NewTokenService(signer rtc.Signer, url string) TokenService {
	return &tokenService{signer: signer, url: url, now: time.Now}
}

func (s *tokenService) IssueToken(req IssueTokenRequest) (*models.AccessCredential, error) {
	const op = "TokenService.IssueToken"

	if req.RoomName == "" || req.ParticipantName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "roomName and participantName are required", nil)
	}

	role := req.ParticipantType
	if role == "" {
		role = RoleCandidate
	}
	persona := req.Persona
	if persona == "" {
		persona = DefaultPersona
	}

	identity, grant := issueIdentity(role)
	grant.Room = req.RoomName

	// Base fields first, caller extras on top: callers may override name,
	// type, persona, and joinedAt. Last write wins.
	md := map[string]any{
		"name":     req.ParticipantName,
		"type":     role,
		"persona":  persona,
		"joinedAt": s.now().UTC().Format(time.RFC3339),
	}
	for k, v := range req.Metadata {
		md[k] = v
	}
	raw, err := json.Marshal(md)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode participant metadata", err)
	}

	token, err := s.signer.Sign(rtc.AccessClaims{
		Identity: identity,
		Name:     req.ParticipantName,
		Metadata: string(raw),
		Grant:    grant,
		ValidFor: tokenValidity,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, err.Error(), err)
	}

	return &models.AccessCredential{
		Token:           token,
		URL:             s.url,
		RoomName:        req.RoomName,
		Identity:        identity,
		ParticipantName: req.ParticipantName,
		ParticipantType: role,
		Persona:         persona,
	}, nil
}

// issueIdentity derives a fresh identity and its capability grant from the
// participant role. Identities are never reused: the same person gets a new
// one on every token request, since LiveKit keys participant state within a
// room by identity.
func issueIdentity(role string) (string, *auth.VideoGrant) {
	identity := fmt.Sprintf("%s_%s", role, uuid.NewString())

	// Only the candidate and the interview agent publish media; an
	// interviewer, and any role we don't recognize, joins receive-only.
	// Subscribe, data, and metadata rights are unconditional.
	canPublish := role == RoleCandidate || role == RoleAgent

	grant := &auth.VideoGrant{RoomJoin: true}
	grant.SetCanPublish(canPublish)
	grant.SetCanSubscribe(true)
	grant.SetCanPublishData(true)
	grant.SetCanUpdateOwnMetadata(true)
	return identity, grant
}
