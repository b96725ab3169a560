package services_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/xtrius/ultimate-interviewer/internal/providers/rtc"
	"github.com/xtrius/ultimate-interviewer/internal/services"
	"github.com/xtrius/ultimate-interviewer/internal/utils"
)

type fakeSigner struct {
	calls int
	last  rtc.AccessClaims
	err   error
}

func (f *fakeSigner) Sign(claims rtc.AccessClaims) (string, error) {
	f.calls++
	f.last = claims
	if f.err != nil {
		return "", f.err
	}
	return "signed." + claims.Identity, nil
}

func TestIssueToken(t *testing.T) {
	t.Run("binds grant to the requested room", func(t *testing.T) {
		signer := &fakeSigner{}
		svc := services.NewTokenService(signer, "wss://lk.example.com")

		cred, err := svc.IssueToken(services.IssueTokenRequest{
			RoomName:        "interview_swe_1700000000000",
			ParticipantName: "Jane Doe",
			ParticipantType: services.RoleCandidate,
		})
		require.NoError(t, err)

		grant := signer.last.Grant
		require.Equal(t, "interview_swe_1700000000000", grant.Room)
		require.True(t, grant.RoomJoin)
		require.NotNil(t, grant.CanSubscribe)
		require.True(t, *grant.CanSubscribe)
		require.NotNil(t, grant.CanPublishData)
		require.True(t, *grant.CanPublishData)
		require.NotNil(t, grant.CanUpdateOwnMetadata)
		require.True(t, *grant.CanUpdateOwnMetadata)

		require.Equal(t, "signed."+cred.Identity, cred.Token)
		require.Equal(t, "wss://lk.example.com", cred.URL)
		require.Equal(t, "Jane Doe", cred.ParticipantName)
	})

	t.Run("publish rights gated by role", func(t *testing.T) {
		cases := []struct {
			role       string
			canPublish bool
		}{
			{services.RoleCandidate, true},
			{services.RoleAgent, true},
			{services.RoleInterviewer, false},
			{"observer", false},
			{"", true}, // empty role defaults to candidate
		}
		for _, tc := range cases {
			t.Run("role "+tc.role, func(t *testing.T) {
				signer := &fakeSigner{}
				svc := services.NewTokenService(signer, "wss://lk.example.com")

				cred, err := svc.IssueToken(services.IssueTokenRequest{
					RoomName:        "room-1",
					ParticipantName: "p",
					ParticipantType: tc.role,
				})
				require.NoError(t, err)
				require.NotNil(t, signer.last.Grant.CanPublish)
				require.Equal(t, tc.canPublish, *signer.last.Grant.CanPublish)

				wantRole := tc.role
				if wantRole == "" {
					wantRole = services.RoleCandidate
				}
				require.Equal(t, wantRole, cred.ParticipantType)
				require.True(t, strings.HasPrefix(cred.Identity, wantRole+"_"))
			})
		}
	})

	t.Run("missing fields fail before any signing", func(t *testing.T) {
		signer := &fakeSigner{}
		svc := services.NewTokenService(signer, "wss://lk.example.com")

		_, err := svc.IssueToken(services.IssueTokenRequest{ParticipantName: "Jane Doe"})
		require.Error(t, err)
		require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
		require.Contains(t, err.Error(), "roomName and participantName are required")

		_, err = svc.IssueToken(services.IssueTokenRequest{RoomName: "room-1"})
		require.Error(t, err)
		require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

		require.Zero(t, signer.calls)
	})

	t.Run("identity is unique per call", func(t *testing.T) {
		signer := &fakeSigner{}
		svc := services.NewTokenService(signer, "wss://lk.example.com")

		seen := make(map[string]struct{}, 10000)
		for i := 0; i < 10000; i++ {
			cred, err := svc.IssueToken(services.IssueTokenRequest{
				RoomName:        "room-1",
				ParticipantName: "Jane Doe",
			})
			require.NoError(t, err)
			seen[cred.Identity] = struct{}{}
		}
		require.Len(t, seen, 10000)
	})

	t.Run("caller metadata overrides base fields", func(t *testing.T) {
		signer := &fakeSigner{}
		svc := services.NewTokenService(signer, "wss://lk.example.com")

		_, err := svc.IssueToken(services.IssueTokenRequest{
			RoomName:        "room-1",
			ParticipantName: "A",
			ParticipantType: services.RoleCandidate,
			Metadata: map[string]any{
				"persona": "interviewer_v2",
				"track":   "backend",
			},
		})
		require.NoError(t, err)

		var md map[string]any
		require.NoError(t, json.Unmarshal([]byte(signer.last.Metadata), &md))
		require.Equal(t, "interviewer_v2", md["persona"])
		require.Equal(t, "backend", md["track"])
		require.Equal(t, "A", md["name"])
		require.Equal(t, "candidate", md["type"])
		require.NotEmpty(t, md["joinedAt"])
	})

	t.Run("persona defaults", func(t *testing.T) {
		signer := &fakeSigner{}
		svc := services.NewTokenService(signer, "wss://lk.example.com")

		cred, err := svc.IssueToken(services.IssueTokenRequest{
			RoomName:        "room-1",
			ParticipantName: "A",
		})
		require.NoError(t, err)
		require.Equal(t, "default", cred.Persona)
	})

	t.Run("signing failure surfaces the underlying message", func(t *testing.T) {
		signer := &fakeSigner{err: errors.New("backend unreachable")}
		svc := services.NewTokenService(signer, "wss://lk.example.com")

		_, err := svc.IssueToken(services.IssueTokenRequest{
			RoomName:        "room-1",
			ParticipantName: "A",
		})
		require.Error(t, err)
		require.True(t, utils.IsCode(err, utils.CodeInternal))
		require.Contains(t, err.Error(), "backend unreachable")
	})
}

func TestIssueTokenJWTClaims(t *testing.T) {
	const (
		apiKey    = "LKAPIinterviewtest"
		apiSecret = "interview-test-secret-32-characters"
	)

	signer := rtc.NewKeySigner(apiKey, apiSecret)
	svc := services.NewTokenService(signer, "wss://lk.example.com")

	cred, err := svc.IssueToken(services.IssueTokenRequest{
		RoomName:        "interview_swe_1700000000000",
		ParticipantName: "Jane Doe",
		ParticipantType: services.RoleInterviewer,
		Persona:         "university_admissions",
	})
	require.NoError(t, err)

	parsed, err := jwt.Parse(cred.Token, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return []byte(apiSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, apiKey, claims["iss"])
	require.Equal(t, "Jane Doe", claims["name"])

	video, ok := claims["video"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "interview_swe_1700000000000", video["room"])
	require.Equal(t, true, video["roomJoin"])
	require.Equal(t, false, video["canPublish"])
	require.Equal(t, true, video["canSubscribe"])
	require.Equal(t, true, video["canPublishData"])
	require.Equal(t, true, video["canUpdateOwnMetadata"])

	rawMD, ok := claims["metadata"].(string)
	require.True(t, ok)
	var md map[string]any
	require.NoError(t, json.Unmarshal([]byte(rawMD), &md))
	require.Equal(t, "university_admissions", md["persona"])
	require.Equal(t, "interviewer", md["type"])
}
