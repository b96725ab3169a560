package rtc

import (
	"context"
	"time"

	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
)

// AccessClaims is what the service asserts about one participant in one
// room. A Signer turns it into a signed, time-bounded credential.
type AccessClaims struct {
	Identity string
	Name     string
	Metadata string // JSON, embedded opaquely in the token
	Grant    *auth.VideoGrant
	ValidFor time.Duration // zero means the signer's default
}

// Signer produces signed access credentials. The service supplies claims;
// implementations own the signing algorithm and key material.
type Signer interface {
	Sign(claims AccessClaims) (string, error)
}

// RoomAPI is the subset of the LiveKit room service this product calls.
// *lksdk.RoomServiceClient satisfies it.
type RoomAPI interface {
	CreateRoom(ctx context.Context, req *livekit.CreateRoomRequest) (*livekit.Room, error)
	ListRooms(ctx context.Context, req *livekit.ListRoomsRequest) (*livekit.ListRoomsResponse, error)
	ListParticipants(ctx context.Context, req *livekit.ListParticipantsRequest) (*livekit.ListParticipantsResponse, error)
	DeleteRoom(ctx context.Context, req *livekit.DeleteRoomRequest) (*livekit.DeleteRoomResponse, error)
}
