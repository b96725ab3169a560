package config

import (
	"errors"
	"os"

	lksdk "github.com/livekit/server-sdk-go/v2"
)

type LiveKitConfig struct {
	URL       string
	APIKey    string
	APISecret string
}

var LiveKit LiveKitConfig

// InitLiveKit loads the LiveKit endpoint and API key pair from the
// environment. All three values are required; without them no credential
// can be signed and no room call can be made, so startup should abort.
func InitLiveKit() error {
	cfg := LiveKitConfig{
		URL:       os.Getenv("LIVEKIT_URL"),
		APIKey:    os.Getenv("LIVEKIT_API_KEY"),
		APISecret: os.Getenv("LIVEKIT_API_SECRET"),
	}
	if cfg.URL == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return errors.New("LIVEKIT_URL, LIVEKIT_API_KEY and LIVEKIT_API_SECRET environment variables must be set")
	}
	LiveKit = cfg
	return nil
}

// NewRoomServiceClient builds the room service client every request handler
// shares. Construct it once at startup, after InitLiveKit; the client is
// safe for concurrent use and holds no per-request state.
func NewRoomServiceClient() *lksdk.RoomServiceClient {
	return lksdk.NewRoomServiceClient(LiveKit.URL, LiveKit.APIKey, LiveKit.APISecret)
}
