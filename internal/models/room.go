package models

// InterviewRoomMetadata is serialized onto the LiveKit room at creation
// time. LiveKit stores it as an opaque string and hands it back on listing.
type InterviewRoomMetadata struct {
	InterviewType   string `json:"interviewType"`
	CandidateName   string `json:"candidateName"`
	CreatedAt       string `json:"createdAt"` // RFC 3339
	EnableRecording bool   `json:"enableRecording"`
}

// CreatedRoom echoes an interview-creation request together with the
// backend-assigned creation time (unix seconds).
type CreatedRoom struct {
	RoomName        string `json:"roomName"`
	InterviewType   string `json:"interviewType"`
	CandidateName   string `json:"candidateName"`
	Duration        int    `json:"duration"`
	EnableRecording bool   `json:"enableRecording"`
	CreatedAt       int64  `json:"createdAt"`
}

type RoomSummary struct {
	Name            string         `json:"name"`
	Sid             string         `json:"sid"`
	NumParticipants uint32         `json:"numParticipants"`
	CreationTime    int64          `json:"creationTime"`
	Metadata        map[string]any `json:"metadata"`
}

type RoomParticipant struct {
	Identity string         `json:"identity"`
	Name     string         `json:"name"`
	Metadata map[string]any `json:"metadata"`
	JoinedAt int64          `json:"joinedAt"`
}
