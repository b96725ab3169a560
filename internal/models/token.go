package models

// AccessCredential is an issued room credential plus everything a client
// needs to connect: the LiveKit endpoint and the identity the token was
// bound to.
type AccessCredential struct {
	Token           string `json:"token"`
	URL             string `json:"url"`
	RoomName        string `json:"roomName"`
	Identity        string `json:"identity"`
	ParticipantName string `json:"participantName"`
	ParticipantType string `json:"participantType"`
	Persona         string `json:"persona"`
}
