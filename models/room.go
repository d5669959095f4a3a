package models

// RoomContext identifies the conversation a chat session is bound to.
// It is replaced wholesale whenever the user changes room or password,
// which triggers key re-derivation and a fresh store subscription.
type RoomContext struct {
	// Room is the room name. Must be non-empty to enter a session.
	Room string

	// Password is the optional shared room password. Empty means the
	// session operates in plaintext mode with no derived key.
	Password string
}
