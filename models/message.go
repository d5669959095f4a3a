package models

import "time"

// Message is a single chat message document as persisted in the hosted
// store. A record is write-once: after creation nothing but CreatedAt
// ever changes (it resolves from pending to a server-assigned value),
// and records are never edited or deleted by this client.
type Message struct {
	// Id is the store-assigned document identifier.
	// Empty until the store has committed the record.
	Id string `json:"id,omitempty"`

	// ClientId is a client-assigned UUID set before the record is sent,
	// used to correlate a pending write with the committed document.
	ClientId string `json:"clientId"`

	// Room is the conversation channel the message belongs to.
	// It is the sole partitioning key for message visibility.
	Room string `json:"room"`

	// Text is the stored message body: either plaintext or a cipher
	// envelope serialized as a JSON string (see [CipherEnvelope]).
	Text string `json:"text"`

	// User is the author's display name at the time of sending.
	User string `json:"user"`

	// UserId is the stable account identifier of the author.
	UserId string `json:"userId"`

	// CreatedAt is the server-assigned creation timestamp.
	// Nil while the write is still pending on the server.
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// DecryptionState classifies how a stored message body was turned into
// display text during reconciliation.
type DecryptionState int

const (
	// Plain means the stored text was not cipher-shaped and is shown verbatim.
	Plain DecryptionState = iota

	// DecryptedOk means the envelope was decrypted with the active room key.
	DecryptedOk

	// DecryptFailedWrongKey means the envelope did not authenticate under
	// the active room key (wrong password or corrupted data).
	DecryptFailedWrongKey

	// DecryptFailedNoKey means the message is cipher-shaped but the session
	// has no room key, so no decryption was attempted.
	DecryptFailedNoKey
)

// String implements [fmt.Stringer] for logging and test output.
func (s DecryptionState) String() string {
	switch s {
	case Plain:
		return "plain"
	case DecryptedOk:
		return "decrypted"
	case DecryptFailedWrongKey:
		return "wrong_key"
	case DecryptFailedNoKey:
		return "no_key"
	default:
		return "unknown"
	}
}

// ViewMessage is the derived, presentation-ready form of one [Message].
// It is recomputed wholesale on every snapshot and never persisted.
type ViewMessage struct {
	// Id is the identifier of the underlying stored message.
	Id string

	// DisplayText is the text to render: decrypted plaintext, the stored
	// text verbatim, or a fixed sentinel for failed decryptions.
	DisplayText string

	// User is the author's display name.
	User string

	// CreatedAt mirrors the stored timestamp; nil means pending.
	CreatedAt *time.Time

	// State records how DisplayText was produced.
	State DecryptionState

	// Own reports whether the message was sent by the current user.
	Own bool
}
