// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/shield-chat/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side cryptography for room chats. It knows
// nothing about the network, the store, or sessions; its only job is to turn
// a room password into a key and to seal/open single message bodies.
//
// Scheme:
//
//	key      = DeriveRoomKey(password, roomID)      (once per room context)
//	envelope = EncryptMessage(plaintext, key)       (per outgoing message)
//	text     = DecryptMessage(envelope, key)        (per stored message)
//
// The key is derived deterministically, so any client holding the same
// password and room id reproduces it. It exists only in client memory and is
// never transmitted or stored.
type KeyChainService interface {
	// DeriveRoomKey derives a 256-bit AES key from the room password using
	// PBKDF2-SHA256 with the room id as salt. Using the room id as salt
	// binds ciphertexts to their room: the same password in two rooms
	// yields two unrelated keys.
	DeriveRoomKey(password, roomID string) []byte

	// EncryptMessage seals one plaintext message body under key with
	// AES-256-GCM and a fresh random 12-byte nonce. Returns an error only
	// on primitive failure (bad key length, exhausted entropy) — these are
	// unexpected and fatal to the operation.
	EncryptMessage(plaintext string, key []byte) (models.CipherEnvelope, error)

	// DecryptMessage opens an envelope under key. An authentication-tag
	// mismatch (wrong key, corrupted data) returns a wrapped
	// [ErrDecryptFailed]; callers must treat it as an expected display
	// state, not a failure of the conversation.
	DecryptMessage(envelope models.CipherEnvelope, key []byte) (string, error)
}
