// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/shield-chat/models"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// PBKDF2 tuning parameters. Stored in the struct so tests can lower the
	// iteration count without touching production defaults.
	iterations int
	keyLen     int
}

// NewKeyChainService constructs a [KeyChainService] with the parameters the
// web clients of the same store use, so both sides derive identical keys:
//   - PRF:        SHA-256
//   - iterations: 100 000
//   - key length: 32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		iterations: 100_000,
		keyLen:     32, // 256 bits
	}
}

// DeriveRoomKey implements [KeyChainService]. The salt is the raw room id,
// not a random value: determinism across clients is the point, every member
// of the room must arrive at the same key from the same password.
func (k *keyChainService) DeriveRoomKey(password, roomID string) []byte {
	return pbkdf2.Key([]byte(password), []byte(roomID), k.iterations, k.keyLen, sha256.New)
}

// EncryptMessage implements [KeyChainService]. It seals plaintext with
// AES-256-GCM under a fresh random 12-byte nonce and returns nonce and
// ciphertext (tag appended) as a [models.CipherEnvelope]. Returns an error
// if cipher construction or the random nonce read fails.
func (k *keyChainService) EncryptMessage(plaintext string, key []byte) (models.CipherEnvelope, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.CipherEnvelope{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.CipherEnvelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	return models.CipherEnvelope{
		IV:   nonce,
		Data: gcm.Seal(nil, nonce, []byte(plaintext), nil),
	}, nil
}

// DecryptMessage implements [KeyChainService]. It opens the envelope under
// key and verifies the GCM authentication tag. A tag mismatch almost always
// means the user entered a different room password than the sender; that
// outcome is reported as a wrapped [ErrDecryptFailed], never as a panic.
func (k *keyChainService) DecryptMessage(envelope models.CipherEnvelope, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	if len(envelope.IV) != gcm.NonceSize() {
		return "", fmt.Errorf("%w: bad nonce length %d", ErrDecryptFailed, len(envelope.IV))
	}

	plaintext, err := gcm.Open(nil, envelope.IV, envelope.Data, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block) // 12-byte nonces
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
