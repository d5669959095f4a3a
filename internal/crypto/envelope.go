package crypto

import (
	"encoding/json"
	"strings"

	"github.com/MKhiriev/shield-chat/models"
)

// IsCipherShaped reports whether a stored message body looks like a
// serialized [models.CipherEnvelope]: the text starts with "{" and mentions
// an "iv" key. A leading space defeats the check on purpose — the web
// clients of the same store match on the very first character, and both
// sides must classify a body identically.
//
// This shape-sniffing is load-bearing: a plaintext message that happens to
// look like JSON with an "iv" field will be mis-classified as encrypted.
// Keep the check here, behind this one predicate, so a future envelope
// version tag only has to change a single place.
func IsCipherShaped(text string) bool {
	return strings.HasPrefix(text, "{") && strings.Contains(text, `"iv":`)
}

// ParseEnvelope decodes a stored message body into a [models.CipherEnvelope].
// Callers should gate it behind [IsCipherShaped].
func ParseEnvelope(text string) (models.CipherEnvelope, error) {
	var envelope models.CipherEnvelope
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return models.CipherEnvelope{}, err
	}
	return envelope, nil
}

// EncodeEnvelope serializes an envelope into the exact storage shape
// ({"iv":[...],"data":[...]}).
func EncodeEnvelope(envelope models.CipherEnvelope) (string, error) {
	raw, err := json.Marshal(envelope)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
