// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// CipherEnvelope is the wire and storage encoding of one encrypted message
// body: a 12-byte AES-GCM nonce plus ciphertext with the authentication tag
// appended.
//
// The serialized form is a JSON object with exactly two fields, both arrays
// of byte values:
//
//	{"iv":[12 integers 0-255],"data":[N integers 0-255]}
//
// This exact shape doubles as the heuristic discriminator for "is this
// stored text encrypted", so the integer-array encoding must never be
// replaced with base64.
type CipherEnvelope struct {
	// IV is the 96-bit GCM nonce, generated fresh for every encryption.
	IV []byte

	// Data is the ciphertext with the 16-byte GCM tag appended.
	Data []byte
}

// envelopeWire mirrors the persisted JSON shape. Byte slices are spelled
// out as integer arrays, not base64.
type envelopeWire struct {
	IV   []int `json:"iv"`
	Data []int `json:"data"`
}

// MarshalJSON implements [json.Marshaler] producing the persisted
// integer-array shape.
func (e CipherEnvelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelopeWire{
		IV:   bytesToInts(e.IV),
		Data: bytesToInts(e.Data),
	})
}

// UnmarshalJSON implements [json.Unmarshaler]. Returns an error if the
// input is not valid JSON or any array element is outside 0-255.
func (e *CipherEnvelope) UnmarshalJSON(data []byte) error {
	var w envelopeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode cipher envelope: %w", err)
	}

	iv, err := intsToBytes(w.IV)
	if err != nil {
		return fmt.Errorf("cipher envelope iv: %w", err)
	}
	body, err := intsToBytes(w.Data)
	if err != nil {
		return fmt.Errorf("cipher envelope data: %w", err)
	}

	e.IV = iv
	e.Data = body
	return nil
}

func bytesToInts(b []byte) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}

func intsToBytes(ints []int) ([]byte, error) {
	out := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("byte value out of range at index %d: %d", i, v)
		}
		out[i] = byte(v)
	}
	return out, nil
}
