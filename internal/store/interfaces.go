// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's local message history cache.
//
// The cache is a write-behind copy of room snapshots received from the
// hosted store. It is never authoritative: the remote store always wins,
// and a fresh snapshot replaces whatever was cached for the room. Its only
// purpose is to let the client render the last known conversation while
// the first poll of a session is still in flight.
package store

import (
	"context"

	"github.com/MKhiriev/shield-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/history_repository_mock.go -package=mock

// HistoryRepository is the SQLite-backed cache of room message snapshots.
type HistoryRepository interface {
	// SaveSnapshot replaces the cached history of a room with the given
	// snapshot. The previous cache content for the room is discarded.
	SaveSnapshot(ctx context.Context, room string, messages []models.Message) error

	// GetRoomHistory returns the cached snapshot of a room ordered by
	// creation time, pending messages last. Returns an empty slice when
	// nothing is cached for the room.
	GetRoomHistory(ctx context.Context, room string) ([]models.Message, error)
}
