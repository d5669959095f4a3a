// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/shield-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chat_service_mock.go -package=mock

// Reconciler turns a raw room snapshot into the ordered, display-ready
// conversation. Reconciliation is a pure transformation: the same snapshot,
// key, and user always produce the same view, and the input slice is never
// mutated.
type Reconciler interface {
	// Reconcile classifies every stored message (plaintext, decrypted,
	// or one of the failure states), resolves the display text, marks the
	// current user's own messages, and sorts the result by creation time
	// ascending with pending records last. key may be nil when the session
	// has no room password.
	Reconcile(snapshot []models.Message, key []byte, current models.User) []models.ViewMessage
}

// SnapshotHandler receives a full room snapshot from a watcher.
type SnapshotHandler func(room string, messages []models.Message)

// ErrorHandler receives a polling failure from a watcher.
type ErrorHandler func(room string, err error)

// SnapshotWatcher is the client-side stand-in for the hosted store's live
// subscription: it polls the room listing on an interval and delivers every
// result as a full snapshot. Delivery order follows poll order; there is no
// diffing.
type SnapshotWatcher interface {
	// Start launches the background polling goroutine for room. It polls
	// once immediately, then every interval, defaulting to 2 seconds if
	// interval is zero or negative. Any previously running watch is
	// stopped before the new one begins.
	Start(ctx context.Context, room string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated. Safe to call when the watcher is not running.
	Stop()
}

// ChatSession is the stateful core of the client: one room conversation at
// a time, moving through Idle → Loading → Ready/Error as snapshots arrive.
type ChatSession interface {
	// Enter binds the session to a new room context: the previous watch is
	// abandoned, the previous key is discarded, a new key is derived when a
	// password is present, and a fresh snapshot watch begins. Deliveries
	// belonging to an abandoned room are dropped.
	Enter(ctx context.Context, room models.RoomContext) error

	// Submit sends one message to the current room. Blank input (after
	// trimming) is a no-op. Requires an authenticated user; returns a
	// wrapped [ErrNotAuthenticated] otherwise. When the session holds a
	// room key the text is sealed into a cipher envelope before writing.
	// A write failure is recoverable and leaves the rendered view intact.
	Submit(ctx context.Context, text string) error

	// View returns the current display-ready conversation. The slice is a
	// snapshot copy and safe to use without locking.
	View() []models.ViewMessage

	// State returns the current lifecycle state of the session.
	State() SessionState

	// LastError returns the structured error behind StateError, or nil.
	LastError() error

	// Close stops the active watch. The session can be re-entered.
	Close()
}

// SessionState is the lifecycle state of a [ChatSession].
type SessionState int

const (
	// StateIdle means no room has been entered yet.
	StateIdle SessionState = iota

	// StateLoading means a room was entered and the first live snapshot
	// has not arrived. Cached history, if any, is already rendered.
	StateLoading

	// StateReady means the view reflects the latest live snapshot.
	StateReady

	// StateError means the last poll failed; the previously rendered view
	// is kept on screen. There is no automatic retry.
	StateError
)

// String implements [fmt.Stringer] for logging and test output.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
