// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/shield-chat/internal/adapter"
	"github.com/MKhiriev/shield-chat/internal/crypto"
	"github.com/MKhiriev/shield-chat/internal/logger"
	"github.com/MKhiriev/shield-chat/internal/store"
	"github.com/MKhiriev/shield-chat/internal/utils"
	"github.com/MKhiriev/shield-chat/models"
)

type chatSession struct {
	keychain     crypto.KeyChainService
	reconciler   Reconciler
	storeAdapter adapter.StoreAdapter
	history      store.HistoryRepository
	uuids        *utils.UUIDGenerator
	pollInterval time.Duration
	logger       *logger.Logger

	// newWatcher is swapped in tests to observe the session without
	// running a real polling goroutine.
	newWatcher func(onSnapshot SnapshotHandler, onError ErrorHandler) SnapshotWatcher

	mu          sync.Mutex
	state       SessionState
	room        models.RoomContext
	key         []byte
	generation  uint64
	view        []models.ViewMessage
	lastErr     error
	watcher     SnapshotWatcher
	currentUser models.User
}

func NewChatSession(
	storeAdapter adapter.StoreAdapter,
	history store.HistoryRepository,
	keychain crypto.KeyChainService,
	reconciler Reconciler,
	pollInterval time.Duration,
	logger *logger.Logger,
) ChatSession {
	c := &chatSession{
		keychain:     keychain,
		reconciler:   reconciler,
		storeAdapter: storeAdapter,
		history:      history,
		uuids:        utils.NewUUIDGenerator(),
		pollInterval: pollInterval,
		logger:       logger,
		state:        StateIdle,
	}
	c.newWatcher = func(onSnapshot SnapshotHandler, onError ErrorHandler) SnapshotWatcher {
		return NewSnapshotWatcher(storeAdapter, onSnapshot, onError)
	}

	return c
}

// Enter implements ChatSession.
func (c *chatSession) Enter(ctx context.Context, room models.RoomContext) error {
	roomName := strings.TrimSpace(room.Room)
	if roomName == "" {
		return fmt.Errorf("cannot enter room: %w", ErrEmptyRoom)
	}

	currentUser, err := c.storeAdapter.CurrentUser(ctx)
	if err != nil {
		if !errors.Is(err, adapter.ErrUnauthorized) {
			return fmt.Errorf("failed to resolve current user: %w", err)
		}
		// unauthenticated sessions may still read the room
		currentUser = models.User{}
	}

	// stop the previous watch outside the session lock: Stop waits for the
	// polling goroutine, which may be blocked on that same lock inside a
	// delivery callback
	c.mu.Lock()
	previous := c.watcher
	c.watcher = nil
	c.mu.Unlock()
	if previous != nil {
		previous.Stop()
	}

	var key []byte
	if room.Password != "" {
		key = c.keychain.DeriveRoomKey(room.Password, roomName)
	}

	c.mu.Lock()
	c.room = models.RoomContext{Room: roomName, Password: room.Password}
	c.key = key
	c.currentUser = currentUser
	c.generation++
	generation := c.generation
	c.state = StateLoading
	c.lastErr = nil
	c.view = nil
	c.mu.Unlock()

	c.renderCachedHistory(ctx, generation, roomName)

	watcher := c.newWatcher(
		func(deliveredRoom string, messages []models.Message) {
			c.applySnapshot(generation, deliveredRoom, messages)
		},
		func(deliveredRoom string, err error) {
			c.applyError(generation, deliveredRoom, err)
		},
	)

	c.mu.Lock()
	c.watcher = watcher
	c.mu.Unlock()

	c.logger.Info().
		Str("func", "chatSession.Enter").
		Str("room", roomName).
		Bool("encrypted", key != nil).
		Msg("entering room")

	watcher.Start(ctx, roomName, c.pollInterval)
	return nil
}

// renderCachedHistory shows the last cached snapshot of the room while the
// first live poll is in flight. A cache miss is not an error.
func (c *chatSession) renderCachedHistory(ctx context.Context, generation uint64, roomName string) {
	if c.history == nil {
		return
	}

	cached, err := c.history.GetRoomHistory(ctx, roomName)
	if err != nil {
		c.logger.Err(err).
			Str("func", "chatSession.renderCachedHistory").
			Str("room", roomName).
			Msg("failed to read cached room history")
		return
	}
	if len(cached) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation || c.state != StateLoading {
		return
	}
	c.view = c.reconciler.Reconcile(cached, c.key, c.currentUser)
}

// applySnapshot replaces the exposed view with the reconciled snapshot.
// Deliveries carrying a stale generation belong to an abandoned room and are
// dropped.
func (c *chatSession) applySnapshot(generation uint64, room string, messages []models.Message) {
	c.mu.Lock()
	if generation != c.generation {
		c.mu.Unlock()
		return
	}

	c.view = c.reconciler.Reconcile(messages, c.key, c.currentUser)
	c.state = StateReady
	c.lastErr = nil
	c.mu.Unlock()

	if c.history != nil {
		if err := c.history.SaveSnapshot(context.Background(), room, messages); err != nil {
			c.logger.Err(err).
				Str("func", "chatSession.applySnapshot").
				Str("room", room).
				Msg("failed to cache room snapshot")
		}
	}
}

// applyError moves the session to StateError. The previously rendered view
// is kept; there is no automatic retry.
func (c *chatSession) applyError(generation uint64, room string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return
	}

	c.state = StateError
	c.lastErr = err

	c.logger.Err(err).
		Str("func", "chatSession.applyError").
		Str("room", room).
		Msg("room watch failed")
}

// Submit implements ChatSession.
func (c *chatSession) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	c.mu.Lock()
	roomName := c.room.Room
	key := c.key
	currentUser := c.currentUser
	c.mu.Unlock()

	if roomName == "" {
		return fmt.Errorf("cannot submit: %w", ErrEmptyRoom)
	}
	if currentUser.IsZero() {
		return fmt.Errorf("cannot submit: %w", ErrNotAuthenticated)
	}

	body := text
	if key != nil {
		envelope, err := c.keychain.EncryptMessage(text, key)
		if err != nil {
			return fmt.Errorf("failed to encrypt message: %w", err)
		}
		body, err = crypto.EncodeEnvelope(envelope)
		if err != nil {
			return fmt.Errorf("failed to encode envelope: %w", err)
		}
	}

	msg := models.Message{
		ClientId: c.uuids.Generate(),
		Room:     roomName,
		Text:     body,
		User:     currentUser.Name,
		UserId:   currentUser.UserId,
	}

	if _, err := c.storeAdapter.AppendMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	return nil
}

// View implements ChatSession.
func (c *chatSession) View() []models.ViewMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := make([]models.ViewMessage, len(c.view))
	copy(view, c.view)
	return view
}

// State implements ChatSession.
func (c *chatSession) State() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError implements ChatSession.
func (c *chatSession) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Close implements ChatSession.
func (c *chatSession) Close() {
	c.mu.Lock()
	watcher := c.watcher
	c.watcher = nil
	c.generation++
	c.state = StateIdle
	c.mu.Unlock()

	if watcher != nil {
		watcher.Stop()
	}
}
