// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the hosted shield-chat document store and its authentication service.
//
// The primary abstraction is [StoreAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPStoreAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). The one structured error
// is [IndexRequiredError]: the store refuses a filtered, ordered listing
// until a composite index exists, and the client can only tell the user how
// to create it.
package adapter

import (
	"context"

	"github.com/MKhiriev/shield-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_adapter_mock.go -package=mock

// StoreAdapter defines transport-agnostic communication with the hosted
// document store. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
//
// The store itself is an external collaborator: an append-only collection of
// message documents with server-assigned ids and creation timestamps. This
// client never updates or deletes documents.
type StoreAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. The token is obtained out of band
	// from the authentication dependency (config or environment).
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// CurrentUser returns the identity bound to the current bearer token.
	// Returns a wrapped [ErrUnauthorized] when no token is set or the
	// server rejects it.
	CurrentUser(ctx context.Context) (models.User, error)

	// ListMessages fetches the full snapshot of all messages in room,
	// ordered by creation timestamp ascending. Pending records (not yet
	// server-stamped) carry a nil CreatedAt. Returns a wrapped
	// [*IndexRequiredError] when the store is missing the composite
	// room+createdAt index backing this query.
	ListMessages(ctx context.Context, room string) ([]models.Message, error)

	// AppendMessage inserts one new message document. The server assigns
	// the document id and the creation timestamp; the returned record
	// reflects both (CreatedAt may still be nil while the commit is
	// pending). The stored text is write-once.
	AppendMessage(ctx context.Context, msg models.Message) (models.Message, error)
}
