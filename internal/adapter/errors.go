package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// IndexRequiredError reports that the store rejected a filtered, ordered
// query because the backing composite index does not exist yet. It carries
// classification data only; turning it into help text and links is a
// presentation concern.
//
// There is no automatic retry: the remedy is external (create the index in
// the store console, or wait for a freshly created one to build).
type IndexRequiredError struct {
	// Collection is the store collection the query ran against.
	Collection string `json:"collection"`

	// Fields are the fields the missing composite index must cover,
	// in order.
	Fields []string `json:"fields"`

	// CreateURL is the store-console link that creates the index, when the
	// server provides one.
	CreateURL string `json:"createUrl"`
}

// Error implements the error interface.
func (e *IndexRequiredError) Error() string {
	return fmt.Sprintf("store index required on %s (%s)", e.Collection, strings.Join(e.Fields, ", "))
}
