package service

import "errors"

var (
	// ErrNotAuthenticated is returned by Submit when no user identity is
	// bound to the session. Recoverable: the session keeps running.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrEmptyRoom is returned by Enter when the room name is blank.
	ErrEmptyRoom = errors.New("room name is empty")
)

// Fixed display sentinels for messages that could not be decrypted. They are
// stored nowhere; the reconciler substitutes them on every pass.
const (
	// WrongPasswordText replaces a cipher envelope that did not
	// authenticate under the active room key.
	WrongPasswordText = "Encrypted Message (Wrong Password)"

	// PasswordRequiredText replaces a cipher envelope seen by a session
	// that holds no room key.
	PasswordRequiredText = "Encrypted Message (Password Required)"
)
