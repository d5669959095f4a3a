// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"sort"
	"time"

	"github.com/MKhiriev/shield-chat/internal/crypto"
	"github.com/MKhiriev/shield-chat/internal/logger"
	"github.com/MKhiriev/shield-chat/models"
)

type conversationReconciler struct {
	keychain crypto.KeyChainService
	logger   *logger.Logger
}

func NewReconciler(keychain crypto.KeyChainService, logger *logger.Logger) Reconciler {
	return &conversationReconciler{
		keychain: keychain,
		logger:   logger,
	}
}

// Reconcile implements Reconciler. Classification happens in snapshot order,
// then the whole view is sorted once; the sort is stable so records sharing
// a timestamp keep their snapshot order.
func (r *conversationReconciler) Reconcile(snapshot []models.Message, key []byte, current models.User) []models.ViewMessage {
	view := make([]models.ViewMessage, 0, len(snapshot))

	for _, msg := range snapshot {
		displayText, state := r.resolveText(msg, key)

		view = append(view, models.ViewMessage{
			Id:          msg.Id,
			DisplayText: displayText,
			User:        msg.User,
			CreatedAt:   msg.CreatedAt,
			State:       state,
			Own:         isOwnMessage(msg, current),
		})
	}

	sort.SliceStable(view, func(i, j int) bool {
		return createdBefore(view[i].CreatedAt, view[j].CreatedAt)
	})

	return view
}

// resolveText turns one stored body into display text. A record that is not
// cipher-shaped is always shown verbatim and never touches the keychain.
func (r *conversationReconciler) resolveText(msg models.Message, key []byte) (string, models.DecryptionState) {
	if !crypto.IsCipherShaped(msg.Text) {
		return msg.Text, models.Plain
	}

	if key == nil {
		return PasswordRequiredText, models.DecryptFailedNoKey
	}

	envelope, err := crypto.ParseEnvelope(msg.Text)
	if err != nil {
		// cipher-shaped but unparsable: same display outcome as a failed
		// authentication tag
		r.logger.Debug().
			Str("func", "conversationReconciler.resolveText").
			Str("id", msg.Id).
			Msg("cipher-shaped text failed envelope parsing")
		return WrongPasswordText, models.DecryptFailedWrongKey
	}

	plaintext, err := r.keychain.DecryptMessage(envelope, key)
	if err != nil {
		if !errors.Is(err, crypto.ErrDecryptFailed) {
			r.logger.Err(err).
				Str("func", "conversationReconciler.resolveText").
				Str("id", msg.Id).
				Msg("unexpected decryption failure")
		}
		return WrongPasswordText, models.DecryptFailedWrongKey
	}

	return plaintext, models.DecryptedOk
}

// isOwnMessage reports whether the record was written by the current user.
// The stored author field is a display name, so the match against name or
// email is a weak identity check, accepted for rendering purposes only.
func isOwnMessage(msg models.Message, current models.User) bool {
	if msg.User == "" || current.IsZero() {
		return false
	}

	return msg.User == current.Name || msg.User == current.Email
}

// createdBefore orders resolved timestamps ascending and sorts pending
// records (nil CreatedAt) after every resolved one.
func createdBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}
