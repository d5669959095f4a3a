package crypto

import "errors"

// ErrDecryptFailed reports that an envelope did not authenticate under the
// supplied key. It is an expected, per-message outcome (wrong room password,
// corrupted record), surfaced to the user as a display state rather than as
// a failure of the whole conversation.
var ErrDecryptFailed = errors.New("message decryption failed")
