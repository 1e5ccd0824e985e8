package crypto

import "errors"

// ErrDecryption is the sentinel wrapped by [KeyBox.Decrypt] failures. The
// vault layers match it with errors.Is to degrade a single row to a nil
// password instead of aborting a whole batch read.
var ErrDecryption = errors.New("decryption failed")
