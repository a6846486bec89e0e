package codec

import "errors"

// Sentinel errors for the four failure classes of the field codec. Every
// error returned by the codec wraps exactly one of these, so callers can
// classify failures with errors.Is without inspecting messages.
var (
	// ErrEncrypt reports a failure of the cipher primitive during
	// encryption. Not expected in normal operation.
	ErrEncrypt = errors.New("field encryption failed")

	// ErrDecrypt reports malformed ciphertext, a passphrase mismatch, or a
	// primitive failure during decryption. Also returned when the decrypted
	// plaintext is empty or not valid UTF-8 (see Decrypt).
	ErrDecrypt = errors.New("field decryption failed")

	// ErrSerialize reports a value that cannot be marshalled to JSON.
	ErrSerialize = errors.New("value is not serializable")

	// ErrParse reports a decrypted payload that is not valid JSON.
	ErrParse = errors.New("decrypted payload is not valid JSON")
)
