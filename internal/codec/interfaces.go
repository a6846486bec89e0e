package codec

//go:generate mockgen -source=interfaces.go -destination=../mock/field_codec_mock.go -package=mock

// FieldCodec encrypts and decrypts short text values (and JSON-serializable
// objects) with a key derived from a caller-supplied passphrase — in this
// application the authenticated user's email address.
//
// All four operations are pure: no shared state, no I/O, safe for concurrent
// use. Each ciphertext is self-contained; everything needed for decryption
// except the passphrase (salt, nonce) is embedded in the encoded output.
type FieldCodec interface {
	// Encrypt encrypts text under a key derived from passphrase and returns
	// an opaque textual encoding safe for a single text column. A fresh salt
	// is drawn on every call, so encrypting the same inputs twice yields
	// different ciphertexts; all of them decrypt back to the same text.
	// Failures wrap [ErrEncrypt].
	Encrypt(text, passphrase string) (string, error)

	// Decrypt reverses Encrypt. Failures wrap [ErrDecrypt]: malformed or
	// truncated ciphertext, a passphrase that does not match the one used at
	// encryption time, a plaintext that is not valid UTF-8, or a plaintext
	// that decodes to the empty string.
	Decrypt(cipherText, passphrase string) (string, error)

	// EncryptObject marshals value to JSON and encrypts the result.
	// A non-serializable value wraps [ErrSerialize]; cipher failures wrap
	// [ErrEncrypt].
	EncryptObject(value any, passphrase string) (string, error)

	// DecryptObject decrypts cipherText and unmarshals the plaintext into
	// target, which must be a non-nil pointer as for json.Unmarshal.
	// Decryption failures wrap [ErrDecrypt]; a plaintext that is not valid
	// JSON wraps [ErrParse]. No schema validation is performed.
	DecryptObject(cipherText, passphrase string, target any) error
}
