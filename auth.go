package prof

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Signature is the result of signing a message. The client only ever needs
// its hex encoding for the wire.
type Signature interface {
	Hex() string
}

// Signer is the cryptographic identity used to authenticate requests.
// It owns the private key material opaquely; the client never validates
// or inspects what it produces.
type Signer interface {
	// PublicKeyHex returns the hex-encoded public key. The service uses it
	// as the caller's uuid.
	PublicKeyHex() string

	// Sign signs the given message.
	Sign(message string) Signature
}

// authParams assembles the per-request authentication fields:
//
//	uuid      hex-encoded public key of the signer
//	timestamp current time in milliseconds since epoch, decimal
//	hash      fresh random nonce, never reused across calls
//	signature hex-encoded signature over the timestamp string
//
// The signature covers exactly the timestamp, not the full payload.
// Fails only when no signer is configured; no I/O happens here.
func (c *Client) authParams() (map[string]string, error) {
	if c.signer == nil {
		return nil, &AuthError{Message: "signer not configured"}
	}

	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)

	return map[string]string{
		"uuid":      c.signer.PublicKeyHex(),
		"timestamp": timestamp,
		"hash":      uuid.NewString(),
		"signature": c.signer.Sign(timestamp).Hex(),
	}, nil
}
