package prof

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSigner is a deterministic Signer for tests: the public key is the
// SHA-256 of the key string, signatures are HMAC-SHA256 over the message.
type fakeSigner struct {
	key []byte
}

func newFakeSigner(key string) *fakeSigner {
	return &fakeSigner{key: []byte(key)}
}

func (s *fakeSigner) PublicKeyHex() string {
	sum := sha256.Sum256(s.key)
	return hex.EncodeToString(sum[:])
}

func (s *fakeSigner) Sign(message string) Signature {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(message))
	return fakeSignature{hex: hex.EncodeToString(mac.Sum(nil))}
}

type fakeSignature struct {
	hex string
}

func (s fakeSignature) Hex() string { return s.hex }

func TestAuthParams_RequiresSigner(t *testing.T) {
	c := New("http://localhost:3007")

	_, err := c.authParams()
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "signer not configured", authErr.Message)
}

func TestAuthParams_ContainsAllKeys(t *testing.T) {
	signer := newFakeSigner("test-key")
	c := New("http://localhost:3007", WithSigner(signer))

	params, err := c.authParams()
	require.NoError(t, err)

	require.Len(t, params, 4)
	assert.Equal(t, signer.PublicKeyHex(), params["uuid"])
	assert.Equal(t, signer.Sign(params["timestamp"]).Hex(), params["signature"])

	_, err = uuid.Parse(params["hash"])
	assert.NoError(t, err, "hash should be a UUID nonce")
}

func TestAuthParams_TimestampIsMilliseconds(t *testing.T) {
	c := New("http://localhost:3007", WithSigner(newFakeSigner("test-key")))

	before := time.Now().UnixMilli()
	params, err := c.authParams()
	require.NoError(t, err)
	after := time.Now().UnixMilli()

	ts, err := strconv.ParseInt(params["timestamp"], 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ts, before)
	assert.LessOrEqual(t, ts, after)
}

func TestAuthParams_NonceIsFresh(t *testing.T) {
	c := New("http://localhost:3007", WithSigner(newFakeSigner("test-key")))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		params, err := c.authParams()
		require.NoError(t, err)
		require.False(t, seen[params["hash"]], "nonce %q repeated", params["hash"])
		seen[params["hash"]] = true
	}
}
