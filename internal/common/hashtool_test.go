package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	// SHA3-256 known answer tests
	require.Equal(t,
		"a7ffc6f8bf1ed76651c14756a061d66210407a793eebebdccdfecb0fd6f03280",
		hex.EncodeToString(Digest(nil)),
	)
	require.Equal(t,
		"3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		hex.EncodeToString(Digest([]byte("abc"))),
	)
	require.Len(t, Digest([]byte("anything")), DigestLength)
}

func TestKeyedHash(t *testing.T) {
	key := []byte("some key")
	msg := []byte("some message")

	// Prefix keying: KeyedHash(key, msg) = Digest(key ++ msg)
	require.Equal(t, Digest(append(append([]byte{}, key...), msg...)), KeyedHash(key, msg))
	require.Len(t, KeyedHash(key, msg), DigestLength)

	// The construction only separates key from message by the key's length;
	// callers always use fixed 32-byte keys, so shifting the boundary while
	// keeping the concatenation yields the same digest.
	require.Equal(t, KeyedHash(key, msg), KeyedHash(key[:len(key)-1], append([]byte{key[len(key)-1]}, msg...)))

	require.NotEqual(t, KeyedHash(key, msg), KeyedHash(key, append([]byte{0}, msg...)))
}
