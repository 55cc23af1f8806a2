package common

import (
	"golang.org/x/crypto/sha3"
)

// DigestLength is the byte length of every digest produced by this package.
const DigestLength = 32

// Digest computes the SHA3-256 hash of data.
func Digest(data []byte) []byte {
	h := sha3.Sum256(data)
	return h[:]
}

// KeyedHash computes SHA3-256(key ++ data). Unlike SHA-1 and SHA-2, Keccak
// has no length-extension weakness, so prepending the key yields a secure
// MAC without the nested HMAC construction. An implementation substituting a
// Merkle-Damgard hash here MUST switch to HMAC instead.
func KeyedHash(key, data []byte) []byte {
	h := sha3.New256()
	h.Write(key) // sha3 writes never fail
	h.Write(data)
	return h.Sum(nil)
}
