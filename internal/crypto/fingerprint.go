package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprintBytes is the truncated digest length shown in logs.
const fingerprintBytes = 6

// Fingerprint identifies a public key in logs without printing the key: a
// blake2b-256 digest truncated to 6 bytes, as "xxxx-xxxx-xxxx".
func Fingerprint(pub []byte) string {
	if len(pub) == 0 {
		return ""
	}
	sum := blake2b.Sum256(pub)
	h := hex.EncodeToString(sum[:fingerprintBytes])
	return h[:4] + "-" + h[4:8] + "-" + h[8:]
}
