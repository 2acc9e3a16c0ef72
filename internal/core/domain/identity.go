package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// identityLen is the hex-prefix length of a derived identity.
const identityLen = 32

// DeriveIdentity computes the anonymous pseudo-identity used to deduplicate
// votes: a SHA-256 digest of "ip:user_agent[:extra]" truncated to 32 hex
// characters. It is deterministic across restarts (no salt): identical
// inputs always map to the same identity. This is a dedup key, not a
// credential: collisions behind shared NAT are an accepted limitation.
func DeriveIdentity(ip, userAgent string, extra ...string) string {
	parts := append([]string{ip, userAgent}, extra...)
	sum := sha256.Sum256([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(sum[:])[:identityLen]
}
