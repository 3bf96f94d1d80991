package cache

import "github.com/cespare/xxhash/v2"

// Fingerprint derives an order-sensitive 64-bit digest of the installed
// package list. Equality is a proxy for "nothing changed" in the cache
// staleness check, not an identity or security boundary. The list is
// hashed exactly as reported: a reordered list counts as a changed
// installed state and forces a (cheap, idempotent) re-parse.
func Fingerprint(packages []string) uint64 {
	h := xxhash.New()
	for _, pkg := range packages {
		h.WriteString(pkg)
		h.WriteString("\n")
	}
	return h.Sum64()
}
