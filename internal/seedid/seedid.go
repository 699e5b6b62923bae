// Package seedid derives stable synthetic identifiers from natural keys so
// that regenerating the seed migration yields the same ids every run.
package seedid

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/binary"

	"github.com/google/uuid"
)

// DeriveID returns a UUID-shaped id built from the SHA-256 of seedKey.
// The version nibble is fixed to 4 and the variant nibble to 8; every other
// nibble comes from the hash.
func DeriveID(seedKey string) string {
	return DeriveUUID(seedKey).String()
}

// DeriveUUID is DeriveID without the string conversion
func DeriveUUID(seedKey string) uuid.UUID {
	sum := sha256.Sum256([]byte(seedKey))

	var id uuid.UUID
	copy(id[:], sum[:16])
	id[6] = 0x40 | (id[6] & 0x0f)
	id[8] = 0x80 | (id[8] & 0x0f)
	return id
}

// Hash16 is a small hash of seedKey: the first two bytes of its MD5 digest
func Hash16(seedKey string) int {
	sum := md5.Sum([]byte(seedKey))
	return int(binary.BigEndian.Uint16(sum[:2]))
}

// Caseload synthesizes a plausible current/maximum caseload pair.
// maximum is in [100, 400); current is below maximum when active and zero otherwise.
func Caseload(seedKey string, active bool) (current, maximum int) {
	h := Hash16(seedKey)
	maximum = 100 + h%300
	if active {
		current = h % maximum
	}
	return current, maximum
}
