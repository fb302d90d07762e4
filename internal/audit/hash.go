package audit

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

// Default Argon2id parameters for pseudonymization.
const (
	DefaultIterations uint32 = 3
	DefaultMemoryMB   uint32 = 64
)

// PseudonymizeID derives a stable pseudonym for an actor ID so audit
// exports can be shared without exposing real identifiers. The same
// (id, salt) pair always produces the same pseudonym.
func PseudonymizeID(id uuid.UUID, salt string, iterations, memoryMB uint32) string {
	hash := argon2.IDKey(id[:], []byte(salt), iterations, memoryMB*1024, 1, 32)
	return hex.EncodeToString(hash)
}
