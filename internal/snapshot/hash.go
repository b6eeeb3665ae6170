package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashPayload is the canonical form hashed for push suppression. The
// timestamp stays out: restamping an otherwise unchanged snapshot must not
// schedule a push.
type hashPayload struct {
	Persons  []Person        `json:"u"`
	Schedule []ScheduleEntry `json:"s"`
	Profile  Profile         `json:"p"`
}

// Hash returns a hex SHA-256 digest of the mutable snapshot content.
// Equal content always yields equal hashes; the reconciliation engine
// compares it against the last successfully pushed digest.
func (s Snapshot) Hash() string {
	raw, err := json.Marshal(hashPayload{
		Persons:  s.Persons,
		Schedule: s.Schedule,
		Profile:  s.Profile,
	})
	if err != nil {
		// Marshalling plain structs cannot fail; keep the signature simple.
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
