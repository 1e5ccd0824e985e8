package models

import "time"

// HistoryEntry is one generated password, recorded whether or not it was
// ever saved as a credential. The ledger is append-only.
type HistoryEntry struct {
	// ID is the internal unique identifier of the history row.
	ID int64 `json:"id"`

	// Password carries the generated value: ciphertext at the persistence
	// layer, plaintext above the vault service. Nil when decryption of a
	// stored row fails.
	Password *string `json:"password"`

	// CreatedAt is when the password was generated.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the HistoryEntry model.
func (h HistoryEntry) TableName() string {
	return "password_history"
}
