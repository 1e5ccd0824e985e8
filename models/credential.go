package models

import "time"

// Credential is a single stored website credential. The password field holds
// either the ciphertext (as stored) or the decrypted plaintext, depending on
// which layer produced the value; the Decrypted flag-free convention is that
// repositories return ciphertext and the vault service returns plaintext.
type Credential struct {
	// ID is the internal unique identifier of the credential.
	ID int64 `json:"id"`

	// Website is the site or service the credential belongs to.
	Website string `json:"website"`

	// Username is the account name used on the website.
	Username string `json:"username"`

	// Password carries the credential secret. At the persistence layer this
	// is the base64 AES-GCM blob; above the vault service it is plaintext.
	// A nil value means the stored ciphertext could not be decrypted.
	Password *string `json:"password"`

	// Category is the user-assigned grouping label ("Work", "Personal", ...).
	// Defaults to "Other" when the caller does not supply one.
	Category string `json:"category"`

	// CreatedAt is the timestamp the credential was first saved.
	CreatedAt time.Time `json:"created_at"`

	// ExpiryDate is when the password should be rotated. Defaults to
	// creation time plus 90 days.
	ExpiryDate time.Time `json:"expiry_date"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "stored_passwords"
}

// DefaultCategory is assigned to credentials saved without an explicit one.
const DefaultCategory = "Other"

// DefaultExpiryDays is the rotation window applied when a credential is
// saved without an explicit expiry date.
const DefaultExpiryDays = 90

// ExpiringCredential is the reduced projection returned by the expiry-alert
// queries: enough to render an alert row, without the secret itself.
type ExpiringCredential struct {
	ID         int64     `json:"id"`
	Website    string    `json:"website"`
	Username   string    `json:"username"`
	ExpiryDate time.Time `json:"expiry_date"`
}
