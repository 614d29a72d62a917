// Package entity contains the core business objects of the service.
package entity

import (
	"strings"
	"time"
)

// DefaultProvider marks identities that authenticate with a local credential.
const DefaultProvider = "local"

// User is the only entity of the service. Username is its identifier; there is no
// separate surrogate key.
type User struct {
	Username     string    // Unique, trimmed login name.
	PasswordHash string    // bcrypt hash; never the caller's plaintext.
	Provider     string    // Origin of the identity, "local" or an external profile source.
	FamilyName   string    // Required, trimmed.
	GivenName    string    // Required, trimmed.
	MiddleName   string    // Optional, trimmed.
	Emails       []string  // Ordered, defaults to empty.
	Photos       []string  // Ordered, defaults to empty.
	CreatedAt    time.Time // Set by the store on insert.
	UpdatedAt    time.Time // Set by the store on every write.
}

// Normalize trims the name fields and fills defaults for optional ones.
func (u *User) Normalize() {
	u.Username = strings.TrimSpace(u.Username)
	u.FamilyName = strings.TrimSpace(u.FamilyName)
	u.GivenName = strings.TrimSpace(u.GivenName)
	u.MiddleName = strings.TrimSpace(u.MiddleName)
	u.Provider = strings.TrimSpace(u.Provider)
	if u.Provider == "" {
		u.Provider = DefaultProvider
	}
	u.Emails = nonNil(u.Emails)
	u.Photos = nonNil(u.Photos)
}

// UserPatch carries a partial update. A nil field was not supplied by the caller
// and leaves the stored value untouched.
type UserPatch struct {
	PasswordHash *string
	Provider     *string
	FamilyName   *string
	GivenName    *string
	MiddleName   *string
	Emails       *[]string
	Photos       *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p *UserPatch) IsEmpty() bool {
	return p == nil || (p.PasswordHash == nil && p.Provider == nil && p.FamilyName == nil &&
		p.GivenName == nil && p.MiddleName == nil && p.Emails == nil && p.Photos == nil)
}

// Apply merges the supplied fields into u.
func (p *UserPatch) Apply(u *User) {
	if p == nil {
		return
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.Provider != nil {
		u.Provider = *p.Provider
	}
	if p.FamilyName != nil {
		u.FamilyName = *p.FamilyName
	}
	if p.GivenName != nil {
		u.GivenName = *p.GivenName
	}
	if p.MiddleName != nil {
		u.MiddleName = *p.MiddleName
	}
	if p.Emails != nil {
		u.Emails = nonNil(*p.Emails)
	}
	if p.Photos != nil {
		u.Photos = nonNil(*p.Photos)
	}
}

// PasswordCheck is the outcome of a credential verification. Its shape is the
// same for every failure path.
type PasswordCheck struct {
	Check    bool   `json:"check"`
	Username string `json:"username"`
	Message  string `json:"message,omitempty"`
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
