package entity

import "slices"

// SanitizedUser is the projection of a User that may leave the service.
type SanitizedUser struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Provider   string   `json:"provider"`
	FamilyName string   `json:"familyName"`
	GivenName  string   `json:"givenName"`
	MiddleName string   `json:"middleName"`
	Emails     []string `json:"emails"`
	Photos     []string `json:"photos"`
}

// Sanitize drops the password hash and timestamps. ID mirrors Username.
func Sanitize(u *User) *SanitizedUser {
	if u == nil {
		return nil
	}

	return &SanitizedUser{
		ID:         u.Username,
		Username:   u.Username,
		Provider:   u.Provider,
		FamilyName: u.FamilyName,
		GivenName:  u.GivenName,
		MiddleName: u.MiddleName,
		Emails:     slices.Clone(nonNil(u.Emails)),
		Photos:     slices.Clone(nonNil(u.Photos)),
	}
}

// SanitizeAll projects every user; the result is never nil.
func SanitizeAll(users []*User) []*SanitizedUser {
	out := make([]*SanitizedUser, 0, len(users))
	for _, u := range users {
		out = append(out, Sanitize(u))
	}

	return out
}
