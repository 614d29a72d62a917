package document

import (
	"time"

	"users/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document field names.
const (
	fieldUsername   = "username"
	fieldPassword   = "password"
	fieldProvider   = "provider"
	fieldFamilyName = "familyName"
	fieldGivenName  = "givenName"
	fieldMiddleName = "middleName"
	fieldEmails     = "emails"
	fieldPhotos     = "photos"
	fieldUpdatedAt  = "updatedAt"
)

// userDocument is the stored shape of a user. _id is generated by MongoDB and
// never leaves this package; username carries a unique index.
type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password"`
	Provider     string             `bson:"provider"`
	FamilyName   string             `bson:"familyName"`
	GivenName    string             `bson:"givenName"`
	MiddleName   string             `bson:"middleName,omitempty"`
	Emails       []string           `bson:"emails"`
	Photos       []string           `bson:"photos"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func fromUserDomain(u *entity.User, now time.Time) *userDocument {
	return &userDocument{
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Provider:     u.Provider,
		FamilyName:   u.FamilyName,
		GivenName:    u.GivenName,
		MiddleName:   u.MiddleName,
		Emails:       nonNil(u.Emails),
		Photos:       nonNil(u.Photos),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func toUserDomain(doc *userDocument) *entity.User {
	if doc == nil {
		return nil
	}

	return &entity.User{
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		Provider:     doc.Provider,
		FamilyName:   doc.FamilyName,
		GivenName:    doc.GivenName,
		MiddleName:   doc.MiddleName,
		Emails:       nonNil(doc.Emails),
		Photos:       nonNil(doc.Photos),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

// setFields builds the $set document for the supplied patch fields.
func setFields(patch *entity.UserPatch, now time.Time) bson.M {
	set := bson.M{fieldUpdatedAt: now}
	if patch == nil {
		return set
	}

	if patch.PasswordHash != nil {
		set[fieldPassword] = *patch.PasswordHash
	}
	if patch.Provider != nil {
		set[fieldProvider] = *patch.Provider
	}
	if patch.FamilyName != nil {
		set[fieldFamilyName] = *patch.FamilyName
	}
	if patch.GivenName != nil {
		set[fieldGivenName] = *patch.GivenName
	}
	if patch.MiddleName != nil {
		set[fieldMiddleName] = *patch.MiddleName
	}
	if patch.Emails != nil {
		set[fieldEmails] = nonNil(*patch.Emails)
	}
	if patch.Photos != nil {
		set[fieldPhotos] = nonNil(*patch.Photos)
	}

	return set
}

// bsonNow is truncated to the millisecond precision of BSON dates.
func bsonNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
