package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"users/internal/errors"
)

// MaxListLength bounds the serialized size of emails and photos in the relational store.
const MaxListLength = 2048

// ErrListTooLong is returned when a list does not fit its column.
var ErrListTooLong = errors.New("list exceeds column length")

// UserModel mirrors the 'users' table. Username is the primary key.
type UserModel struct {
	Username     string     `gorm:"column:username;type:varchar(255);primaryKey"`
	PasswordHash string     `gorm:"column:password;type:varchar(255);not null"`
	Provider     string     `gorm:"column:provider;type:varchar(255);not null;default:local"`
	FamilyName   string     `gorm:"column:family_name;type:varchar(255);not null"`
	GivenName    string     `gorm:"column:given_name;type:varchar(255);not null"`
	MiddleName   string     `gorm:"column:middle_name;type:varchar(255)"`
	Emails       StringList `gorm:"column:emails;type:varchar(2048)"`
	Photos       StringList `gorm:"column:photos;type:varchar(2048)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// StringList is stored as a JSON array in a text column and decoded back on read.
type StringList []string

// Encode returns the column representation.
func (l StringList) Encode() (string, error) {
	if l == nil {
		l = StringList{}
	}

	raw, err := json.Marshal([]string(l))
	if err != nil {
		return "", errors.Wrap(err, "encode string list")
	}
	if len(raw) > MaxListLength {
		return "", errors.Wrapf(ErrListTooLong, "%d bytes", len(raw))
	}

	return string(raw), nil
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return l.Encode()
}

// Scan implements sql.Scanner. NULL and empty columns decode to an empty list.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}

		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return errors.Errorf("cannot scan %T into StringList", src)
	}

	if len(raw) == 0 {
		*l = StringList{}

		return nil
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return errors.Wrap(err, "decode string list")
	}
	if values == nil {
		values = []string{}
	}
	*l = values

	return nil
}
