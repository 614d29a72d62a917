package relational

import (
	"context"

	"users/internal/domain/entity"
	domainerrors "users/internal/domain/errors"
	"users/internal/domain/repository"
	"users/internal/errors"
	"users/internal/infra/connmgr"
	"users/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userStore implements repository.UserStore on top of GORM.
type userStore struct {
	conn *Connector
}

// NewUserStore returns the relational implementation of repository.UserStore.
func NewUserStore(conn *Connector) repository.UserStore {
	return &userStore{conn: conn}
}

// Create inserts a new row; the username primary key rejects duplicates.
func (s *userStore) Create(ctx context.Context, user *entity.User) error {
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	db, err := s.conn.DB(ctx)
	if err != nil {
		return err
	}

	if err := db.WithContext(ctx).Create(userM).Error; err != nil {
		return s.translate(db, err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByUsername retrieves a single user by primary key.
func (s *userStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	db, err := s.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	var userM model.UserModel
	if err := db.WithContext(ctx).Where("username = ?", username).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, s.translate(db, err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Update applies the supplied columns and reloads the row inside one transaction.
func (s *userStore) Update(ctx context.Context, username string, patch *entity.UserPatch) (*entity.User, error) {
	updates, err := patchColumns(patch)
	if err != nil {
		return nil, err
	}

	db, err := s.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	var userM model.UserModel
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", username).First(&userM).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&userM).Updates(updates).Error; err != nil {
			return err
		}

		return tx.Where("username = ?", username).First(&userM).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, s.translate(db, err, "failed to update user")
	}

	return toUserDomain(&userM), nil
}

// Delete removes the row and reports whether one matched.
func (s *userStore) Delete(ctx context.Context, username string) (bool, error) {
	db, err := s.conn.DB(ctx)
	if err != nil {
		return false, err
	}

	result := db.WithContext(ctx).Where("username = ?", username).Delete(&model.UserModel{})
	if result.Error != nil {
		return false, s.translate(db, result.Error, "failed to delete user")
	}

	return result.RowsAffected > 0, nil
}

// List returns every row in table order.
func (s *userStore) List(ctx context.Context) ([]*entity.User, error) {
	db, err := s.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	var rows []*model.UserModel
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, s.translate(db, err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return users, nil
}

// translate converts driver errors into domain errors. Link loss also resets
// the connection so the next operation redials.
func (s *userStore) translate(db *gorm.DB, err error, details string) error {
	if err = s.conn.Observe(db, err); errors.Is(err, domainerrors.ErrConnectionFailure) {
		return err
	}

	switch {
	case connmgr.IsCallerCancellation(err):
		return domainerrors.ErrRequestTimeout.Wrap(err)
	case errors.Is(err, model.ErrListTooLong):
		return domainerrors.ErrValidationFailed.Wrap(err)
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrDuplicateIdentity.WrapMessage("username already exists")
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Provider:     data.Provider,
		FamilyName:   data.FamilyName,
		GivenName:    data.GivenName,
		MiddleName:   data.MiddleName,
		Emails:       nonNil(data.Emails),
		Photos:       nonNil(data.Photos),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain maps the entity and rejects lists that would not fit their column.
func fromUserDomain(data *entity.User) (*model.UserModel, error) {
	userM := &model.UserModel{
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Provider:     data.Provider,
		FamilyName:   data.FamilyName,
		GivenName:    data.GivenName,
		MiddleName:   data.MiddleName,
		Emails:       model.StringList(data.Emails),
		Photos:       model.StringList(data.Photos),
	}

	if err := checkListLength(userM.Emails, userM.Photos); err != nil {
		return nil, err
	}

	return userM, nil
}

// patchColumns turns the supplied patch fields into a column map.
func patchColumns(patch *entity.UserPatch) (map[string]any, error) {
	updates := make(map[string]any)
	if patch.IsEmpty() {
		return updates, nil
	}

	if patch.PasswordHash != nil {
		updates["password"] = *patch.PasswordHash
	}
	if patch.Provider != nil {
		updates["provider"] = *patch.Provider
	}
	if patch.FamilyName != nil {
		updates["family_name"] = *patch.FamilyName
	}
	if patch.GivenName != nil {
		updates["given_name"] = *patch.GivenName
	}
	if patch.MiddleName != nil {
		updates["middle_name"] = *patch.MiddleName
	}
	if patch.Emails != nil {
		emails := model.StringList(nonNil(*patch.Emails))
		if err := checkListLength(emails); err != nil {
			return nil, err
		}
		updates["emails"] = emails
	}
	if patch.Photos != nil {
		photos := model.StringList(nonNil(*patch.Photos))
		if err := checkListLength(photos); err != nil {
			return nil, err
		}
		updates["photos"] = photos
	}

	return updates, nil
}

func checkListLength(lists ...model.StringList) error {
	for _, list := range lists {
		if _, err := list.Encode(); err != nil {
			return domainerrors.ErrValidationFailed.Wrap(err)
		}
	}

	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
