package document

import (
	"context"

	"users/internal/domain/entity"
	domainerrors "users/internal/domain/errors"
	"users/internal/domain/repository"
	"users/internal/errors"
	"users/internal/infra/connmgr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userStore implements repository.UserStore on a MongoDB collection.
type userStore struct {
	conn *Connector
}

// NewUserStore returns the document implementation of repository.UserStore.
func NewUserStore(conn *Connector) repository.UserStore {
	return &userStore{conn: conn}
}

// Create inserts a new document; the unique username index rejects duplicates.
func (s *userStore) Create(ctx context.Context, user *entity.User) error {
	client, coll, err := s.conn.Collection(ctx)
	if err != nil {
		return err
	}

	doc := fromUserDomain(user, bsonNow())
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrDuplicateIdentity.WrapMessage("username already exists")
		}

		return s.translate(client, err, "failed to create user")
	}

	user.CreatedAt = doc.CreatedAt
	user.UpdatedAt = doc.UpdatedAt

	return nil
}

// FindByUsername retrieves a single user by username.
func (s *userStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	client, coll, err := s.conn.Collection(ctx)
	if err != nil {
		return nil, err
	}

	var doc userDocument
	if err := coll.FindOne(ctx, bson.M{fieldUsername: username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, s.translate(client, err, "failed to find user by username")
	}

	return toUserDomain(&doc), nil
}

// Update sets the supplied fields and returns the document after the update.
func (s *userStore) Update(ctx context.Context, username string, patch *entity.UserPatch) (*entity.User, error) {
	if patch.IsEmpty() {
		return s.FindByUsername(ctx, username)
	}

	client, coll, err := s.conn.Collection(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err = coll.FindOneAndUpdate(ctx,
		bson.M{fieldUsername: username},
		bson.M{"$set": setFields(patch, bsonNow())},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, s.translate(client, err, "failed to update user")
	}

	return toUserDomain(&doc), nil
}

// Delete removes the document and reports whether one matched.
func (s *userStore) Delete(ctx context.Context, username string) (bool, error) {
	client, coll, err := s.conn.Collection(ctx)
	if err != nil {
		return false, err
	}

	result, err := coll.DeleteOne(ctx, bson.M{fieldUsername: username})
	if err != nil {
		return false, s.translate(client, err, "failed to delete user")
	}

	return result.DeletedCount > 0, nil
}

// List returns every document in natural order.
func (s *userStore) List(ctx context.Context) ([]*entity.User, error) {
	client, coll, err := s.conn.Collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, s.translate(client, err, "failed to list users")
	}

	var docs []*userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, s.translate(client, err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, toUserDomain(doc))
	}

	return users, nil
}

func (s *userStore) translate(client *mongo.Client, err error, details string) error {
	if err = s.conn.Observe(client, err); errors.Is(err, domainerrors.ErrConnectionFailure) {
		return err
	}
	if connmgr.IsCallerCancellation(err) || mongo.IsTimeout(err) {
		return domainerrors.ErrRequestTimeout.Wrap(err)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
