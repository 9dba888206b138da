package user

import (
	"context"

	"family-hub-backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)

		CreateFamily(ctx context.Context, family *entities.Family) error
		GetFamilyByID(ctx context.Context, id string) (*entities.Family, error)
		GetFamilyByInviteCode(ctx context.Context, code string) (*entities.Family, error)
	}

	userRepository struct {
		users    *mongo.Collection
		families *mongo.Collection
	}
)

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		users:    db.Collection("users"),
		families: db.Collection("families"),
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	_, err := r.users.InsertOne(ctx, user)
	return err
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CreateFamily(ctx context.Context, family *entities.Family) error {
	_, err := r.families.InsertOne(ctx, family)
	return err
}

func (r *userRepository) GetFamilyByID(ctx context.Context, id string) (*entities.Family, error) {
	var family entities.Family
	if err := r.families.FindOne(ctx, bson.M{"_id": id}).Decode(&family); err != nil {
		return nil, err
	}
	return &family, nil
}

func (r *userRepository) GetFamilyByInviteCode(ctx context.Context, code string) (*entities.Family, error) {
	var family entities.Family
	if err := r.families.FindOne(ctx, bson.M{"invite_code": code}).Decode(&family); err != nil {
		return nil, err
	}
	return &family, nil
}
