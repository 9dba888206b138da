package user

import (
	"context"
	"testing"

	"family-hub-backend/domain"
	"family-hub-backend/entities"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepository struct {
	users    []*entities.User
	families []*entities.Family
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepository) CreateFamily(_ context.Context, family *entities.Family) error {
	r.families = append(r.families, family)
	return nil
}

func (r *fakeUserRepository) GetFamilyByID(_ context.Context, id string) (*entities.Family, error) {
	for _, f := range r.families {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepository) GetFamilyByInviteCode(_ context.Context, code string) (*entities.Family, error) {
	for _, f := range r.families {
		if f.InviteCode == code {
			return f, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateTokenUser(userID, familyID, role string) string {
	return "token-" + userID
}

func (f *fakeJWTService) ValidateTokenUser(_ string) (*jwt.Token, error) {
	return nil, nil
}

func (f *fakeJWTService) GetClaimsByToken(_ string) (string, string, string, error) {
	return "", "", "", nil
}

func register(t *testing.T, svc UserService, req domain.RegisterRequest) domain.RegisterResponse {
	t.Helper()
	res, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	return res
}

func TestRegisterCreatesFamilyForOwner(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := NewUserService(repo, &fakeJWTService{})

	res := register(t, svc, domain.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	assert.Equal(t, domain.RoleOwner, res.Role)
	require.Len(t, repo.families, 1)
	assert.Equal(t, "Alice's family", repo.families[0].Name)
	assert.Equal(t, res.FamilyID, repo.families[0].ID)
	assert.Len(t, repo.families[0].InviteCode, 8)
	assert.Equal(t, res.ID, repo.families[0].OwnerID)
}

func TestRegisterJoinsFamilyByInviteCode(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := NewUserService(repo, &fakeJWTService{})

	owner := register(t, svc, domain.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	member := register(t, svc, domain.RegisterRequest{
		Name:       "Bob",
		Email:      "bob@example.com",
		Password:   "s3cretpass",
		InviteCode: repo.families[0].InviteCode,
	})

	assert.Equal(t, domain.RoleMember, member.Role)
	assert.Equal(t, owner.FamilyID, member.FamilyID)
	assert.Len(t, repo.families, 1)
}

func TestRegisterRejectsUnknownInviteCode(t *testing.T) {
	svc := NewUserService(&fakeUserRepository{}, &fakeJWTService{})

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:       "Bob",
		Email:      "bob@example.com",
		Password:   "s3cretpass",
		InviteCode: "NOPE1234",
	})
	assert.ErrorIs(t, err, domain.ErrInviteCodeInvalid)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewUserService(&fakeUserRepository{}, &fakeJWTService{})

	register(t, svc, domain.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "s3cretpass",
	})

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name: "Alice again", Email: "alice@example.com", Password: "s3cretpass",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := NewUserService(repo, &fakeJWTService{})

	created := register(t, svc, domain.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "s3cretpass",
	})

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-"+created.ID, res.Token)
	assert.Equal(t, domain.RoleOwner, res.Role)

	// passwords are stored hashed
	stored, err := repo.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", stored.Password)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewUserService(&fakeUserRepository{}, &fakeJWTService{})

	register(t, svc, domain.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "s3cretpass",
	})

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewUserService(&fakeUserRepository{}, &fakeJWTService{})

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMeIncludesFamilyName(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := NewUserService(repo, &fakeJWTService{})

	created := register(t, svc, domain.RegisterRequest{
		Name:       "Alice",
		Email:      "alice@example.com",
		Password:   "s3cretpass",
		FamilyName: "The Smiths",
	})

	res, err := svc.Me(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Smiths", res.FamilyName)
	assert.Equal(t, created.FamilyID, res.FamilyID)
}
