package user

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"family-hub-backend/domain"
	"family-hub-backend/entities"
	"family-hub-backend/internal/utils/mailing"
	"family-hub-backend/pkg/jwt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		InviteMember(ctx context.Context, req domain.InviteMemberRequest, userID, familyID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Register creates a user and resolves their family: an invite code joins an
// existing family as member, otherwise a new family is created with the user
// as owner.
func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	now := time.Now()
	user := &entities.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Timestamp: entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}

	if req.InviteCode != "" {
		family, err := s.userRepository.GetFamilyByInviteCode(ctx, req.InviteCode)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return domain.RegisterResponse{}, domain.ErrInviteCodeInvalid
			}
			return domain.RegisterResponse{}, err
		}
		user.FamilyID = family.ID
		user.Role = domain.RoleMember
	} else {
		familyName := req.FamilyName
		if familyName == "" {
			familyName = req.Name + "'s family"
		}

		inviteCode, err := generateInviteCode()
		if err != nil {
			return domain.RegisterResponse{}, err
		}

		family := &entities.Family{
			ID:         uuid.New().String(),
			Name:       familyName,
			InviteCode: inviteCode,
			OwnerID:    user.ID,
			Timestamp:  entities.Timestamp{CreatedAt: now, UpdatedAt: now},
		}
		if err := s.userRepository.CreateFamily(ctx, family); err != nil {
			return domain.RegisterResponse{}, err
		}
		user.FamilyID = family.ID
		user.Role = domain.RoleOwner
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		FamilyID: user.FamilyID,
		Role:     user.Role,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID, user.FamilyID, user.Role)

	return domain.LoginResponse{
		Token:    token,
		Name:     user.Name,
		FamilyID: user.FamilyID,
		Role:     user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	familyName := ""
	if user.FamilyID != "" {
		family, err := s.userRepository.GetFamilyByID(ctx, user.FamilyID)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return domain.MeResponse{}, err
		}
		if family != nil {
			familyName = family.Name
		}
	}

	return domain.MeResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		FamilyID:   user.FamilyID,
		FamilyName: familyName,
		Role:       user.Role,
	}, nil
}

func (s *userService) InviteMember(ctx context.Context, req domain.InviteMemberRequest, userID, familyID string) error {
	family, err := s.userRepository.GetFamilyByID(ctx, familyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrFamilyNotFound
		}
		return err
	}
	return mailing.SendInviteMail(req.Email, family.Name, family.InviteCode)
}

const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateInviteCode() (string, error) {
	code := make([]byte, 8)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(inviteCodeAlphabet))))
		if err != nil {
			return "", err
		}
		code[i] = inviteCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
