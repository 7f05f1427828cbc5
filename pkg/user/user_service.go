package user

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		ResolveIdentity(ctx context.Context, req domain.ResolveIdentityRequest) (domain.UserResponse, error)
		GetProfile(ctx context.Context, subject string) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, subject string, req domain.UpdateProfileRequest) (domain.UserResponse, error)
		DeactivateUser(ctx context.Context, subject string) error
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

// ResolveIdentity maps a verified external auth subject to the internal
// user row, creating it on first sight and refreshing profile hints plus
// last_login_at on every later call.
func (s *userService) ResolveIdentity(ctx context.Context, req domain.ResolveIdentityRequest) (domain.UserResponse, error) {
	if strings.TrimSpace(req.Subject) == "" {
		return domain.UserResponse{}, domain.ErrMissingSubject
	}
	if strings.TrimSpace(req.Email) == "" {
		return domain.UserResponse{}, domain.ErrMissingEmail
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepository.GetUserBySubject(ctx, req.Subject)
	if err == nil {
		return s.refreshExisting(ctx, existing, req, email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, domain.StorageError(err)
	}

	// First sight of this subject. The email must not belong to another
	// account; a collision is a conflict, never a silent overwrite.
	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, domain.StorageError(err)
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = emailLocalPart(email)
	}

	now := time.Now()
	newUser := &entities.User{
		ID:                  uuid.New(),
		Subject:             req.Subject,
		Email:               email,
		DisplayName:         displayName,
		AvatarURL:           req.AvatarURL,
		IsVerified:          req.IsVerified,
		Providers:           req.Providers,
		SkillLevel:          domain.SkillBeginner,
		DietaryRestrictions: []string{},
		CuisinePreferences:  []string{},
		ProfilePublic:       true,
		EmailNotifications:  true,
		IsActive:            true,
		LastLoginAt:         now,
	}

	if err := s.userRepository.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrSubjectTaken
		}
		return domain.UserResponse{}, domain.StorageError(err)
	}

	return toUserResponse(newUser), nil
}

func (s *userService) refreshExisting(ctx context.Context, user *entities.User, req domain.ResolveIdentityRequest, email string) (domain.UserResponse, error) {
	if email != user.Email {
		if other, err := s.userRepository.GetUserByEmail(ctx, email); err == nil && other.ID != user.ID {
			return domain.UserResponse{}, domain.ErrEmailTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.StorageError(err)
		}
		user.Email = email
	}
	if strings.TrimSpace(req.DisplayName) != "" {
		user.DisplayName = strings.TrimSpace(req.DisplayName)
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}
	if req.IsVerified {
		user.IsVerified = true
	}
	if len(req.Providers) > 0 {
		user.Providers = req.Providers
	}
	user.LastLoginAt = time.Now()

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrEmailTaken
		}
		return domain.UserResponse{}, domain.StorageError(err)
	}
	return toUserResponse(user), nil
}

func (s *userService) GetProfile(ctx context.Context, subject string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserBySubject(ctx, subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, domain.StorageError(err)
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, subject string, req domain.UpdateProfileRequest) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserBySubject(ctx, subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, domain.StorageError(err)
	}

	if req.DisplayName != nil {
		if len(*req.DisplayName) > 200 {
			return domain.UserResponse{}, domain.ErrDisplayNameTooLong
		}
		user.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		if len(*req.Bio) > 1000 {
			return domain.UserResponse{}, domain.ErrBioTooLong
		}
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Website != nil {
		user.Website = *req.Website
	}
	if req.SkillLevel != nil {
		switch *req.SkillLevel {
		case domain.SkillBeginner, domain.SkillIntermediate, domain.SkillAdvanced:
			user.SkillLevel = *req.SkillLevel
		default:
			return domain.UserResponse{}, domain.ErrInvalidSkillLevel
		}
	}
	if req.DietaryRestrictions != nil {
		user.DietaryRestrictions = *req.DietaryRestrictions
	}
	if req.CuisinePreferences != nil {
		user.CuisinePreferences = *req.CuisinePreferences
	}
	if req.ProfilePublic != nil {
		user.ProfilePublic = *req.ProfilePublic
	}
	if req.EmailNotifications != nil {
		user.EmailNotifications = *req.EmailNotifications
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, domain.StorageError(err)
	}
	return toUserResponse(user), nil
}

// DeactivateUser is a soft delete. The row stays so owner references on
// recipes keep resolving.
func (s *userService) DeactivateUser(ctx context.Context, subject string) error {
	user, err := s.userRepository.GetUserBySubject(ctx, subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return domain.StorageError(err)
	}
	user.IsActive = false
	return domain.StorageError(s.userRepository.UpdateUser(ctx, user))
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:                  user.ID.String(),
		Subject:             user.Subject,
		Email:               user.Email,
		DisplayName:         user.DisplayName,
		AvatarURL:           user.AvatarURL,
		IsVerified:          user.IsVerified,
		Providers:           user.Providers,
		Bio:                 user.Bio,
		Location:            user.Location,
		Website:             user.Website,
		SkillLevel:          user.SkillLevel,
		DietaryRestrictions: user.DietaryRestrictions,
		CuisinePreferences:  user.CuisinePreferences,
		Stats: domain.UserStats{
			RecipesCreated: user.RecipesCreated,
			RecipesLiked:   user.RecipesLiked,
			Followers:      user.Followers,
			Following:      user.Following,
		},
		ProfilePublic:      user.ProfilePublic,
		EmailNotifications: user.EmailNotifications,
		IsActive:           user.IsActive,
		LastLoginAt:        user.LastLoginAt,
		CreatedAt:          user.CreatedAt,
	}
}

// ToUserSummary is the owner snapshot attached to recipe responses.
func ToUserSummary(user *entities.User) domain.UserSummary {
	if user == nil {
		return domain.UserSummary{}
	}
	return domain.UserSummary{
		ID:          user.ID.String(),
		Subject:     user.Subject,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
	}
}
