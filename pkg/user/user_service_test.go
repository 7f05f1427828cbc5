package user

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/stats"
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupUserTest(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entities.User{}))

	return NewUserService(NewUserRepository(db)), db
}

func TestResolveIdentityCreatesUser(t *testing.T) {
	service, _ := setupUserTest(t)
	ctx := context.Background()

	resolved, err := service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{
		Subject:   "auth0|ada",
		Email:     "ada@example.com",
		Providers: []string{"google"},
	})
	require.NoError(t, err)

	assert.Equal(t, "auth0|ada", resolved.Subject)
	assert.Equal(t, "ada@example.com", resolved.Email)
	// display name falls back to the email local part
	assert.Equal(t, "ada", resolved.DisplayName)
	assert.Equal(t, domain.SkillBeginner, resolved.SkillLevel)
	assert.True(t, resolved.ProfilePublic)
	assert.True(t, resolved.EmailNotifications)
	assert.True(t, resolved.IsActive)
	assert.Equal(t, domain.UserStats{}, resolved.Stats)
	assert.False(t, resolved.LastLoginAt.IsZero())
}

func TestResolveIdentityRequiresSubjectAndEmail(t *testing.T) {
	service, _ := setupUserTest(t)
	ctx := context.Background()

	_, err := service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{Email: "ada@example.com"})
	assert.ErrorIs(t, err, domain.ErrMissingSubject)

	_, err = service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{Subject: "auth0|ada"})
	assert.ErrorIs(t, err, domain.ErrMissingEmail)
}

func TestResolveIdentityRefreshesExisting(t *testing.T) {
	service, _ := setupUserTest(t)
	ctx := context.Background()

	first, err := service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{
		Subject: "auth0|ada",
		Email:   "ada@example.com",
	})
	require.NoError(t, err)

	second, err := service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{
		Subject:     "auth0|ada",
		Email:       "ada@example.com",
		DisplayName: "Ada L.",
		AvatarURL:   "https://cdn.example.com/ada.png",
		IsVerified:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ada L.", second.DisplayName)
	assert.Equal(t, "https://cdn.example.com/ada.png", second.AvatarURL)
	assert.True(t, second.IsVerified)
	assert.False(t, second.LastLoginAt.Before(first.LastLoginAt))
}

func TestResolveIdentityLowercasesEmail(t *testing.T) {
	service, _ := setupUserTest(t)
	ctx := context.Background()

	first, err := service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{
		Subject: "auth0|ada",
		Email:   "ada@example.com",
	})
	require.NoError(t, err)

	// a differently-cased spelling still resolves to the same account
	second, err := service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{
		Subject: "auth0|ada",
		Email:   "Ada@Example.COM",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "ada@example.com", second.Email)
}

func TestResolveIdentityEmailConflict(t *testing.T) {
	service, _ := setupUserTest(t)
	ctx := context.Background()

	_, err := service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{
		Subject: "auth0|ada",
		Email:   "ada@example.com",
	})
	require.NoError(t, err)

	_, err = service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{
		Subject: "auth0|impostor",
		Email:   "ada@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestGetProfile(t *testing.T) {
	service, _ := setupUserTest(t)
	ctx := context.Background()

	_, err := service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{
		Subject: "auth0|ada",
		Email:   "ada@example.com",
	})
	require.NoError(t, err)

	profile, err := service.GetProfile(ctx, "auth0|ada")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", profile.Email)

	_, err = service.GetProfile(ctx, "auth0|nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	service, _ := setupUserTest(t)
	ctx := context.Background()

	_, err := service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{
		Subject: "auth0|ada",
		Email:   "ada@example.com",
	})
	require.NoError(t, err)

	bio := "Home cook, mostly pasta"
	skill := domain.SkillAdvanced
	restrictions := []string{"vegetarian"}
	updated, err := service.UpdateProfile(ctx, "auth0|ada", domain.UpdateProfileRequest{
		Bio:                 &bio,
		SkillLevel:          &skill,
		DietaryRestrictions: &restrictions,
	})
	require.NoError(t, err)

	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, domain.SkillAdvanced, updated.SkillLevel)
	assert.Equal(t, restrictions, updated.DietaryRestrictions)

	badSkill := "grandmaster"
	_, err = service.UpdateProfile(ctx, "auth0|ada", domain.UpdateProfileRequest{SkillLevel: &badSkill})
	assert.ErrorIs(t, err, domain.ErrInvalidSkillLevel)

	_, err = service.UpdateProfile(ctx, "auth0|nobody", domain.UpdateProfileRequest{Bio: &bio})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfilePreservesCounters(t *testing.T) {
	service, db := setupUserTest(t)
	ctx := context.Background()

	resolved, err := service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{
		Subject: "auth0|ada",
		Email:   "ada@example.com",
	})
	require.NoError(t, err)

	// counters move through their own write path; a profile write based on
	// a stale read must not roll them back
	statsRepo := stats.NewStatsRepository(db)
	require.NoError(t, statsRepo.AddUserStat(ctx, resolved.ID, "recipes_created", 3))

	bio := "updated after the counter moved"
	updated, err := service.UpdateProfile(ctx, "auth0|ada", domain.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)

	var stored entities.User
	require.NoError(t, db.Where("subject = ?", "auth0|ada").First(&stored).Error)
	assert.Equal(t, 3, stored.RecipesCreated)
}

func TestDeadContextMapsToStorageTimeout(t *testing.T) {
	service, _ := setupUserTest(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.GetProfile(ctx, "auth0|ada")
	assert.ErrorIs(t, err, domain.ErrStorageTimeout)
}

func TestDeactivateUser(t *testing.T) {
	service, db := setupUserTest(t)
	ctx := context.Background()

	_, err := service.ResolveIdentity(ctx, domain.ResolveIdentityRequest{
		Subject: "auth0|ada",
		Email:   "ada@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeactivateUser(ctx, "auth0|ada"))

	// soft delete: the row stays so recipe owner references keep resolving
	var stored entities.User
	require.NoError(t, db.Where("subject = ?", "auth0|ada").First(&stored).Error)
	assert.False(t, stored.IsActive)

	assert.ErrorIs(t, service.DeactivateUser(ctx, "auth0|nobody"), domain.ErrUserNotFound)
}
