package recipe

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/stats"
	"RecipeShare-Backend/pkg/user"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRecipeTest(t *testing.T) (RecipeService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection so every session sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Recipe{}, &entities.SavedLink{}))

	service := NewRecipeService(
		NewRecipeRepository(db),
		user.NewUserRepository(db),
		stats.NewStatsRepository(db),
	)
	return service, db
}

func seedUser(t *testing.T, db *gorm.DB, subject, email string) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:          uuid.New(),
		Subject:     subject,
		Email:       email,
		DisplayName: subject,
		SkillLevel:  domain.SkillBeginner,
		IsActive:    true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func baseCreateRequest() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Title:       "Weeknight Carbonara",
		Description: "Pasta for nights when there is no time",
		Ingredients: []domain.IngredientRequest{
			{Name: "spaghetti", Quantity: 200, Unit: "g"},
			{Name: "eggs", Quantity: 2, Unit: "pcs"},
		},
		Instructions: []domain.InstructionRequest{
			{Text: "Boil the pasta"},
			{Text: "Whisk eggs with cheese and combine off heat"},
		},
		Category:        "main-course",
		Cuisine:         "italian",
		PrepTimeMinutes: 10,
		CookTimeMinutes: 20,
		Servings:        2,
	}
}

func fetchRecipe(t *testing.T, db *gorm.DB, id string) *entities.Recipe {
	t.Helper()
	var rec entities.Recipe
	require.NoError(t, db.Where("id = ?", id).First(&rec).Error)
	return &rec
}

func fetchUser(t *testing.T, db *gorm.DB, subject string) *entities.User {
	t.Helper()
	var u entities.User
	require.NoError(t, db.Where("subject = ?", subject).First(&u).Error)
	return &u
}

func TestCreateRecipeDerivesTotalTime(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	created, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
	require.NoError(t, err)

	assert.Equal(t, 30, created.TotalTimeMinutes)
	assert.Equal(t, domain.StatusDraft, created.Status)
	assert.Equal(t, domain.DifficultyMedium, created.Difficulty)
	assert.True(t, created.IsPublic)
	assert.Nil(t, created.PublishedAt)
	assert.Equal(t, "auth0|ada", created.Owner.Subject)

	// the instruction steps are renumbered server side
	stored := fetchRecipe(t, db, created.ID)
	require.Len(t, stored.Instructions, 2)
	assert.Equal(t, 1, stored.Instructions[0].Step)
	assert.Equal(t, 2, stored.Instructions[1].Step)

	owner := fetchUser(t, db, "auth0|ada")
	assert.Equal(t, 1, owner.RecipesCreated)
}

func TestCreateRecipeUnknownOwner(t *testing.T) {
	service, _ := setupRecipeTest(t)

	_, err := service.CreateRecipe(context.Background(), baseCreateRequest(), "auth0|ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateRecipeValidation(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	tests := []struct {
		name    string
		mutate  func(*domain.CreateRecipeRequest)
		wantErr error
	}{
		{"missing title", func(r *domain.CreateRecipeRequest) { r.Title = "" }, domain.ErrMissingTitle},
		{"missing description", func(r *domain.CreateRecipeRequest) { r.Description = "" }, domain.ErrMissingDescription},
		{"no ingredients", func(r *domain.CreateRecipeRequest) { r.Ingredients = nil }, domain.ErrNoIngredients},
		{"no instructions", func(r *domain.CreateRecipeRequest) { r.Instructions = nil }, domain.ErrNoInstructions},
		{"bad category", func(r *domain.CreateRecipeRequest) { r.Category = "midnight-snack" }, domain.ErrInvalidCategory},
		{"bad cuisine", func(r *domain.CreateRecipeRequest) { r.Cuisine = "martian" }, domain.ErrInvalidCuisine},
		{"bad difficulty", func(r *domain.CreateRecipeRequest) { r.Difficulty = "impossible" }, domain.ErrInvalidDifficulty},
		{"zero servings", func(r *domain.CreateRecipeRequest) { r.Servings = 0 }, domain.ErrInvalidServings},
		{"negative prep time", func(r *domain.CreateRecipeRequest) { r.PrepTimeMinutes = -1 }, domain.ErrInvalidCookingTime},
		{"two primary images", func(r *domain.CreateRecipeRequest) {
			r.Images = []domain.RecipeImageRequest{
				{URL: "https://img.example.com/a.jpg", IsPrimary: true},
				{URL: "https://img.example.com/b.jpg", IsPrimary: true},
			}
		}, domain.ErrMultiplePrimaryImages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseCreateRequest()
			tt.mutate(&req)
			_, err := service.CreateRecipe(ctx, req, "auth0|ada")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetRecipeCountsViews(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	created, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
	require.NoError(t, err)

	_, err = service.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	got, err := service.GetRecipe(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, got.Stats.Views)
	assert.Equal(t, 2, fetchRecipe(t, db, created.ID).Views)
}

func TestGetRecipeNotFound(t *testing.T) {
	service, _ := setupRecipeTest(t)

	_, err := service.GetRecipe(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestUpdateRecipeRecomputesTotalTime(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	created, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
	require.NoError(t, err)

	// a like in flight before the edit must survive the content write
	require.NoError(t, service.LikeRecipe(ctx, created.ID, "auth0|ada"))

	newTitle := "Actual Weeknight Carbonara"
	newCook := 25
	updated, err := service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		Title:           &newTitle,
		CookTimeMinutes: &newCook,
	}, "auth0|ada")
	require.NoError(t, err)

	assert.Equal(t, "Actual Weeknight Carbonara", updated.Title)
	assert.Equal(t, 35, updated.TotalTimeMinutes)

	stored := fetchRecipe(t, db, created.ID)
	assert.Equal(t, 35, stored.TotalTimeMinutes)
	assert.Equal(t, 1, stored.Likes)
	assert.Equal(t, domain.StatusDraft, stored.Status)
}

func TestUpdateRecipeByNonOwner(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")
	seedUser(t, db, "auth0|grace", "grace@example.com")

	created, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{Title: &newTitle}, "auth0|grace")
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
	assert.Equal(t, "Weeknight Carbonara", fetchRecipe(t, db, created.ID).Title)
}

func TestDeleteRecipeByNonOwner(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")
	seedUser(t, db, "auth0|grace", "grace@example.com")

	created, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
	require.NoError(t, err)

	err = service.DeleteRecipe(ctx, created.ID, "auth0|grace")
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	// the recipe and the owner's counter are both untouched
	assert.NotNil(t, fetchRecipe(t, db, created.ID))
	assert.Equal(t, 1, fetchUser(t, db, "auth0|ada").RecipesCreated)
}

func TestDeleteRecipeByOwner(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	created, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
	require.NoError(t, err)

	require.NoError(t, service.DeleteRecipe(ctx, created.ID, "auth0|ada"))

	var count int64
	require.NoError(t, db.Model(&entities.Recipe{}).Where("id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
	assert.Equal(t, 0, fetchUser(t, db, "auth0|ada").RecipesCreated)
}

func TestPublishIsIdempotentAndKeepsFirstTimestamp(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	created, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
	require.NoError(t, err)

	first, err := service.PublishRecipe(ctx, created.ID, "auth0|ada")
	require.NoError(t, err)
	require.NotNil(t, first.PublishedAt)
	firstPublishedAt := *first.PublishedAt

	again, err := service.PublishRecipe(ctx, created.ID, "auth0|ada")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, again.Status)
	require.NotNil(t, again.PublishedAt)
	assert.Equal(t, firstPublishedAt.Unix(), again.PublishedAt.Unix())

	unpublished, err := service.UnpublishRecipe(ctx, created.ID, "auth0|ada")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, unpublished.Status)

	// published_at survives the unpublish and a later republish
	stored := fetchRecipe(t, db, created.ID)
	require.NotNil(t, stored.PublishedAt)
	assert.Equal(t, firstPublishedAt.Unix(), stored.PublishedAt.Unix())

	republished, err := service.PublishRecipe(ctx, created.ID, "auth0|ada")
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.Equal(t, firstPublishedAt.Unix(), republished.PublishedAt.Unix())
}

func TestRacingPublishersKeepFirstTimestamp(t *testing.T) {
	_, db := setupRecipeTest(t)
	ctx := context.Background()
	owner := seedUser(t, db, "auth0|ada", "ada@example.com")
	repo := NewRecipeRepository(db)

	rec := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       owner.ID,
		OwnerSubject: owner.Subject,
		Title:        "Racy focaccia",
		Status:       domain.StatusDraft,
	}
	require.NoError(t, repo.CreateRecipe(ctx, rec))

	// both writers observed a nil published_at before either wrote; the
	// storage guard must keep the first timestamp anyway
	first := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)
	require.NoError(t, repo.SetRecipeStatus(ctx, rec.ID.String(), domain.StatusPublished, &first))
	require.NoError(t, repo.SetRecipeStatus(ctx, rec.ID.String(), domain.StatusPublished, &second))

	stored := fetchRecipe(t, db, rec.ID.String())
	require.NotNil(t, stored.PublishedAt)
	assert.Equal(t, first.Unix(), stored.PublishedAt.Unix())
}

func TestLikeMissingRecipe(t *testing.T) {
	service, db := setupRecipeTest(t)
	seedUser(t, db, "auth0|ada", "ada@example.com")

	err := service.LikeRecipe(context.Background(), uuid.NewString(), "auth0|ada")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	assert.Equal(t, 0, fetchUser(t, db, "auth0|ada").RecipesLiked)
}

func TestUnlikeFloorsAtZero(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	created, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
	require.NoError(t, err)

	require.NoError(t, service.LikeRecipe(ctx, created.ID, "auth0|ada"))
	require.NoError(t, service.UnlikeRecipe(ctx, created.ID, "auth0|ada"))
	require.NoError(t, service.UnlikeRecipe(ctx, created.ID, "auth0|ada"))

	assert.Equal(t, 0, fetchRecipe(t, db, created.ID).Likes)
	assert.Equal(t, 0, fetchUser(t, db, "auth0|ada").RecipesLiked)
}

func TestConcurrentLikes(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")
	seedUser(t, db, "auth0|grace", "grace@example.com")

	created, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
	require.NoError(t, err)

	subjects := []string{"auth0|ada", "auth0|grace"}
	var wg sync.WaitGroup
	errs := make([]error, len(subjects))
	for i, subject := range subjects {
		wg.Add(1)
		go func(i int, subject string) {
			defer wg.Done()
			errs[i] = service.LikeRecipe(ctx, created.ID, subject)
		}(i, subject)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 2, fetchRecipe(t, db, created.ID).Likes)
}

func TestSaveHasNoUserMirror(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	created, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
	require.NoError(t, err)

	require.NoError(t, service.SaveRecipe(ctx, created.ID, "auth0|ada"))
	assert.Equal(t, 1, fetchRecipe(t, db, created.ID).Saves)
	assert.Equal(t, 0, fetchUser(t, db, "auth0|ada").RecipesLiked)

	require.NoError(t, service.UnsaveRecipe(ctx, created.ID, "auth0|ada"))
	require.NoError(t, service.UnsaveRecipe(ctx, created.ID, "auth0|ada"))
	assert.Equal(t, 0, fetchRecipe(t, db, created.ID).Saves)
}

func TestRateRecipe(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	created, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
	require.NoError(t, err)

	require.NoError(t, service.RateRecipe(ctx, created.ID, domain.RateRecipeRequest{Rating: 4}))
	require.NoError(t, service.RateRecipe(ctx, created.ID, domain.RateRecipeRequest{Rating: 2}))

	stored := fetchRecipe(t, db, created.ID)
	assert.Equal(t, 2, stored.RatingCount)
	assert.InDelta(t, 3.0, stored.RatingAverage, 0.001)

	err = service.RateRecipe(ctx, created.ID, domain.RateRecipeRequest{Rating: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	err = service.RateRecipe(ctx, uuid.NewString(), domain.RateRecipeRequest{Rating: 4})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestPublicListingHidesDraftsAndPrivates(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	_, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
	require.NoError(t, err)

	publicReq := baseCreateRequest()
	publicReq.Title = "Public Carbonara"
	published, err := service.CreateRecipe(ctx, publicReq, "auth0|ada")
	require.NoError(t, err)
	_, err = service.PublishRecipe(ctx, published.ID, "auth0|ada")
	require.NoError(t, err)

	privateReq := baseCreateRequest()
	privateReq.Title = "Secret Carbonara"
	isPublic := false
	privateReq.IsPublic = &isPublic
	private, err := service.CreateRecipe(ctx, privateReq, "auth0|ada")
	require.NoError(t, err)
	_, err = service.PublishRecipe(ctx, private.ID, "auth0|ada")
	require.NoError(t, err)

	publicList, err := service.ListRecipes(ctx, domain.RecipeQuery{})
	require.NoError(t, err)
	require.Len(t, publicList.Recipes, 1)
	assert.Equal(t, "Public Carbonara", publicList.Recipes[0].Title)

	// the owner listing carries no default status filter
	mine, err := service.ListMyRecipes(ctx, "auth0|ada", domain.RecipeQuery{})
	require.NoError(t, err)
	assert.Len(t, mine.Recipes, 3)

	drafts, err := service.ListMyRecipes(ctx, "auth0|ada", domain.RecipeQuery{Status: domain.StatusDraft})
	require.NoError(t, err)
	assert.Len(t, drafts.Recipes, 1)
}

func TestListRecipesPagination(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	for i := 0; i < 5; i++ {
		created, err := service.CreateRecipe(ctx, baseCreateRequest(), "auth0|ada")
		require.NoError(t, err)
		_, err = service.PublishRecipe(ctx, created.ID, "auth0|ada")
		require.NoError(t, err)
	}

	page1, err := service.ListRecipes(ctx, domain.RecipeQuery{PageQuery: domain.PageQuery{Page: 1, Limit: 2}})
	require.NoError(t, err)
	assert.Len(t, page1.Recipes, 2)
	assert.Equal(t, int64(5), page1.Pagination.Total)
	assert.Equal(t, int64(3), page1.Pagination.TotalPages)

	// a page past the end is an empty success, not an error
	page4, err := service.ListRecipes(ctx, domain.RecipeQuery{PageQuery: domain.PageQuery{Page: 4, Limit: 2}})
	require.NoError(t, err)
	assert.Empty(t, page4.Recipes)
	assert.Equal(t, 4, page4.Pagination.Page)
	assert.Equal(t, int64(5), page4.Pagination.Total)
}

func TestListRecipesFilters(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	tagged := baseCreateRequest()
	tagged.Title = "Gnocchi"
	tagged.Tags = []string{"comfort-food", "pasta"}
	created, err := service.CreateRecipe(ctx, tagged, "auth0|ada")
	require.NoError(t, err)
	_, err = service.PublishRecipe(ctx, created.ID, "auth0|ada")
	require.NoError(t, err)

	dessert := baseCreateRequest()
	dessert.Title = "Tiramisu"
	dessert.Category = "dessert"
	created, err = service.CreateRecipe(ctx, dessert, "auth0|ada")
	require.NoError(t, err)
	_, err = service.PublishRecipe(ctx, created.ID, "auth0|ada")
	require.NoError(t, err)

	byTag, err := service.ListRecipes(ctx, domain.RecipeQuery{Tag: "pasta"})
	require.NoError(t, err)
	require.Len(t, byTag.Recipes, 1)
	assert.Equal(t, "Gnocchi", byTag.Recipes[0].Title)

	byCategory, err := service.ListRecipes(ctx, domain.RecipeQuery{Category: "dessert"})
	require.NoError(t, err)
	require.Len(t, byCategory.Recipes, 1)
	assert.Equal(t, "Tiramisu", byCategory.Recipes[0].Title)
}

func TestSearchRanksTitleMatchesFirst(t *testing.T) {
	service, db := setupRecipeTest(t)
	ctx := context.Background()
	seedUser(t, db, "auth0|ada", "ada@example.com")

	inDescription := baseCreateRequest()
	inDescription.Title = "Rice Bowl"
	inDescription.Description = "Crispy tofu over rice"
	created, err := service.CreateRecipe(ctx, inDescription, "auth0|ada")
	require.NoError(t, err)
	_, err = service.PublishRecipe(ctx, created.ID, "auth0|ada")
	require.NoError(t, err)

	inTitle := baseCreateRequest()
	inTitle.Title = "Spicy tofu stir fry"
	created, err = service.CreateRecipe(ctx, inTitle, "auth0|ada")
	require.NoError(t, err)
	_, err = service.PublishRecipe(ctx, created.ID, "auth0|ada")
	require.NoError(t, err)

	results, err := service.ListRecipes(ctx, domain.RecipeQuery{Search: "tofu"})
	require.NoError(t, err)
	require.Len(t, results.Recipes, 2)
	assert.Equal(t, "Spicy tofu stir fry", results.Recipes[0].Title)
	assert.Equal(t, "Rice Bowl", results.Recipes[1].Title)
}
