package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/menubook/backend/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Single connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Recipe{}))
	return db
}

func TestCreateAndGetRecipe(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, &model.Recipe{
		Name:        "Soup",
		Healthy:     true,
		PrepTime:    10,
		Servings:    4,
		Ingredients: "water, salt",
		Directions:  "boil",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup", got.Name)
	assert.True(t, got.Healthy)
	assert.Equal(t, 10, got.PrepTime)
	assert.Equal(t, 0, got.CookTime)
	assert.Equal(t, 4, got.Servings)
}

func TestCreateRecipeDuplicateName(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateRecipe(ctx, &model.Recipe{Name: "Soup"})
	require.NoError(t, err)

	_, err = svc.CreateRecipe(ctx, &model.Recipe{Name: "Soup"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdateRecipeReplacesAllFields(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))
	ctx := context.Background()

	target, err := svc.CreateRecipe(ctx, &model.Recipe{
		Name: "Soup", Healthy: true, PrepTime: 10, CookTime: 20, Servings: 4,
		Ingredients: "water, salt", Directions: "boil",
	})
	require.NoError(t, err)
	other, err := svc.CreateRecipe(ctx, &model.Recipe{
		Name: "Salad", Healthy: true, PrepTime: 5, Servings: 2,
		Ingredients: "greens", Directions: "toss",
	})
	require.NoError(t, err)

	// Zero values (healthy=false, times=0) must be written too
	updated, err := svc.UpdateRecipe(ctx, target.ID, &model.Recipe{
		Name: "Stew", Healthy: false, PrepTime: 0, CookTime: 0, Servings: 6,
		Ingredients: "beef, water", Directions: "simmer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Stew", updated.Name)
	assert.False(t, updated.Healthy)
	assert.Equal(t, 0, updated.PrepTime)
	assert.Equal(t, 0, updated.CookTime)
	assert.Equal(t, 6, updated.Servings)

	// The other record is untouched
	got, err := svc.GetRecipe(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Salad", got.Name)
	assert.Equal(t, 5, got.PrepTime)
}

func TestUpdateRecipeNotFound(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))

	_, err := svc.UpdateRecipe(context.Background(), 9999, &model.Recipe{Name: "Ghost"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestSearchRecipes(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateRecipe(ctx, &model.Recipe{Name: "Tomato Soup", Ingredients: "tomatoes, salt"})
	require.NoError(t, err)
	_, err = svc.CreateRecipe(ctx, &model.Recipe{Name: "Pancakes", Ingredients: "flour, eggs, salt"})
	require.NoError(t, err)
	_, err = svc.CreateRecipe(ctx, &model.Recipe{Name: "Lemonade", Ingredients: "lemons, sugar"})
	require.NoError(t, err)

	// Name match
	results, err := svc.SearchRecipes(ctx, "Soup")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Tomato Soup", results[0].Name)

	// Ingredients match
	results, err = svc.SearchRecipes(ctx, "salt")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// No match
	results, err = svc.SearchRecipes(ctx, "chocolate")
	require.NoError(t, err)
	assert.Empty(t, results)

	// Empty query matches everything
	results, err = svc.SearchRecipes(ctx, "")
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestRandomRecipesLimit(t *testing.T) {
	svc := NewRecipeService(setupTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		_, err := svc.CreateRecipe(ctx, &model.Recipe{Name: name})
		require.NoError(t, err)
	}

	results, err := svc.RandomRecipes(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	// Asking for more than the catalog holds returns the whole catalog
	results, err = svc.RandomRecipes(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, results, 5)
}
