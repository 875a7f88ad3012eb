package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/menubook/backend/internal/model"
)

// ErrDuplicateName is returned when a recipe name collides with an
// existing record's unique name.
var ErrDuplicateName = errors.New("a recipe with that name already exists")

// RecipeService handles recipe catalog operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe creates a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe replaces every field of an existing recipe. Zero values
// (healthy=false, coerced times) must be written too, hence the
// explicit column selection.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, recipe *model.Recipe) (*model.Recipe, error) {
	var existing model.Recipe
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).
		Select("name", "healthy", "prep_time", "cook_time", "servings", "ingredients", "directions").
		Updates(recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return s.GetRecipe(ctx, id)
}

// ListRecipes returns every recipe in the store's default order
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return toPointers(recipes), nil
}

// SearchRecipes returns every recipe whose name or ingredients contain
// the query as a substring. An empty query matches everything; case
// sensitivity follows the store's LIKE semantics.
func (s *RecipeService) SearchRecipes(ctx context.Context, query string) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	like := "%" + query + "%"
	err := s.db.WithContext(ctx).
		Where("name LIKE ? OR ingredients LIKE ?", like, like).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return toPointers(recipes), nil
}

// RandomRecipes draws up to limit recipes in random order
func (s *RecipeService) RandomRecipes(ctx context.Context, limit int) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).Order("RANDOM()").Limit(limit).Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return toPointers(recipes), nil
}

func toPointers(recipes []model.Recipe) []*model.Recipe {
	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result
}
