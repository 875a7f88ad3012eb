package service

import (
	"context"

	"github.com/menubook/backend/internal/model"
)

// IRecipeService defines the interface for recipe catalog operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, id uint, recipe *model.Recipe) (*model.Recipe, error)
	ListRecipes(ctx context.Context) ([]*model.Recipe, error)
	SearchRecipes(ctx context.Context, query string) ([]*model.Recipe, error)
	RandomRecipes(ctx context.Context, limit int) ([]*model.Recipe, error)
}

// IMenuService defines the interface for session menu operations
type IMenuService interface {
	Items(ctx context.Context, sessionID string) ([]string, error)
	Reset(ctx context.Context, sessionID string) error
	RemoveItem(ctx context.Context, sessionID, token string) error
	AddItem(ctx context.Context, sessionID, token string) (bool, error)
	AddRandom(ctx context.Context, sessionID string, count int) (RandomFillResult, error)
}

// ListStore is the ordered-list cache the menu service stores session
// menus in. Each operation must be individually atomic.
type ListStore interface {
	Range(ctx context.Context, key string) ([]string, error)
	Push(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SessionLocker scopes a menu read-modify-write to a single writer per
// session.
type SessionLocker interface {
	Acquire(ctx context.Context, sessionID string) (func(), error)
}
