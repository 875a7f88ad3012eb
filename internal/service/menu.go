package service

import (
	"context"
	"time"
)

// maxFillRounds bounds the random-fill loop: the store-level random
// sample can keep returning recipes already on the menu, especially as
// the catalog shrinks toward the requested count.
const maxFillRounds = 10

// lockTimeout bounds how long a request waits for its session's menu lock
const lockTimeout = 2 * time.Second

// RandomFillResult reports the outcome of a random-fill request
type RandomFillResult struct {
	Added     int
	Exhausted bool
}

// MenuService manages per-session menus in the list cache. All
// mutations take a per-session lock so concurrent submissions from the
// same session cannot interleave their read-modify-write sequences.
type MenuService struct {
	lists   ListStore
	recipes IRecipeService
	locker  SessionLocker
}

// NewMenuService creates a new MenuService instance
func NewMenuService(lists ListStore, recipes IRecipeService, locker SessionLocker) *MenuService {
	return &MenuService{
		lists:   lists,
		recipes: recipes,
		locker:  locker,
	}
}

// Items returns the session's menu entries, most recently added first
func (s *MenuService) Items(ctx context.Context, sessionID string) ([]string, error) {
	return s.lists.Range(ctx, menuKey(sessionID))
}

// Reset deletes the session's entire menu
func (s *MenuService) Reset(ctx context.Context, sessionID string) error {
	release, err := s.lock(ctx, sessionID)
	if err != nil {
		return err
	}
	defer release()

	return s.lists.Delete(ctx, menuKey(sessionID))
}

// RemoveItem removes a single occurrence of token from the session's
// menu. Removing an absent token is a no-op.
func (s *MenuService) RemoveItem(ctx context.Context, sessionID, token string) error {
	release, err := s.lock(ctx, sessionID)
	if err != nil {
		return err
	}
	defer release()

	return s.lists.Remove(ctx, menuKey(sessionID), token)
}

// AddItem pushes token onto the session's menu unless an equal token is
// already present. Returns whether the token was added.
func (s *MenuService) AddItem(ctx context.Context, sessionID, token string) (bool, error) {
	release, err := s.lock(ctx, sessionID)
	if err != nil {
		return false, err
	}
	defer release()

	key := menuKey(sessionID)
	existing, err := s.lists.Range(ctx, key)
	if err != nil {
		return false, err
	}
	if contains(existing, token) {
		return false, nil
	}
	if err := s.lists.Push(ctx, key, token); err != nil {
		return false, err
	}
	return true, nil
}

// AddRandom draws random recipes from the catalog until count entries
// not already on the menu have been added, or the round bound is hit.
func (s *MenuService) AddRandom(ctx context.Context, sessionID string, count int) (RandomFillResult, error) {
	release, err := s.lock(ctx, sessionID)
	if err != nil {
		return RandomFillResult{}, err
	}
	defer release()

	key := menuKey(sessionID)
	existing, err := s.lists.Range(ctx, key)
	if err != nil {
		return RandomFillResult{}, err
	}
	present := make(map[string]bool, len(existing))
	for _, token := range existing {
		present[token] = true
	}

	result := RandomFillResult{}
	rounds := 0
	for result.Added < count && rounds <= maxFillRounds {
		recipes, err := s.recipes.RandomRecipes(ctx, count)
		if err != nil {
			return result, err
		}
		for _, recipe := range recipes {
			token := recipe.Token()
			if present[token] {
				continue
			}
			if err := s.lists.Push(ctx, key, token); err != nil {
				return result, err
			}
			present[token] = true
			result.Added++
		}
		rounds++
	}
	result.Exhausted = rounds > maxFillRounds

	return result, nil
}

func (s *MenuService) lock(ctx context.Context, sessionID string) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	return s.locker.Acquire(lockCtx, sessionID)
}

func menuKey(sessionID string) string {
	return "menu:" + sessionID
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
