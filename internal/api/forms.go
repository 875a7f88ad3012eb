package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/menubook/backend/internal/model"
)

// recipeForm is the typed decode of the recipe creation/edit form.
// Every field has a defined fallback: numeric fields accept pure-digit
// text and coerce everything else to 0, and the healthy flag is true
// iff the checkbox field is present at all.
type recipeForm struct {
	RecipeID    uint
	RawRecipeID string
	Title       string
	Healthy     bool
	PrepTime    int
	CookTime    int
	Servings    int
	Ingredients string
	Directions  string
}

// decodeRecipeForm extracts a recipeForm from the request body
func decodeRecipeForm(c *gin.Context) recipeForm {
	form := recipeForm{
		RawRecipeID: c.PostForm("recipeID"),
		Title:       c.PostForm("title"),
		PrepTime:    coerceCount(c.PostForm("prep-time")),
		CookTime:    coerceCount(c.PostForm("cook-time")),
		Servings:    coerceCount(c.PostForm("servings")),
		Ingredients: c.PostForm("ingredients"),
		Directions:  c.PostForm("directions"),
	}
	form.RecipeID = uint(coerceCount(form.RawRecipeID))

	// Presence alone marks the checkbox; its value is irrelevant.
	_, form.Healthy = c.GetPostForm("healthy-bool")

	return form
}

// Recipe builds a catalog record from the decoded form
func (f recipeForm) Recipe() *model.Recipe {
	return &model.Recipe{
		Name:        f.Title,
		Healthy:     f.Healthy,
		PrepTime:    f.PrepTime,
		CookTime:    f.CookTime,
		Servings:    f.Servings,
		Ingredients: f.Ingredients,
		Directions:  f.Directions,
	}
}

// coerceCount parses pure-digit text as a non-negative integer and
// coerces anything else (empty, signed, fractional, garbage) to 0.
func coerceCount(s string) int {
	if s == "" {
		return 0
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
