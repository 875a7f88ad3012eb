package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/menubook/backend/internal/service"
	"github.com/menubook/backend/internal/session"
)

// RecipeHandler serves the recipe catalog pages
type RecipeHandler struct {
	recipes service.IRecipeService
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RegisterRoutes registers the catalog routes
func (h *RecipeHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Index)
	router.GET("/new", h.NewForm)
	router.POST("/new", h.Create)
	router.GET("/view", h.List)
	router.GET("/view/:id", h.Detail)
	router.POST("/view", h.Update)
	router.GET("/search", h.Search)
}

// Index redirects the root path to the catalog listing
func (h *RecipeHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/view")
}

// NewForm renders the recipe creation form
func (h *RecipeHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new.html", gin.H{
		"Flashes": session.Flashes(c),
	})
}

// Create adds a new recipe to the catalog and redirects back to the
// empty creation form. A duplicate name surfaces as a notice rather
// than a server error.
func (h *RecipeHandler) Create(c *gin.Context) {
	form := decodeRecipeForm(c)

	if _, err := h.recipes.CreateRecipe(c.Request.Context(), form.Recipe()); err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			session.Flash(c, "A recipe with that name already exists")
			c.Redirect(http.StatusFound, "/new")
			return
		}
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	session.Flash(c, "Recipe added successfully")
	c.Redirect(http.StatusFound, "/new")
}

// List renders every recipe in the catalog
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "view.html", gin.H{
		"Recipes": recipes,
		"Flashes": session.Flashes(c),
	})
}

// Detail renders a single recipe. An unknown identifier renders the
// page with no recipe rather than a 404.
func (h *RecipeHandler) Detail(c *gin.Context) {
	id := uint(coerceCount(c.Param("id")))

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	data := gin.H{"Flashes": session.Flashes(c)}
	if recipe != nil {
		data["Recipe"] = recipe
	}
	c.HTML(http.StatusOK, "view.html", data)
}

// Update mutates every field of an existing recipe, keyed by the
// identifier submitted in the form body, then redirects to that
// identifier's detail view verbatim.
func (h *RecipeHandler) Update(c *gin.Context) {
	form := decodeRecipeForm(c)

	if _, err := h.recipes.UpdateRecipe(c.Request.Context(), form.RecipeID, form.Recipe()); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			session.Flash(c, "Recipe not found")
			c.Redirect(http.StatusFound, "/view")
		case errors.Is(err, service.ErrDuplicateName):
			session.Flash(c, "A recipe with that name already exists")
			c.Redirect(http.StatusFound, "/view/"+form.RawRecipeID)
		default:
			c.String(http.StatusInternalServerError, "internal server error")
		}
		return
	}

	session.Flash(c, "Recipe updated successfully")
	c.Redirect(http.StatusFound, "/view/"+form.RawRecipeID)
}

// Search renders every recipe whose name or ingredients contain the
// query, via the same listing template.
func (h *RecipeHandler) Search(c *gin.Context) {
	query := c.Query("q")

	recipes, err := h.recipes.SearchRecipes(c.Request.Context(), query)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	flashes := session.Flashes(c)
	if len(recipes) == 0 {
		flashes = append(flashes, "No items found")
	}

	c.HTML(http.StatusOK, "view.html", gin.H{
		"Recipes": recipes,
		"Flashes": flashes,
	})
}
