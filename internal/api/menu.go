package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/menubook/backend/internal/middleware"
	"github.com/menubook/backend/internal/model"
	"github.com/menubook/backend/internal/service"
	"github.com/menubook/backend/internal/session"
)

// MenuHandler serves the session-scoped menu pages
type MenuHandler struct {
	menu    service.IMenuService
	recipes service.IRecipeService
}

// NewMenuHandler creates a new MenuHandler instance
func NewMenuHandler(menu service.IMenuService, recipes service.IRecipeService) *MenuHandler {
	return &MenuHandler{menu: menu, recipes: recipes}
}

// RegisterRoutes registers the menu routes
func (h *MenuHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/menu", h.View)
	router.POST("/menu", h.Mutate)
}

// View renders the session's menu in stored order, resolving each entry
// to its recipe. Entries whose recipe no longer resolves render as
// empty rows rather than failing the page.
func (h *MenuHandler) View(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	tokens, err := h.menu.Items(c.Request.Context(), sessionID)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	var recipes []*model.Recipe
	for _, token := range tokens {
		recipe, err := h.recipes.GetRecipe(c.Request.Context(), uint(coerceCount(token)))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				recipes = append(recipes, nil)
				continue
			}
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}
		recipes = append(recipes, recipe)
	}

	c.HTML(http.StatusOK, "menu.html", gin.H{
		"Recipes": recipes,
		"Flashes": session.Flashes(c),
	})
}

// Mutate updates the session's menu. The form carries exactly one of
// four mutually exclusive fields, checked in precedence order: reset,
// remove-one, add-N-random, add-one.
func (h *MenuHandler) Mutate(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := middleware.SessionID(c)

	switch {
	case c.PostForm("reset_menu") != "":
		if err := h.menu.Reset(ctx, sessionID); err != nil {
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}
		session.Flash(c, "Menu has been cleared")

	case c.PostForm("remove_menu_item") != "":
		token := strconv.Itoa(coerceCount(c.PostForm("remove_menu_item")))
		if err := h.menu.RemoveItem(ctx, sessionID, token); err != nil {
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}

	case c.PostForm("add_random_count") != "":
		count := coerceCount(c.PostForm("add_random_count"))
		result, err := h.menu.AddRandom(ctx, sessionID, count)
		if err != nil {
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}
		if result.Exhausted {
			session.Flash(c, "Not able to find enough recipes")
		}
		session.Flash(c, "Random recipes added")

	default:
		token := strconv.Itoa(coerceCount(c.PostForm("recipeID")))
		added, err := h.menu.AddItem(ctx, sessionID, token)
		if err != nil {
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}
		if !added {
			session.Flash(c, "Recipe already added to menu.")
		}
	}

	c.Redirect(http.StatusFound, "/menu")
}
