package router

import (
	"github.com/gin-gonic/gin"

	"github.com/menubook/backend/internal/api"
	"github.com/menubook/backend/internal/middleware"
	"github.com/menubook/backend/internal/session"
)

// SetupRouter configures the application routes
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	menuHandler *api.MenuHandler,
	sessions *session.Manager,
	templatesGlob string,
) *gin.Engine {
	router := gin.Default()
	router.LoadHTMLGlob(templatesGlob)

	// Every route runs behind the session bootstrap
	router.Use(middleware.Session(sessions))

	recipeHandler.RegisterRoutes(router)
	menuHandler.RegisterRoutes(router)

	return router
}
