package router

import (
	"bobTheBar/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupCollectionRoutes(api *echo.Group, handler *rest.CollectionHandler) {
	collection := api.Group("/collection")

	collection.POST("/analyze", handler.Analyze)
	collection.POST("/recommendations", handler.Recommendations)
}

func SetupBottleRoutes(api *echo.Group, handler *rest.BottleHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	bottles := api.Group("/bottles")

	bottles.GET("", handler.GetAllBottles)
	bottles.GET("/:id", handler.GetBottleByID)
	bottles.POST("", handler.CreateBottle, authRequired, adminOnly)
}

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.GET("/me", handler.Me, authRequired)
}
