package routes

import (
	controller "go-ordering-storefront/controllers"

	"github.com/gin-gonic/gin"
)

func CatalogRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/meals", controller.GetMeals())
	incomingRoutes.GET("/meals/:meal_id", controller.GetMeal())
	incomingRoutes.GET("/drinks", controller.GetDrinks())
	incomingRoutes.GET("/drinks/:drink_id", controller.GetDrink())
	incomingRoutes.GET("/categories", controller.GetCategories())
	incomingRoutes.GET("/categories/:slug", controller.GetCategory())
	incomingRoutes.GET("/ingredients", controller.GetIngredients())
	incomingRoutes.GET("/ingredients/:ingredient_id", controller.GetIngredient())
}

func CatalogAdminRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/meals", controller.CreateMeal())
	incomingRoutes.PATCH("/meals/:meal_id", controller.UpdateMeal())
	incomingRoutes.POST("/drinks", controller.CreateDrink())
	incomingRoutes.PATCH("/drinks/:drink_id", controller.UpdateDrink())
	incomingRoutes.POST("/categories", controller.CreateCategory())
	incomingRoutes.PATCH("/categories/:category_id", controller.UpdateCategory())
	incomingRoutes.POST("/ingredients", controller.CreateIngredient())
	incomingRoutes.PATCH("/ingredients/:ingredient_id", controller.UpdateIngredient())
}
