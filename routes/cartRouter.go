package routes

import (
	controller "go-ordering-storefront/controllers"

	"github.com/gin-gonic/gin"
)

func CartRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/cart", controller.CreateCartSession())
	incomingRoutes.GET("/cart/:session_id", controller.GetCart())
	incomingRoutes.POST("/cart/:session_id/items", controller.AddCartItem())
	incomingRoutes.PATCH("/cart/:session_id/items", controller.UpdateCartItem())
	incomingRoutes.DELETE("/cart/:session_id/items", controller.RemoveCartItem())
	incomingRoutes.DELETE("/cart/:session_id", controller.ClearCart())
}
