package routes

import (
	controller "go-ordering-storefront/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/orders", controller.CreateOrder())
	incomingRoutes.GET("/orders/:order_number", controller.GetOrder())
}

func OrderAdminRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.PATCH("/orders/:order_number/status", controller.UpdateOrderStatus())
}
