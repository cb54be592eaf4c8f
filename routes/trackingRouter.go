package routes

import (
	controller "go-ordering-storefront/controllers"

	"github.com/gin-gonic/gin"
)

func TrackingRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/track/:order_number", controller.TrackOrder())
	incomingRoutes.GET("/ws/track/:order_number", controller.WatchOrder())
	incomingRoutes.GET("/ws/orders", controller.OrderFeed())
}
