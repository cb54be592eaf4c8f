package routes

import (
	controller "go-ordering-storefront/controllers"

	"github.com/gin-gonic/gin"
)

func UploadRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/upload", controller.UploadImage())
}
