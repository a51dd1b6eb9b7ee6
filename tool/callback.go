package tool

import (
	"github.com/gin-gonic/gin"
)

// Response helpers matching the backend's {status, data|message} envelope so
// the presentation layer decodes one shape everywhere.

func FastReturnError(msg string) gin.H {
	return gin.H{
		"status":  "error",
		"message": msg,
	}
}

func FastReturnSuccess() gin.H {
	return gin.H{
		"status": "success",
	}
}

func FastReturnSuccessWithData(data any) gin.H {
	return gin.H{
		"status": "success",
		"data":   data,
	}
}
