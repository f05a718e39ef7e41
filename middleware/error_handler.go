package middleware

import (
	"net/http"

	"TripWeaver/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware maps errors attached to the context onto the
// response envelope. CustomError keeps its status, anything else is a
// plain 500.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if customErr, ok := err.(*utils.CustomError); ok {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
