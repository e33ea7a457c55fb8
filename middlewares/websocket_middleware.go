package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LarzzCode/LarGarage/utils"
)

// WebSocketAuthMiddleware membaca token dari query ?token= karena browser
// tidak bisa mengirim header Authorization saat membuka websocket
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set("role", claims.Role)
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
