package middleware

import "github.com/gin-gonic/gin"

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH, CONNECT, TRACE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Via, X-Request-ID")
		// browsers need these to read the count and request id headers
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Item-Length, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		c.Next()
	}
}
