package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS is a Gin middleware that permits cross-origin requests from a
// single configured origin (the frontend dev server by default).
//
// Behavior:
//   - Sets Access-Control-Allow-Origin to the configured origin on
//     every response.
//   - Answers preflight OPTIONS requests with an empty 204 before any
//     handler runs.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.CORS("http://localhost:5173"))
func CORS(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		h.Set("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
