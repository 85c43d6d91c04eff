package middlewares

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger логирует каждый запрос с задержкой и статусом.
// Ошибки уровня 5xx помечаются отдельно, чтобы их было видно в логах
// без настройки фильтров.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)

		if status >= 500 {
			log.Printf("[HTTP] ERROR %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
			return
		}
		log.Printf("[HTTP] %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
	}
}
