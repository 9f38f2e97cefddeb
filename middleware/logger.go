package middleware

import (
	"gamereviews/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs all incoming HTTP requests
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime)
		statusCode := c.Writer.Status()

		logLevel := logrus.InfoLevel
		if statusCode >= 500 {
			logLevel = logrus.ErrorLevel
		} else if statusCode >= 400 {
			logLevel = logrus.WarnLevel
		}

		fields := logrus.Fields{
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"status":        statusCode,
			"duration_ms":   duration.Milliseconds(),
			"ip":            c.ClientIP(),
			"query":         c.Request.URL.RawQuery,
			"response_size": c.Writer.Size(),
		}

		// Add the subject when the request was authenticated
		if sub, exists := c.Get("auth0_id"); exists {
			fields["auth0_id"] = sub
		}

		utils.Log.WithFields(fields).Log(logLevel, "HTTP Request")
	}
}
