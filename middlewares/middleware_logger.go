package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/LarzzCode/LarGarage/utils"
)

const RequestIDHeader = "X-Request-ID"

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		entry := utils.InfoLogger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"status":  status,
			"latency": latency.String(),
			"ip":      c.ClientIP(),
			"request": requestID,
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}
		entry.Info(path)
	}
}

// InvoiceLoggerMiddleware mencatat pembuatan invoice PDF per service
func InvoiceLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Sebelum request
		utils.InfoLogger.Printf("Generating invoice for service ID: %s", c.Param("service_id"))

		c.Next()

		// Setelah request
		if c.Writer.Status() == 200 {
			utils.InfoLogger.Printf("Invoice generated successfully for service ID: %s", c.Param("service_id"))
		} else {
			utils.ErrorLogger.Printf("Failed to generate invoice for service ID: %s", c.Param("service_id"))
		}
	}
}
