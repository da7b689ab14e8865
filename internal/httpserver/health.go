package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "gemini-playground/pkg/errors"
	"gemini-playground/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Gemini Playground is up"
	HealthVersion = "1.0.0"
	ServiceName   = "gemini-playground"
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "gemini client not configured")

func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck reports ready once the Gemini client is wired.
// @Summary Readiness Check
// @Description Check if the API is ready to serve generation traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.gemini == nil {
		response.Error(c, errNotReady)
		return
	}
	body := healthBody("ready")
	body["default_model"] = srv.gemini.DefaultModel()
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}
