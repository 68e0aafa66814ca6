package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taruntarz/Kubernetes-resources/internal/config"
)

// GreetingResponse is the root endpoint response
type GreetingResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// VersionResponse reports the configured application version
type VersionResponse struct {
	Version string `json:"version"`
	App     string `json:"app"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleRoot handles the root greeting
func (s *Server) handleRoot(c *gin.Context) {
	s.logger.Info("root endpoint accessed")

	c.JSON(http.StatusOK, GreetingResponse{
		Message: fmt.Sprintf("Hello from %s %s!", config.AppName, s.version),
		Status:  "running",
	})
}

// handleVersion reports the configured version
func (s *Server) handleVersion(c *gin.Context) {
	s.logger.Info("version endpoint accessed")

	c.JSON(http.StatusOK, VersionResponse{
		Version: s.version,
		App:     config.AppName,
	})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	s.logger.Info("health check endpoint accessed")

	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: s.version,
	})
}

// handlePredict serves one mock prediction
func (s *Server) handlePredict(c *gin.Context) {
	s.logger.Info("prediction endpoint accessed")

	c.JSON(http.StatusOK, s.predictor.Predict())
}

// handleNotFound answers requests for unknown routes
func (s *Server) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: ErrorDetail{
			Code:    "NOT_FOUND",
			Message: fmt.Sprintf("no route for %s", c.Request.URL.Path),
		},
	})
}

// handleMethodNotAllowed answers non-GET requests to known routes
func (s *Server) handleMethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
		Error: ErrorDetail{
			Code:    "METHOD_NOT_ALLOWED",
			Message: fmt.Sprintf("method %s not allowed", c.Request.Method),
		},
	})
}
