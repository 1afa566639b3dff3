package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/navarrastar/resume-verify/pkg/middleware"
)

// NewRouter registers every route on a gin engine with the default middleware
func NewRouter(h *Handlers, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.Metrics())

	router.GET("/", h.Index)
	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/start", h.HandleStart)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		router.Handle(method, "/voice", h.HandleVoice)
		router.Handle(method, "/incoming-call", h.HandleIncomingCall)
	}

	return router
}
