package api

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/navarrastar/resume-verify/pkg/clients/twilio"
	"github.com/navarrastar/resume-verify/pkg/middleware"
	"github.com/navarrastar/resume-verify/pkg/models"
	"github.com/navarrastar/resume-verify/pkg/services"
)

var validate = validator.New()

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	verificationService services.VerificationRequestService
	voice               twilio.VoiceResponder
	publicHost          string
	logger              *logrus.Logger
}

// NewHandlers creates a new Handlers instance.
// publicHost overrides the request host in media stream URLs when set.
func NewHandlers(
	verificationService services.VerificationRequestService,
	voice twilio.VoiceResponder,
	publicHost string,
	logger *logrus.Logger,
) *Handlers {
	return &Handlers{
		verificationService: verificationService,
		voice:               voice,
		publicHost:          publicHost,
		logger:              logger,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Index confirms the voice server is up
func (h *Handlers) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Twilio Media Stream Server is running!",
	})
}

// HandleStart accepts a verification request from the form
func (h *Handlers) HandleStart(c *gin.Context) {
	log := h.logger.WithField(middleware.RequestIDKey, c.GetString(middleware.RequestIDKey))

	var submission models.Submission
	if err := decodeSubmission(c.Request.Body, &submission); err != nil {
		log.WithError(err).Error("Error processing verification request")
		middleware.VerificationRequestsTotal.WithLabelValues("malformed").Inc()
		c.JSON(http.StatusInternalServerError, models.VerificationResult{
			Success: false,
			Error:   "Failed to process verification request",
			Details: err.Error(),
		})
		return
	}

	if err := validate.Struct(submission); err != nil {
		log.WithError(err).Warn("Verification request missing fields")
		middleware.VerificationRequestsTotal.WithLabelValues("missing_fields").Inc()
		c.JSON(http.StatusBadRequest, models.VerificationResult{
			Success: false,
			Error:   "Missing required fields",
		})
		return
	}

	result := h.verificationService.ReceiveVerificationRequest(c.Request.Context(), submission)
	middleware.VerificationRequestsTotal.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusOK, result)
}

func decodeSubmission(body io.Reader, dst *models.Submission) error {
	if body == nil {
		return errors.New("empty request body")
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// HandleVoice answers a plain inbound call with the greeting
func (h *Handlers) HandleVoice(c *gin.Context) {
	doc, err := h.voice.Greeting()
	if err != nil {
		h.logger.WithError(err).Error("Error building voice response")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml", []byte(doc))
}

// HandleIncomingCall connects an inbound call to the AI agent's media stream
func (h *Handlers) HandleIncomingCall(c *gin.Context) {
	host := h.publicHost
	if host == "" {
		host = c.Request.Host
		if hostname, _, err := net.SplitHostPort(host); err == nil {
			host = hostname
		}
	}

	doc, err := h.voice.ConnectMediaStream(host)
	if err != nil {
		h.logger.WithError(err).Error("Error building incoming call response")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml", []byte(doc))
}
