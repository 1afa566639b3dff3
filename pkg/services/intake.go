package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/navarrastar/resume-verify/pkg/models"
	"github.com/navarrastar/resume-verify/pkg/utils"
)

// VerificationRequestService accepts submissions that passed the endpoint's presence check
type VerificationRequestService interface {
	ReceiveVerificationRequest(ctx context.Context, data models.Submission) models.VerificationResult
}

type verificationRequestServiceImpl struct {
	logger *logrus.Logger
}

// NewVerificationRequestService creates the development stub that acknowledges and echoes
// submissions. A scheduling backend would enqueue the call here and return ScheduledTime.
func NewVerificationRequestService(logger *logrus.Logger) VerificationRequestService {
	if logger == nil {
		logger = utils.Logger
	}
	return &verificationRequestServiceImpl{logger: logger}
}

// ReceiveVerificationRequest logs the request and builds the acknowledgement body
func (s *verificationRequestServiceImpl) ReceiveVerificationRequest(ctx context.Context, data models.Submission) models.VerificationResult {
	s.logger.WithFields(logrus.Fields{
		"email":    data.Email,
		"linkedin": data.LinkedIn,
		"phone":    utils.PhoneFingerprint(data.Phone),
	}).Info("Verification request received")

	echo := data
	return models.VerificationResult{
		Success: true,
		Message: "Verification request received",
		Data:    &echo,
	}
}
