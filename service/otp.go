package service

import (
	"context"
	"errors"
	"luxefurnish/domain"
	"luxefurnish/utils"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

const otpEmailSubject = "Your OTP Code for Order Confirmation"

var (
	otpSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "otp_sent_total",
		Help: "OTP emails by delivery result.",
	}, []string{"result"})

	otpVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "otp_verifications_total",
		Help: "OTP verification attempts by outcome.",
	}, []string{"result"})
)

type otpService struct {
	otpRepo   domain.OTPRepository
	orderRepo domain.OrderRepository
	mailer    domain.Mailer
	events    domain.OrderEventPublisher
	ttl       time.Duration
	now       func() time.Time
}

func NewOTPService(otpRepo domain.OTPRepository, orderRepo domain.OrderRepository, mailer domain.Mailer, events domain.OrderEventPublisher, ttl time.Duration) domain.OTPUseCase {
	return &otpService{
		otpRepo:   otpRepo,
		orderRepo: orderRepo,
		mailer:    mailer,
		events:    events,
		ttl:       ttl,
		now:       time.Now,
	}
}

// SendOTP issues a fresh code for email, replacing any earlier one, and mails it.
func (s *otpService) SendOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domain.NewError(domain.ErrValidation, "Email is required")
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	if err := s.otpRepo.SaveOTP(ctx, email, code, s.ttl); err != nil {
		return err
	}

	body, err := utils.RenderOTPEmail(email, code, s.ttl)
	if err != nil {
		return err
	}

	if err := s.mailer.SendEmail(ctx, email, otpEmailSubject, body); err != nil {
		otpSent.WithLabelValues("failed").Inc()
		log.Error().Err(err).Str("email", email).Msg("failed to send OTP email")
		// the code never reached the customer
		if delErr := s.otpRepo.DeleteOTP(context.WithoutCancel(ctx), email); delErr != nil {
			log.Warn().Err(delErr).Str("email", email).Msg("failed to drop undelivered OTP")
		}
		return domain.ErrSendFailure
	}

	otpSent.WithLabelValues("sent").Inc()
	return nil
}

// VerifyOTP consumes the code stored for email and marks the order verified.
// A wrong code leaves the stored code in place for another attempt.
func (s *otpService) VerifyOTP(ctx context.Context, email, code, orderID string) (*domain.Order, error) {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" || orderID == "" {
		return nil, domain.NewError(domain.ErrValidation, "Email, OTP, and Order ID are required")
	}

	entry, err := s.otpRepo.GetOTP(ctx, email)
	if err != nil {
		s.countVerification(err)
		return nil, err
	}
	if !entry.ExpiresAt.IsZero() && !s.now().Before(entry.ExpiresAt) {
		s.countVerification(domain.ErrOTPNotFound)
		return nil, domain.ErrOTPNotFound
	}

	if !isValidID(orderID) {
		s.countVerification(domain.ErrOrderNotFound)
		return nil, domain.ErrOrderNotFound
	}
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		s.countVerification(err)
		return nil, err
	}

	ok, err := s.otpRepo.ConsumeOTP(ctx, email, code)
	if err != nil {
		s.countVerification(err)
		return nil, err
	}
	if !ok {
		s.countVerification(domain.ErrInvalidOTP)
		return nil, domain.ErrInvalidOTP
	}

	verifiedAt := s.now().UTC()
	if err := s.orderRepo.MarkOrderVerified(ctx, order.ID, verifiedAt); err != nil {
		s.countVerification(err)
		s.restoreOTP(ctx, email, code, entry.ExpiresAt)
		return nil, err
	}
	order.Status = domain.StatusPending
	order.Verified = true
	order.VerifiedAt = &verifiedAt

	s.countVerification(nil)
	log.Info().Str("order_id", order.ID).Str("email", email).Msg("order verified by OTP")
	publishOrderEvent(ctx, s.events, domain.EventOrderConfirmed, order)
	return order, nil
}

// restoreOTP puts a consumed code back for the rest of its lifetime so the
// customer can retry after a failed order write.
func (s *otpService) restoreOTP(ctx context.Context, email, code string, expiresAt time.Time) {
	ttl := s.ttl
	if !expiresAt.IsZero() {
		ttl = expiresAt.Sub(s.now())
	}
	if ttl <= 0 {
		return
	}
	if err := s.otpRepo.SaveOTP(context.WithoutCancel(ctx), email, code, ttl); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("failed to restore OTP after order update error")
	}
}

func (s *otpService) countVerification(err error) {
	var result string
	switch {
	case err == nil:
		result = "verified"
	case errors.Is(err, domain.ErrInvalidOTP):
		result = "invalid"
	case errors.Is(err, domain.ErrOTPNotFound):
		result = "expired"
	case errors.Is(err, domain.ErrOrderNotFound):
		result = "order_not_found"
	default:
		result = "error"
	}
	otpVerifications.WithLabelValues(result).Inc()
}
