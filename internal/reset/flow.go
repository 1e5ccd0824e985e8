// Package reset implements the master-password reset flow: issuing a
// short-lived verification code to the registered recovery email and
// validating it. Delivery is delegated to a [Notifier]; the code is
// persisted before delivery is attempted, so a failed send never loses it.
package reset

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"passvault/internal/logger"
	"passvault/internal/store"
	"passvault/models"
)

//go:generate mockgen -source=flow.go -destination=../mock/notifier_mock.go -package=mock

// codeValidity is how long an issued verification code stays usable.
const codeValidity = 5 * time.Minute

// ErrExpiredOrInvalidCode is returned by [Flow.Verify] when no code is
// stored for the address, the entered code does not match, or the validity
// window has passed. The stored code survives a failed attempt so the user
// can retry until it expires.
var ErrExpiredOrInvalidCode = errors.New("expired or invalid verification code")

// Notifier is the external delivery capability for reset codes. Failures
// are logged, never retried automatically.
type Notifier interface {
	Send(ctx context.Context, address, subject, body string) error
}

// Flow issues and validates verification codes for master-password reset.
type Flow struct {
	codes    store.CodeRepository
	notifier Notifier
	logger   *logger.Logger

	// now is the clock source; replaced in tests.
	now func() time.Time
}

// NewFlow constructs a reset [Flow] over the given code repository and
// notifier.
func NewFlow(codes store.CodeRepository, notifier Notifier, logger *logger.Logger) *Flow {
	return &Flow{
		codes:    codes,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Initiate generates a fresh 6-digit code for email, stores it (replacing
// any previous code for the address), and hands it to the notifier for
// delivery. The code is committed before the send, so a delivery failure is
// logged and reported without invalidating the stored code.
func (f *Flow) Initiate(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}

	record := models.VerificationCode{
		Email:     email,
		Code:      code,
		CreatedAt: f.now(),
	}
	if err := f.codes.Upsert(ctx, record); err != nil {
		return "", fmt.Errorf("store verification code: %w", err)
	}

	subject := "Your Password Reset Code"
	body := fmt.Sprintf("Your password reset verification code is: %s\nThis code expires in 5 minutes.", code)
	if err := f.notifier.Send(ctx, email, subject, body); err != nil {
		log.Err(err).
			Str("func", "*Flow.Initiate").
			Str("email", email).
			Msg("failed to deliver verification code")
		return code, fmt.Errorf("deliver verification code: %w", err)
	}

	log.Info().
		Str("func", "*Flow.Initiate").
		Str("email", email).
		Msg("verification code issued")
	return code, nil
}

// Verify checks enteredCode against the stored code for email. On success
// the code is deleted (single-use); on any failure it is left intact.
// Returns [ErrExpiredOrInvalidCode] for a missing, mismatched, or expired
// code.
func (f *Flow) Verify(ctx context.Context, email, enteredCode string) error {
	log := logger.FromContext(ctx)

	record, err := f.codes.Get(ctx, email)
	if errors.Is(err, store.ErrCodeNotFound) {
		return ErrExpiredOrInvalidCode
	}
	if err != nil {
		return fmt.Errorf("load verification code: %w", err)
	}

	if record.Code != enteredCode || f.now().After(record.CreatedAt.Add(codeValidity)) {
		return ErrExpiredOrInvalidCode
	}

	if err := f.codes.Delete(ctx, email); err != nil {
		return fmt.Errorf("consume verification code: %w", err)
	}

	log.Info().
		Str("func", "*Flow.Verify").
		Str("email", email).
		Msg("verification code accepted")
	return nil
}

// generateCode draws a uniform 6-digit code in [100000, 999999] from the OS
// CSPRNG.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
