package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/VSaini11/dwv-api/internal/domain"
	"github.com/VSaini11/dwv-api/internal/metrics"
	pkgemail "github.com/VSaini11/dwv-api/internal/pkg/email"
	"github.com/VSaini11/dwv-api/internal/pkg/id"
)

// Intent flags for code issuance.
const (
	TypeSignup = "signup"
	TypeSignin = "signin"
)

type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Type  string `json:"type" validate:"required,oneof=signup signin"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type Service interface {
	// SendOTP issues a fresh 6-digit code for the email and mails it.
	// Intent mismatches fail before any code is generated.
	SendOTP(ctx context.Context, req SendOTPRequest) error
	// VerifyOTP consumes a pending code, finds or creates the user, and
	// returns a signed session token with the user projection.
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (token string, user *domain.User, err error)
}

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

type OtpStore interface {
	Put(ctx context.Context, o *domain.Otp) error
	Get(ctx context.Context, email string) (*domain.Otp, error)
	Delete(ctx context.Context, email string) error
}

type Mailer interface {
	SendEmail(to, subject, body string) error
}

type TokenSigner interface {
	Sign(userID, email string) (string, error)
}

// ServiceDeps carries the collaborators; every field is required.
type ServiceDeps struct {
	UserRepo UserStore
	OtpRepo  OtpStore
	Mailer   Mailer
	Signer   TokenSigner
	OTPTTL   time.Duration
}

type service struct {
	users  UserStore
	otps   OtpStore
	mailer Mailer
	signer TokenSigner
	otpTTL time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		users:  deps.UserRepo,
		otps:   deps.OtpRepo,
		mailer: deps.Mailer,
		signer: deps.Signer,
		otpTTL: deps.OTPTTL,
	}
}

func (s *service) SendOTP(ctx context.Context, req SendOTPRequest) error {
	email := domain.NormalizeEmail(req.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errorsIsNotFound(err) {
		return err
	}

	// Signing up against an existing account, or signing in against a missing
	// one, tells the caller to switch intent instead of sending a code.
	if req.Type == TypeSignup && existing != nil {
		return fmt.Errorf("an account with this email already exists: %w", domain.ErrConflict)
	}
	if req.Type == TypeSignin && existing == nil {
		return fmt.Errorf("no account found with this email: %w", domain.ErrNotFound)
	}

	code, err := newCode()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o := &domain.Otp{
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(s.otpTTL).Unix(),
		CreatedAt: now,
	}
	// PutItem on the email key replaces any pending code for this address.
	if err := s.otps.Put(ctx, o); err != nil {
		return err
	}

	if err := s.mailer.SendEmail(email, "Your OTP Code", pkgemail.OTPBody(code, s.otpTTL)); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}
	metrics.OTPIssuedTotal.Inc()
	return nil
}

func (s *service) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (string, *domain.User, error) {
	email := domain.NormalizeEmail(req.Email)

	o, err := s.otps.Get(ctx, email)
	if err != nil {
		// Only a missing record is the caller's fault; a store failure must
		// surface as an internal error, not a rejected code.
		if errorsIsNotFound(err) {
			return "", nil, fmt.Errorf("invalid or expired OTP: %w", domain.ErrBadRequest)
		}
		return "", nil, err
	}
	if o.Code != req.OTP {
		return "", nil, fmt.Errorf("invalid or expired OTP: %w", domain.ErrBadRequest)
	}
	if o.Expired(time.Now()) {
		return "", nil, fmt.Errorf("invalid or expired OTP: %w", domain.ErrBadRequest)
	}

	// Single-use: the record is gone before a token is minted. The Dynamo TTL
	// is only a janitor; this delete is what enforces one verification.
	if err := s.otps.Delete(ctx, email); err != nil {
		slog.Warn("failed to delete consumed OTP", "email", email, "err", err)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errorsIsNotFound(err) {
			return "", nil, err
		}
		u = &domain.User{
			UserID:    id.New(),
			Email:     email,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.users.Put(ctx, u); err != nil {
			return "", nil, err
		}
	}

	token, err := s.signer.Sign(u.UserID, u.Email)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// newCode draws a uniform 6-digit code from [100000, 999999].
func newCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func errorsIsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
