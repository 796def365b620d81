package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/VSaini11/dwv-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) Put(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

type mockSigner struct{ mock.Mock }

func (m *mockSigner) Sign(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

// fakeOtpStore is a stateful in-memory store: issuance overwrite and
// delete-on-verify behave like the real table, which the reissue and
// single-use tests depend on.
type fakeOtpStore struct {
	m map[string]*domain.Otp
}

func newFakeOtpStore() *fakeOtpStore { return &fakeOtpStore{m: make(map[string]*domain.Otp)} }

func (f *fakeOtpStore) Put(_ context.Context, o *domain.Otp) error {
	cp := *o
	f.m[o.Email] = &cp
	return nil
}
func (f *fakeOtpStore) Get(_ context.Context, email string) (*domain.Otp, error) {
	o, ok := f.m[email]
	if !ok {
		return nil, fmt.Errorf("otp for %s: %w", email, domain.ErrNotFound)
	}
	cp := *o
	return &cp, nil
}
func (f *fakeOtpStore) Delete(_ context.Context, email string) error {
	delete(f.m, email)
	return nil
}

// failingOtpStore simulates an unavailable table.
type failingOtpStore struct{ err error }

func (f *failingOtpStore) Put(context.Context, *domain.Otp) error { return f.err }
func (f *failingOtpStore) Get(context.Context, string) (*domain.Otp, error) {
	return nil, f.err
}
func (f *failingOtpStore) Delete(context.Context, string) error { return f.err }

// --- helpers ---

func newAuthService(us *mockUserStore, otps OtpStore, ml *mockMailer, sg *mockSigner) Service {
	return NewService(ServiceDeps{
		UserRepo: us,
		OtpRepo:  otps,
		Mailer:   ml,
		Signer:   sg,
		OTPTTL:   10 * time.Minute,
	})
}

// --- SendOTP tests ---

func TestSendOTP_SignupAgainstExistingEmail_Conflicts(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(&domain.User{UserID: "u1"}, nil)
	ml := &mockMailer{}

	svc := newAuthService(us, newFakeOtpStore(), ml, nil)
	err := svc.SendOTP(context.Background(), SendOTPRequest{Email: "a@x.com", Type: TypeSignup})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	ml.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendOTP_SigninAgainstUnknownEmail_NotFound(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "ghost@x.com").Return(nil, domain.ErrNotFound)
	ml := &mockMailer{}

	svc := newAuthService(us, newFakeOtpStore(), ml, nil)
	err := svc.SendOTP(context.Background(), SendOTPRequest{Email: "ghost@x.com", Type: TypeSignin})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	ml.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendOTP_HappyPath_StoresCodeAndSendsOneEmail(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, domain.ErrNotFound)
	ml := &mockMailer{}
	ml.On("SendEmail", "a@x.com", "Your OTP Code", mock.Anything).Return(nil).Once()
	otps := newFakeOtpStore()

	svc := newAuthService(us, otps, ml, nil)
	err := svc.SendOTP(context.Background(), SendOTPRequest{Email: "a@x.com", Type: TypeSignup})

	require.NoError(t, err)
	stored := otps.m["a@x.com"]
	require.NotNil(t, stored)
	assert.Len(t, stored.Code, 6)
	assert.GreaterOrEqual(t, stored.Code, "100000")
	assert.LessOrEqual(t, stored.Code, "999999")
	assert.Greater(t, stored.ExpiresAt, time.Now().Unix())
	ml.AssertExpectations(t)
}

func TestSendOTP_NormalizesEmail(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, domain.ErrNotFound)
	ml := &mockMailer{}
	ml.On("SendEmail", "a@x.com", mock.Anything, mock.Anything).Return(nil)
	otps := newFakeOtpStore()

	svc := newAuthService(us, otps, ml, nil)
	err := svc.SendOTP(context.Background(), SendOTPRequest{Email: "  A@X.com ", Type: TypeSignup})

	require.NoError(t, err)
	assert.Contains(t, otps.m, "a@x.com")
}

func TestSendOTP_MailFailure_Surfaces(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, domain.ErrNotFound)
	ml := &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := newAuthService(us, newFakeOtpStore(), ml, nil)
	err := svc.SendOTP(context.Background(), SendOTPRequest{Email: "a@x.com", Type: TypeSignup})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrConflict))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

// --- VerifyOTP tests ---

func TestVerifyOTP_WrongCode_Fails(t *testing.T) {
	otps := newFakeOtpStore()
	require.NoError(t, otps.Put(context.Background(), &domain.Otp{
		Email: "a@x.com", Code: "123456", ExpiresAt: time.Now().Add(time.Minute).Unix(),
	}))

	svc := newAuthService(&mockUserStore{}, otps, &mockMailer{}, &mockSigner{})
	_, _, err := svc.VerifyOTP(context.Background(), VerifyOTPRequest{Email: "a@x.com", OTP: "000000"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	// A wrong guess does not consume the pending code.
	assert.Contains(t, otps.m, "a@x.com")
}

func TestVerifyOTP_ExpiredCode_Fails(t *testing.T) {
	otps := newFakeOtpStore()
	require.NoError(t, otps.Put(context.Background(), &domain.Otp{
		Email: "a@x.com", Code: "123456", ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}))

	svc := newAuthService(&mockUserStore{}, otps, &mockMailer{}, &mockSigner{})
	_, _, err := svc.VerifyOTP(context.Background(), VerifyOTPRequest{Email: "a@x.com", OTP: "123456"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestVerifyOTP_StoreFailure_NotAClientFault(t *testing.T) {
	otps := &failingOtpStore{err: errors.New("dynamodb: connection refused")}

	svc := newAuthService(&mockUserStore{}, otps, &mockMailer{}, &mockSigner{})
	_, _, err := svc.VerifyOTP(context.Background(), VerifyOTPRequest{Email: "a@x.com", OTP: "123456"})

	// An unreachable store is an internal error; it must not come back as the
	// invalid-code rejection.
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrBadRequest))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestVerifyOTP_CreatesUserAndMintsToken(t *testing.T) {
	otps := newFakeOtpStore()
	require.NoError(t, otps.Put(context.Background(), &domain.Otp{
		Email: "a@x.com", Code: "123456", ExpiresAt: time.Now().Add(time.Minute).Unix(),
	}))

	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, domain.ErrNotFound)
	us.On("Put", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()
	sg := &mockSigner{}
	sg.On("Sign", mock.Anything, "a@x.com").Return("signed-token", nil)

	svc := newAuthService(us, otps, &mockMailer{}, sg)
	token, user, err := svc.VerifyOTP(context.Background(), VerifyOTPRequest{Email: "a@x.com", OTP: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEmpty(t, user.UserID)
	// Consumed: the record is gone.
	assert.NotContains(t, otps.m, "a@x.com")
	us.AssertExpectations(t)
}

func TestVerifyOTP_ExistingUser_NotRecreated(t *testing.T) {
	otps := newFakeOtpStore()
	require.NoError(t, otps.Put(context.Background(), &domain.Otp{
		Email: "a@x.com", Code: "123456", ExpiresAt: time.Now().Add(time.Minute).Unix(),
	}))

	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(&domain.User{UserID: "u1", Email: "a@x.com"}, nil)
	sg := &mockSigner{}
	sg.On("Sign", "u1", "a@x.com").Return("signed-token", nil)

	svc := newAuthService(us, otps, &mockMailer{}, sg)
	_, user, err := svc.VerifyOTP(context.Background(), VerifyOTPRequest{Email: "a@x.com", OTP: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
	us.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestVerifyOTP_SingleUse(t *testing.T) {
	otps := newFakeOtpStore()
	require.NoError(t, otps.Put(context.Background(), &domain.Otp{
		Email: "a@x.com", Code: "123456", ExpiresAt: time.Now().Add(time.Minute).Unix(),
	}))

	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(&domain.User{UserID: "u1", Email: "a@x.com"}, nil)
	sg := &mockSigner{}
	sg.On("Sign", mock.Anything, mock.Anything).Return("signed-token", nil)

	svc := newAuthService(us, otps, &mockMailer{}, sg)
	req := VerifyOTPRequest{Email: "a@x.com", OTP: "123456"}

	_, _, err := svc.VerifyOTP(context.Background(), req)
	require.NoError(t, err)

	_, _, err = svc.VerifyOTP(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestReissue_InvalidatesPriorCode(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(&domain.User{UserID: "u1", Email: "a@x.com"}, nil)
	ml := &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sg := &mockSigner{}
	sg.On("Sign", mock.Anything, mock.Anything).Return("signed-token", nil)
	otps := newFakeOtpStore()

	svc := newAuthService(us, otps, ml, sg)

	require.NoError(t, svc.SendOTP(context.Background(), SendOTPRequest{Email: "a@x.com", Type: TypeSignin}))
	first := otps.m["a@x.com"].Code

	require.NoError(t, svc.SendOTP(context.Background(), SendOTPRequest{Email: "a@x.com", Type: TypeSignin}))
	second := otps.m["a@x.com"].Code

	// The store holds one record per email, so the first code is dead once
	// the second is issued. Skip the stale-code check on the rare collision.
	if first != second {
		_, _, err := svc.VerifyOTP(context.Background(), VerifyOTPRequest{Email: "a@x.com", OTP: first})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	}

	_, _, err := svc.VerifyOTP(context.Background(), VerifyOTPRequest{Email: "a@x.com", OTP: second})
	require.NoError(t, err)
}
