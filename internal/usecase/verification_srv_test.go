package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"article-service/internal/data/entity"
	"article-service/internal/data/repository"
	"article-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhone = "+15551234567"

func newVerificationFixture() (*repository.Repository, *fakeCodeRepo, *fakeSender, VerificationService, uuid.UUID) {
	users := newFakeUserRepo()
	codes := newFakeCodeRepo()
	sender := &fakeSender{}

	userID := uuid.New()
	users.users[userID] = &entity.User{
		Base:         entity.Base{ID: userID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Email:        "a@x.com",
		FullName:     "Alice Anderson",
		PhoneNumber:  testPhone,
		PasswordHash: mustHash("oldpassword"),
	}

	repo := &repository.Repository{
		User:             &resettingUserRepo{fakeUserRepo: users, codes: codes},
		VerificationCode: codes,
	}

	s := NewVerificationService(repo, sender, testConfig(), testLogger())
	return repo, codes, sender, s, userID
}

func latestCode(t *testing.T, codes *fakeCodeRepo, userID uuid.UUID) *entity.VerificationCode {
	t.Helper()
	code, err := codes.FindLatestByUser(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, code)
	return code
}

func TestForgotPassword_UnknownPhone(t *testing.T) {
	_, codes, sender, s, _ := newVerificationFixture()

	err := s.ForgotPassword(context.Background(), "+19990000000")
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, codes.codes)
	assert.Empty(t, sender.sent)
}

func TestForgotPassword_IssuesAndDispatches(t *testing.T) {
	_, codes, sender, s, userID := newVerificationFixture()

	require.NoError(t, s.ForgotPassword(context.Background(), testPhone))

	code := latestCode(t, codes, userID)
	assert.Len(t, code.Code, 6)
	assert.False(t, code.Verified)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), code.ExpiresAt, 5*time.Second)

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], code.Code)
}

func TestForgotPassword_DispatchFailureLeavesCode(t *testing.T) {
	_, codes, sender, s, userID := newVerificationFixture()
	sender.err = errors.New("gateway unreachable")

	err := s.ForgotPassword(context.Background(), testPhone)
	require.ErrorIs(t, err, ErrDispatchFailed)

	// Persist-then-dispatch: the code row stays behind
	code := latestCode(t, codes, userID)
	assert.False(t, code.Verified)
}

func TestVerifyCode_FullFlow(t *testing.T) {
	_, codes, _, s, userID := newVerificationFixture()

	require.NoError(t, s.ForgotPassword(context.Background(), testPhone))
	issued := latestCode(t, codes, userID)

	require.NoError(t, s.VerifyCode(context.Background(), testPhone, issued.Code))
	assert.True(t, latestCode(t, codes, userID).Verified)
}

func TestVerifyCode_Failures(t *testing.T) {
	_, codes, _, s, userID := newVerificationFixture()

	// No code registered yet
	err := s.VerifyCode(context.Background(), testPhone, "123456")
	require.ErrorIs(t, err, ErrNoCodeRegistered)

	// Unknown phone
	err = s.VerifyCode(context.Background(), "+19990000000", "123456")
	require.ErrorIs(t, err, ErrPhoneNotFound)

	require.NoError(t, s.ForgotPassword(context.Background(), testPhone))
	issued := latestCode(t, codes, userID)

	// Mismatching code does not flip verified
	wrong := "000000"
	if wrong == issued.Code {
		wrong = "000001"
	}
	err = s.VerifyCode(context.Background(), testPhone, wrong)
	require.ErrorIs(t, err, ErrCodeMismatch)
	assert.False(t, latestCode(t, codes, userID).Verified)
}

func TestVerifyCode_Expiry(t *testing.T) {
	_, codes, _, s, userID := newVerificationFixture()

	require.NoError(t, s.ForgotPassword(context.Background(), testPhone))
	issued := latestCode(t, codes, userID)

	// Past expiry fails
	codes.codes[issued.ID].ExpiresAt = time.Now().Add(-time.Second)
	err := s.VerifyCode(context.Background(), testPhone, issued.Code)
	require.ErrorIs(t, err, ErrCodeExpired)

	// Expiry comparison is strict: a code valid for a while longer passes
	codes.codes[issued.ID].ExpiresAt = time.Now().Add(time.Minute)
	require.NoError(t, s.VerifyCode(context.Background(), testPhone, issued.Code))
}

func TestResetPassword_GatedOnVerification(t *testing.T) {
	repo, codes, _, s, userID := newVerificationFixture()

	// Missing fields
	require.ErrorIs(t, s.ResetPassword(context.Background(), "", "newpassword1"), ErrMissingFields)
	require.ErrorIs(t, s.ResetPassword(context.Background(), testPhone, ""), ErrMissingFields)

	// Unknown phone
	require.ErrorIs(t, s.ResetPassword(context.Background(), "+19990000000", "newpassword1"), ErrPhoneNotFound)

	// No code registered
	require.ErrorIs(t, s.ResetPassword(context.Background(), testPhone, "newpassword1"), ErrNoCodeRegistered)

	// Unverified code
	require.NoError(t, s.ForgotPassword(context.Background(), testPhone))
	require.ErrorIs(t, s.ResetPassword(context.Background(), testPhone, "newpassword1"), ErrNotVerified)

	// Verified code allows the reset
	issued := latestCode(t, codes, userID)
	require.NoError(t, s.VerifyCode(context.Background(), testPhone, issued.Code))
	require.NoError(t, s.ResetPassword(context.Background(), testPhone, "newpassword1"))

	// New password authenticates
	user, err := repo.User.FindByID(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("newpassword1", user.PasswordHash))
	assert.False(t, utils.CheckPasswordHash("oldpassword", user.PasswordHash))
}

func TestResetPassword_ConsumesCode(t *testing.T) {
	_, codes, _, s, userID := newVerificationFixture()

	require.NoError(t, s.ForgotPassword(context.Background(), testPhone))
	issued := latestCode(t, codes, userID)
	require.NoError(t, s.VerifyCode(context.Background(), testPhone, issued.Code))
	require.NoError(t, s.ResetPassword(context.Background(), testPhone, "newpassword1"))

	// The verified code is single-use; a second reset needs a fresh workflow
	err := s.ResetPassword(context.Background(), testPhone, "anotherpass1")
	require.ErrorIs(t, err, ErrNoCodeRegistered)
	code, err := codes.FindLatestByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, code)
}
