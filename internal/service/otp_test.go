package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"helpdesk/internal/apperror"
	"helpdesk/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOTPService(otps *fakeOTPRepo, users *fakeUserRepo, mail *fakeMailer) *OTPService {
	return NewOTPService(otps, users, mail, 300)
}

func TestIssueRejectsMalformedEmail(t *testing.T) {
	svc := newOTPService(&fakeOTPRepo{}, &fakeUserRepo{}, &fakeMailer{})

	_, err := svc.Issue(context.Background(), "not-an-email")
	require.ErrorIs(t, err, apperror.ErrInvalidEmail)
}

func TestIssueRejectsRegisteredEmail(t *testing.T) {
	users := &fakeUserRepo{}
	users.add(&model.User{Username: "a@b.com", Role: model.RoleCustomer})
	svc := newOTPService(&fakeOTPRepo{}, users, &fakeMailer{})

	_, err := svc.Issue(context.Background(), "a@b.com")
	require.ErrorIs(t, err, apperror.ErrAlreadyRegistered)
}

func TestIssuePersistsAndMails(t *testing.T) {
	otps := &fakeOTPRepo{}
	mail := &fakeMailer{}
	svc := newOTPService(otps, &fakeUserRepo{}, mail)

	code, err := svc.Issue(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Len(t, code, 6)
	assert.GreaterOrEqual(t, code, "100000")
	assert.LessOrEqual(t, code, "999999")

	require.Len(t, otps.records, 1)
	assert.Equal(t, code, otps.records[0].Code)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "a@b.com", mail.sent[0])
	assert.Contains(t, mail.bodys[0], code)
}

func TestIssueDeliveryFailureKeepsRecord(t *testing.T) {
	otps := &fakeOTPRepo{}
	mail := &fakeMailer{err: errors.New("smtp down")}
	svc := newOTPService(otps, &fakeUserRepo{}, mail)

	_, err := svc.Issue(context.Background(), "a@b.com")
	require.ErrorIs(t, err, apperror.ErrDeliveryFailed)

	// The persisted record survives so a later retry is safe.
	require.Len(t, otps.records, 1)

	// Retry after the outage: a second record is created and only
	// the newest code verifies.
	mail.err = nil
	code2, err := svc.Issue(context.Background(), "a@b.com")
	require.NoError(t, err)

	ok, err := svc.Verify(context.Background(), "a@b.com", code2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyNewestCodeWins(t *testing.T) {
	otps := &fakeOTPRepo{}
	svc := newOTPService(otps, &fakeUserRepo{}, &fakeMailer{})

	now := time.Now()
	otps.records = append(otps.records,
		&model.OTP{Email: "a@b.com", Code: "111111", CreatedAt: now.Add(-time.Minute)},
		&model.OTP{Email: "a@b.com", Code: "222222", CreatedAt: now},
	)

	ok, err := svc.Verify(context.Background(), "a@b.com", "111111")
	require.NoError(t, err)
	assert.False(t, ok, "superseded code must not verify")

	ok, err = svc.Verify(context.Background(), "a@b.com", "222222")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyExpiredCodeNeverMatches(t *testing.T) {
	otps := &fakeOTPRepo{}
	svc := newOTPService(otps, &fakeUserRepo{}, &fakeMailer{})

	otps.records = append(otps.records, &model.OTP{
		Email:     "a@b.com",
		Code:      "123456",
		CreatedAt: time.Now().Add(-301 * time.Second),
	})

	ok, err := svc.Verify(context.Background(), "a@b.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyBoundaryJustInsideTTL(t *testing.T) {
	otps := &fakeOTPRepo{}
	svc := newOTPService(otps, &fakeUserRepo{}, &fakeMailer{})

	otps.records = append(otps.records, &model.OTP{
		Email:     "a@b.com",
		Code:      "123456",
		CreatedAt: time.Now().Add(-290 * time.Second),
	})

	ok, err := svc.Verify(context.Background(), "a@b.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyUnknownEmail(t *testing.T) {
	svc := newOTPService(&fakeOTPRepo{}, &fakeUserRepo{}, &fakeMailer{})

	ok, err := svc.Verify(context.Background(), "nobody@b.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConsumePurgesAllRecords(t *testing.T) {
	otps := &fakeOTPRepo{}
	svc := newOTPService(otps, &fakeUserRepo{}, &fakeMailer{})

	now := time.Now()
	otps.records = append(otps.records,
		&model.OTP{Email: "a@b.com", Code: "111111", CreatedAt: now.Add(-time.Minute)},
		&model.OTP{Email: "a@b.com", Code: "222222", CreatedAt: now},
		&model.OTP{Email: "other@b.com", Code: "333333", CreatedAt: now},
	)

	require.NoError(t, svc.Consume(context.Background(), "a@b.com"))

	require.Len(t, otps.records, 1)
	assert.Equal(t, "other@b.com", otps.records[0].Email)
}

func TestGenerateCodeRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}
