package usecase

import (
	"context"
	"testing"

	"naija-barter/internal/dto/request"
	"naija-barter/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	f := newFixture()
	f.seedUser("aaa111", "user@example.com", "Passw0rd")

	resp, err := f.auth.Login(context.Background(), &request.LoginRequest{
		Email:    "user@example.com",
		Password: "Passw0rd",
	})
	require.NoError(t, err)
	assert.Equal(t, "aaa111", resp.ID)
	assert.NotEmpty(t, resp.Token)

	userID, err := utils.GetUserIDFromToken(resp.Token, []byte(f.config.JWT.Secret))
	require.NoError(t, err)
	assert.Equal(t, "aaa111", userID)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newFixture()

	_, err := f.auth.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Passw0rd",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginInactiveRejectedBeforePasswordCheck(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "user@example.com", "Passw0rd")
	user.IsActive = false
	f.users.put(user)

	// Even the wrong password surfaces the inactive error, so the
	// endpoint cannot be used to probe credentials of disabled accounts.
	_, err := f.auth.Login(context.Background(), &request.LoginRequest{
		Email:    "user@example.com",
		Password: "WrongPassword1",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "user is not active")
}

func TestLoginWrongPassword(t *testing.T) {
	f := newFixture()
	f.seedUser("aaa111", "user@example.com", "Passw0rd")

	_, err := f.auth.Login(context.Background(), &request.LoginRequest{
		Email:    "user@example.com",
		Password: "WrongPassword1",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginUnconfirmedEmail(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "user@example.com", "Passw0rd")
	user.EmailConfirmed = false
	f.users.put(user)

	_, err := f.auth.Login(context.Background(), &request.LoginRequest{
		Email:    "user@example.com",
		Password: "Passw0rd",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "email not confirmed")
}

func TestForgotPasswordSendsCodeAndStoresChallenge(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "user@example.com", "Passw0rd")

	require.NoError(t, f.auth.ForgotPassword(context.Background(), "user@example.com"))

	assert.Equal(t, 1, f.mail.count())
	assert.Equal(t, "user@example.com", f.mail.last().To)

	stored := f.users.get(user.ID)
	require.NotNil(t, stored.OTP)
	assert.Contains(t, f.mail.last().Body, *stored.OTP)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	f := newFixture()

	// An absent account is indistinguishable from a successful send.
	require.NoError(t, f.auth.ForgotPassword(context.Background(), "nobody@example.com"))
	assert.Equal(t, 0, f.mail.count())
}

func TestForgotPasswordMailFailureKeepsChallenge(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "user@example.com", "Passw0rd")
	f.mail.fail = true

	err := f.auth.ForgotPassword(context.Background(), "user@example.com")
	require.Error(t, err)
	assert.EqualError(t, err, "an error occurred while trying to send email")

	// The code was persisted before the send, so the challenge is live.
	stored := f.users.get(user.ID)
	assert.NotNil(t, stored.OTP)
}

func TestVerifyOTPUnknownEmail(t *testing.T) {
	f := newFixture()

	err := f.auth.VerifyOTP(context.Background(), &request.VerifyOTPRequest{
		Email: "nobody@example.com",
		OTP:   "1234",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "user not found")
}

func TestConfirmEmailFlow(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "user@example.com", "Passw0rd")
	user.EmailConfirmed = false
	f.users.put(user)

	require.NoError(t, f.auth.SendConfirmEmail(context.Background(), "user@example.com"))
	code := *f.users.get(user.ID).OTP

	require.NoError(t, f.auth.ConfirmEmail(context.Background(), &request.VerifyOTPRequest{
		Email: "user@example.com",
		OTP:   code,
	}))

	stored := f.users.get(user.ID)
	assert.True(t, stored.EmailConfirmed)
	assert.Nil(t, stored.OTP, "the challenge is cleared once the email is confirmed")
}

func TestPasswordResetFlow(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "user@example.com", "OldPassw0rd")
	oldHash := user.PasswordHash

	require.NoError(t, f.auth.ForgotPassword(context.Background(), "user@example.com"))
	code := *f.users.get(user.ID).OTP

	require.NoError(t, f.auth.PasswordReset(context.Background(), &request.PasswordResetRequest{
		Email:         "user@example.com",
		OTP:           code,
		Password:      "NewPassw0rd",
		PasswordAgain: "NewPassw0rd",
	}))

	stored := f.users.get(user.ID)
	assert.NotEqual(t, oldHash, stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("NewPassw0rd", stored.PasswordHash))
	assert.Nil(t, stored.OTP)
	assert.Equal(t, 0, stored.OTPTries)
}

func TestPasswordResetWrongCode(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "user@example.com", "OldPassw0rd")
	oldHash := user.PasswordHash

	require.NoError(t, f.auth.ForgotPassword(context.Background(), "user@example.com"))

	wrong := "0000"
	if *f.users.get(user.ID).OTP == wrong {
		wrong = "0001"
	}

	err := f.auth.PasswordReset(context.Background(), &request.PasswordResetRequest{
		Email:         "user@example.com",
		OTP:           wrong,
		Password:      "NewPassw0rd",
		PasswordAgain: "NewPassw0rd",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "OTP is invalid")

	stored := f.users.get(user.ID)
	assert.Equal(t, oldHash, stored.PasswordHash)
	assert.NotNil(t, stored.OTP, "a failed reset keeps the challenge")
	assert.Equal(t, 1, stored.OTPTries, "but the attempt is burned")
}

func TestPasswordResetMismatchLeavesAccountUnchanged(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "user@example.com", "OldPassw0rd")
	oldHash := user.PasswordHash

	require.NoError(t, f.auth.ForgotPassword(context.Background(), "user@example.com"))
	code := *f.users.get(user.ID).OTP

	err := f.auth.PasswordReset(context.Background(), &request.PasswordResetRequest{
		Email:         "user@example.com",
		OTP:           code,
		Password:      "NewPassw0rd",
		PasswordAgain: "Different1",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "password and repeat does not match")

	stored := f.users.get(user.ID)
	assert.Equal(t, oldHash, stored.PasswordHash)
}

func TestPasswordResetRejectsWeakPassword(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "user@example.com", "OldPassw0rd")

	require.NoError(t, f.auth.ForgotPassword(context.Background(), "user@example.com"))
	code := *f.users.get(user.ID).OTP

	err := f.auth.PasswordReset(context.Background(), &request.PasswordResetRequest{
		Email:         "user@example.com",
		OTP:           code,
		Password:      "short1",
		PasswordAgain: "short1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password must")
}

func TestChangePassword(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "user@example.com", "OldPassw0rd")

	require.NoError(t, f.auth.ChangePassword(context.Background(), user.ID, &request.ChangePasswordRequest{
		OldPassword:      "OldPassw0rd",
		NewPassword:      "NewPassw0rd",
		NewPasswordAgain: "NewPassw0rd",
	}))

	stored := f.users.get(user.ID)
	assert.True(t, utils.CheckPasswordHash("NewPassw0rd", stored.PasswordHash))
}

func TestChangePasswordWrongOldPassword(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "user@example.com", "OldPassw0rd")

	err := f.auth.ChangePassword(context.Background(), user.ID, &request.ChangePasswordRequest{
		OldPassword:      "NotTheOldOne1",
		NewPassword:      "NewPassw0rd",
		NewPasswordAgain: "NewPassw0rd",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid password")
}

func TestCurrentUser(t *testing.T) {
	f := newFixture()
	f.seedUser("aaa111", "user@example.com", "Passw0rd")

	resp, err := f.auth.CurrentUser(context.Background(), "aaa111")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", resp.Email)

	_, err = f.auth.CurrentUser(context.Background(), "zzz999")
	require.Error(t, err)
	assert.EqualError(t, err, "user not found")
}
