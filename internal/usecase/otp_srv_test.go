package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPGenerateStoresChallenge(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "otp@example.com", "Passw0rd")

	code, err := f.otp.Generate(context.Background(), user, 4, 24*time.Hour)
	require.NoError(t, err)
	assert.Len(t, code, 4)

	stored := f.users.get(user.ID)
	require.NotNil(t, stored.OTP)
	assert.Equal(t, code, *stored.OTP)
	require.NotNil(t, stored.OTPExpiry)
	assert.True(t, stored.OTPExpiry.After(time.Now()))
	assert.Equal(t, 0, stored.OTPTries)
}

func TestOTPGenerateOverwritesOutstandingChallenge(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "otp@example.com", "Passw0rd")

	first, err := f.otp.Generate(context.Background(), user, 4, 24*time.Hour)
	require.NoError(t, err)

	// Burn a few tries on the first challenge
	for i := 0; i < 3; i++ {
		_, err := f.otp.Verify(context.Background(), user, "0000")
		require.NoError(t, err)
	}

	second, err := f.otp.Generate(context.Background(), user, 4, 24*time.Hour)
	require.NoError(t, err)

	stored := f.users.get(user.ID)
	assert.Equal(t, second, *stored.OTP)
	assert.Equal(t, 0, stored.OTPTries, "a fresh challenge resets the counter")

	if first != second {
		ok, err := f.otp.Verify(context.Background(), user, first)
		require.NoError(t, err)
		assert.False(t, ok, "the replaced code must no longer pass")
	}
}

func TestOTPVerifyRepeatableUntilLimit(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "otp@example.com", "Passw0rd")

	code, err := f.otp.Generate(context.Background(), user, 4, 24*time.Hour)
	require.NoError(t, err)

	// A passing verify does not clear the challenge, so the same code
	// keeps working until the attempt budget runs out.
	for i := 1; i <= MaxOTPTries; i++ {
		ok, err := f.otp.Verify(context.Background(), user, code)
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d should pass", i)
	}

	ok, err := f.otp.Verify(context.Background(), user, code)
	require.NoError(t, err)
	assert.False(t, ok, "attempt %d exceeds the budget even with the right code", MaxOTPTries+1)
}

func TestOTPVerifyWrongCodeBurnsTry(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "otp@example.com", "Passw0rd")

	_, err := f.otp.Generate(context.Background(), user, 4, 24*time.Hour)
	require.NoError(t, err)

	ok, err := f.otp.Verify(context.Background(), user, "not-it")
	require.NoError(t, err)
	assert.False(t, ok)

	stored := f.users.get(user.ID)
	assert.Equal(t, 1, stored.OTPTries)
}

func TestOTPVerifyWithoutChallengeFailsAndCounts(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "otp@example.com", "Passw0rd")

	ok, err := f.otp.Verify(context.Background(), user, "1234")
	require.NoError(t, err)
	assert.False(t, ok)

	// The attempt is burned even though nothing was outstanding.
	stored := f.users.get(user.ID)
	assert.Equal(t, 1, stored.OTPTries)
}

func TestOTPVerifyExpiredFails(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "otp@example.com", "Passw0rd")

	code := "4321"
	expiry := time.Now().Add(-time.Minute)
	require.NoError(t, f.users.SetOTP(context.Background(), user.ID, &code, &expiry))
	user.OTP = &code
	user.OTPExpiry = &expiry

	ok, err := f.otp.Verify(context.Background(), user, code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPVerifyAtExactExpiryFails(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "otp@example.com", "Passw0rd")

	// Validity is strict less-than, so an expiry that is already "now"
	// (or any instant not in the future) cannot pass.
	code := "4321"
	expiry := time.Now()
	require.NoError(t, f.users.SetOTP(context.Background(), user.ID, &code, &expiry))
	user.OTP = &code
	user.OTPExpiry = &expiry

	ok, err := f.otp.Verify(context.Background(), user, code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPClearThenVerifyFails(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "otp@example.com", "Passw0rd")

	code, err := f.otp.Generate(context.Background(), user, 4, 24*time.Hour)
	require.NoError(t, err)

	require.NoError(t, f.otp.Clear(context.Background(), user))

	stored := f.users.get(user.ID)
	assert.Nil(t, stored.OTP)
	assert.Nil(t, stored.OTPExpiry)
	assert.Equal(t, 0, stored.OTPTries)

	ok, err := f.otp.Verify(context.Background(), user, code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPConcurrentVerifiesEachConsumeATry(t *testing.T) {
	f := newFixture()
	user := f.seedUser("aaa111", "otp@example.com", "Passw0rd")

	code, err := f.otp.Generate(context.Background(), user, 4, 24*time.Hour)
	require.NoError(t, err)

	// Start one short of the limit so the two racing attempts straddle it.
	for i := 0; i < MaxOTPTries-1; i++ {
		_, err := f.otp.Verify(context.Background(), user, code)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u := f.users.get(user.ID)
			_, err := f.otp.Verify(context.Background(), u, code)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored := f.users.get(user.ID)
	assert.Equal(t, MaxOTPTries+1, stored.OTPTries, "two verifies must advance the counter by exactly two")
}
