package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockAuthSendCode(t *testing.T) {
	auth := NewMockAuth(0, time.Minute)
	ctx := context.Background()

	require.NoError(t, auth.SendCode(ctx, "9876543210"))

	t.Run("Resend within cooldown is rejected", func(t *testing.T) {
		assert.ErrorIs(t, auth.SendCode(ctx, "9876543210"), ErrResendTooSoon)
	})

	t.Run("Cooldown is per phone", func(t *testing.T) {
		assert.NoError(t, auth.SendCode(ctx, "9876543211"))
	})
}

func TestMockAuthVerifyCode(t *testing.T) {
	auth := NewMockAuth(0, time.Minute)
	ctx := context.Background()

	t.Run("Rejects without a prior send", func(t *testing.T) {
		ok, err := auth.VerifyCode(ctx, "9876543210", "1234")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Accepts any well-formed code after a send", func(t *testing.T) {
		require.NoError(t, auth.SendCode(ctx, "9876543210"))

		ok, err := auth.VerifyCode(ctx, "9876543210", "1234")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = auth.VerifyCode(ctx, "9876543210", "123")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMockAuthHonorsContext(t *testing.T) {
	auth := NewMockAuth(time.Minute, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := auth.SendCode(ctx, "9876543210")
	assert.ErrorIs(t, err, context.Canceled)
}
