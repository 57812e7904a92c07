package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("message includes code", func(t *testing.T) {
		err := New(CodeContactNotFound, "contact not found")

		assert.Equal(t, "CONTACT_NOT_FOUND: contact not found", err.Error())
	})

	t.Run("wrapped cause is unwrappable", func(t *testing.T) {
		cause := stderrors.New("connection refused")
		err := Wrap(CodeInternal, "failed to load contact", cause)

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestCodeOf(t *testing.T) {
	t.Run("direct app error", func(t *testing.T) {
		assert.Equal(t, CodeInvalidOTP, CodeOf(New(CodeInvalidOTP, "wrong code")))
	})

	t.Run("app error deeper in the chain", func(t *testing.T) {
		inner := New(CodeResendCooldown, "wait before resending")
		outer := fmt.Errorf("send otp: %w", inner)

		assert.Equal(t, CodeResendCooldown, CodeOf(outer))
		assert.True(t, Is(outer, CodeResendCooldown))
	})

	t.Run("plain error maps to internal", func(t *testing.T) {
		err := stderrors.New("boom")

		assert.Equal(t, CodeInternal, CodeOf(err))
		assert.False(t, Is(err, CodeInvalidOTP))
	})
}

func TestMessageOf(t *testing.T) {
	t.Run("app error message is surfaced", func(t *testing.T) {
		assert.Equal(t, "wait before resending", MessageOf(New(CodeResendCooldown, "wait before resending")))
	})

	t.Run("plain errors are masked", func(t *testing.T) {
		assert.Equal(t, "internal server error", MessageOf(stderrors.New("pq: relation does not exist")))
	})
}
