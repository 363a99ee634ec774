package guard_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("order not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("guard_copied_by_value_stays_constructed", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		guardCopy := g

		require.NoError(t, guardCopy.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInDomainObject(t *testing.T) {
	type promo struct {
		code  string
		guard guard.ConstructorGuard
	}
	errPromoNotConstructed := errors.New("promo must be created via newPromo")

	newPromo := func(code string) (promo, error) {
		if code == "" {
			return promo{}, errors.New("code is required")
		}
		return promo{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_object_validates", func(t *testing.T) {
		p, err := newPromo("WELCOME10")

		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPromoNotConstructed))
	})

	t.Run("zero_value_object_fails", func(t *testing.T) {
		var p promo

		assert.Equal(t, errPromoNotConstructed, p.guard.Validate(errPromoNotConstructed))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	done := make(chan bool)
	for range 50 {
		go func() {
			for range 100 {
				assert.NoError(t, g.Validate(nil))
			}
			done <- true
		}()
	}
	for range 50 {
		<-done
	}
}
