// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sticky evaluates the wrapped scalar only once on success.
func TestStickyCachesSuccess(t *testing.T) {
	calls := 0
	sticky := NewSticky[int](ScalarFunc[int](func() (int, error) {
		calls++
		return 42, nil
	}))

	for range 10 {
		value, err := sticky.Value()
		require.NoError(t, err)
		assert.Equal(t, 42, value)
	}
	assert.Equal(t, 1, calls)
}

// Sticky does not cache failures and retries on the next call.
func TestStickyRetriesAfterFailure(t *testing.T) {
	wantErr := errors.New("boom")
	calls := 0
	sticky := NewSticky[string](ScalarFunc[string](func() (string, error) {
		calls++
		if calls == 1 {
			return "", wantErr
		}
		return "ok", nil
	}))

	_, err := sticky.Value()
	require.ErrorIs(t, err, wantErr)

	value, err := sticky.Value()
	require.NoError(t, err)
	assert.Equal(t, "ok", value)

	_, _ = sticky.Value()
	assert.Equal(t, 2, calls)
}
