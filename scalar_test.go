// SPDX-License-Identifier: GPL-3.0-or-later

package lazy

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarFunc(t *testing.T) {
	called := 0
	scalar := ScalarFunc[string](func() (string, error) {
		called++
		return "result", nil
	})

	output, err := scalar.Value()
	require.NoError(t, err)
	assert.Equal(t, "result", output)

	// Each call evaluates the function again
	_, _ = scalar.Value()
	assert.Equal(t, 2, called)
}

func TestConstScalar(t *testing.T) {
	t.Run("returns constant string", func(t *testing.T) {
		result, err := ConstScalar("constant value").Value()

		require.NoError(t, err)
		assert.Equal(t, "constant value", result)
	})

	t.Run("returns constant struct", func(t *testing.T) {
		type myStruct struct {
			X int
			Y string
		}
		want := myStruct{X: 10, Y: "test"}

		result, err := ConstScalar(want).Value()

		require.NoError(t, err)
		assert.Equal(t, want, result)
	})
}

func TestMapped(t *testing.T) {
	t.Run("success path", func(t *testing.T) {
		scalar := Mapped[string, int](ConstScalar("42"), strconv.Atoi)
		result, err := scalar.Value()

		require.NoError(t, err)
		assert.Equal(t, 42, result)
	})

	t.Run("scalar fails", func(t *testing.T) {
		wantErr := errors.New("scalar failed")
		origin := ScalarFunc[string](func() (string, error) {
			return "", wantErr
		})
		scalar := Mapped[string, int](origin, func(s string) (int, error) {
			t.Fatal("fn should not be called")
			return 0, nil
		})

		_, err := scalar.Value()

		require.ErrorIs(t, err, wantErr)
	})

	t.Run("fn fails", func(t *testing.T) {
		scalar := Mapped[string, int](ConstScalar("not a number"), strconv.Atoi)
		_, err := scalar.Value()

		var numErr *strconv.NumError
		require.ErrorAs(t, err, &numErr)
	})
}
