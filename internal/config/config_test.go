package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRates(t *testing.T) {
	rates := DefaultRates()

	assert.Equal(t, 30.0, rates.DaysPerMonth)
	assert.Equal(t, 82.00, rates.PriceT1)
	assert.Equal(t, 136.49, rates.PriceT2)
	assert.Equal(t, 159.36, rates.PriceT3)
	require.NoError(t, rates.Validate())

	// Each call hands out an independent copy: mutating one must not
	// leak into the next.
	a := DefaultRates()
	a.PriceT1 = 1
	assert.Equal(t, 82.00, DefaultRates().PriceT1)
}

func TestRates_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Rates)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*Rates) {}, wantErr: nil},
		{name: "zero days", mutate: func(r *Rates) { r.DaysPerMonth = 0 }, wantErr: ErrDaysNotPositive},
		{name: "negative days", mutate: func(r *Rates) { r.DaysPerMonth = -3 }, wantErr: ErrDaysNotPositive},
		{name: "negative price", mutate: func(r *Rates) { r.PriceT2 = -1 }, wantErr: ErrPriceNegative},
		{name: "NaN price", mutate: func(r *Rates) { r.PriceT3 = math.NaN() }, wantErr: ErrNotFinite},
		{name: "infinite days", mutate: func(r *Rates) { r.DaysPerMonth = math.Inf(1) }, wantErr: ErrNotFinite},
		{name: "zero price is allowed", mutate: func(r *Rates) { r.PriceT1 = 0 }, wantErr: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rates := DefaultRates()
			tc.mutate(&rates)

			err := rates.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		rates, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultRates(), rates)
	})

	t.Run("partial config merges over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("price_t1: 90.5\n"), 0o600))

		rates, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 90.5, rates.PriceT1)
		assert.Equal(t, 136.49, rates.PriceT2, "unset keys keep defaults")
		assert.Equal(t, 30.0, rates.DaysPerMonth)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("price_t1: [not a number\n"), 0o600))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("invalid values are an error, not a silent fallback", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("days_per_month: -2\n"), 0o600))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDaysNotPositive)
	})
}

func TestSaveFile(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "config.yaml")

		want := Rates{DaysPerMonth: 28, PriceT1: 80, PriceT2: 130, PriceT3: 150}
		require.NoError(t, SaveFile(want, path))

		got, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("refuses invalid rates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")

		err := SaveFile(Rates{DaysPerMonth: 0}, path)
		require.Error(t, err)
		assert.NoFileExists(t, path)
	})
}
