// Copyright 2025 The go-membench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Length:      1000,
		Seed:        42,
		Mode:        ModeSequential,
		Repetitions: 1,
	}
}

func TestValidateAccepts(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.Length = 0
	assert.NoError(t, cfg.Validate(), "empty dataset is a valid run")

	cfg = validConfig()
	cfg.Length = MaxLength
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsOversizedLength(t *testing.T) {
	cfg := validConfig()
	cfg.Length = MaxLength + 1
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsRepetitions(t *testing.T) {
	for _, reps := range []int{0, -1} {
		cfg := validConfig()
		cfg.Repetitions = reps
		assert.Error(t, cfg.Validate(), "repetitions = %d", reps)
	}
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	cfg := validConfig()
	cfg.Mode = Mode(17)
	require.Error(t, cfg.Validate())
}

func TestBytes(t *testing.T) {
	cfg := validConfig()
	cfg.Length = 268435456
	assert.Equal(t, uint64(1<<30), cfg.Bytes())
}

func TestParseModeRoundTrip(t *testing.T) {
	for _, mode := range []Mode{ModeSequential, ModeParallel, ModeParallelUnseq} {
		got, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
}

func TestParseModeUnknown(t *testing.T) {
	_, err := ParseMode("vectorized")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vectorized")
}

func TestSeedOriginString(t *testing.T) {
	assert.Equal(t, "user", SeedUser.String())
	assert.Equal(t, "system", SeedSystem.String())
}
