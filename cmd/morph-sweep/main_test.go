package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRayHitsCountedWithoutPush(t *testing.T) {
	base := map[string]string{"seed": "3"}
	res := runScenario(quietLogger(), base, paramSet{radius: 0.6, gain: 0, decay: 0.9}, 30, 5)
	require.NoError(t, res.err)

	// zero gain never pushes, but the rays through the middle of the sphere
	// still land.
	assert.Greater(t, res.hits, 0)
	assert.Zero(t, res.pushes)
	assert.Zero(t, res.touched)
	assert.Equal(t, float32(0), res.peak)
	assert.Equal(t, 0, res.settledAt)
}

func TestPushesNeverExceedHits(t *testing.T) {
	base := map[string]string{"seed": "3"}
	res := runScenario(quietLogger(), base, paramSet{radius: 0.6, gain: 30, decay: 0.9}, 30, 600)
	require.NoError(t, res.err)

	assert.Greater(t, res.pushes, 0)
	assert.LessOrEqual(t, res.pushes, res.hits)
	assert.GreaterOrEqual(t, res.touched, res.pushes)
	assert.Greater(t, res.peak, float32(0))
	assert.GreaterOrEqual(t, res.settledAt, 0)
}

func TestKVListRejectsBareKeys(t *testing.T) {
	var l kvList
	require.NoError(t, l.Set("decay=0.9"))
	assert.Error(t, l.Set("decay"))
	assert.Equal(t, "decay=0.9", l.String())
}
