package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValues(t *testing.T, r *Recorder) map[string]float64 {
	t.Helper()
	families, err := r.Registry().Gather()
	require.NoError(t, err)
	out := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				out[mf.GetName()] += c.GetValue()
			}
		}
	}
	return out
}

func TestRecorderCounts(t *testing.T) {
	r := New()
	r.Frame("terrain", 0.002)
	r.Frame("terrain", 0.003)
	r.Frame("morph", 0.001)
	r.MorphRequested()
	r.Influence(true)
	r.Influence(false)
	r.Influence(false)
	r.InputDropped()
	r.Clamped("decay")
	r.ModeSwitched("morph")

	got := counterValues(t, r)
	assert.Equal(t, 3.0, got["terramorph_frames_total"])
	assert.Equal(t, 1.0, got["terramorph_morph_requests_total"])
	assert.Equal(t, 3.0, got["terramorph_influence_events_total"])
	assert.Equal(t, 1.0, got["terramorph_input_events_dropped_total"])
	assert.Equal(t, 1.0, got["terramorph_parameter_clamps_total"])
	assert.Equal(t, 1.0, got["terramorph_mode_switches_total"])
}

func TestNilRecorderIsInert(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Frame("terrain", 1)
		r.MorphRequested()
		r.Influence(true)
		r.InputDropped()
		r.Clamped("k")
		r.ModeSwitched("m")
		r.StartHTTP(":0", nil)
	})
	assert.Nil(t, r.Registry())
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := New()
	r.Frame("terrain", 0.001)
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `terramorph_frames_total{mode="terrain"} 1`)
	assert.Contains(t, string(body), "terramorph_frame_advance_seconds_bucket")
}
