package hub

import (
	"context"
	"github.com/clambin/ledhub/internal/clock"
	"github.com/clambin/ledhub/internal/configuration"
	"github.com/clambin/ledhub/internal/fade"
	"github.com/clambin/ledhub/internal/led"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

var noon = clock.Func(func() (time.Time, bool) {
	return time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC), true
})

func testConfiguration() configuration.Configuration {
	return configuration.Configuration{
		Interval:          time.Millisecond,
		Effect:            "Nox",
		FileConfiguration: configuration.DefaultFileConfiguration,
	}
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name   string
		update func(cfg *configuration.Configuration)
		pass   bool
	}{
		{name: "default", pass: true},
		{name: "unknown effect", update: func(cfg *configuration.Configuration) { cfg.Effect = "Lumos" }},
		{name: "unknown effect override", update: func(cfg *configuration.Configuration) {
			cfg.Effects = map[string]configuration.EffectConfiguration{"Lumos": {}}
		}},
		{name: "invalid fade bounds", update: func(cfg *configuration.Configuration) { cfg.Fade.Low = 2 }},
		{name: "alarm & sunset", pass: true, update: func(cfg *configuration.Configuration) {
			cfg.Fade.Alarm.Enabled = true
			cfg.Fade.Alarm.Time = &clock.ClockTime{Hour: 7}
			cfg.Fade.Sunset.Enabled = true
			cfg.Fade.Sunset.Time = &clock.ClockTime{Hour: 21, Minute: 30}
		}},
		{name: "alarm without time", update: func(cfg *configuration.Configuration) { cfg.Fade.Alarm.Enabled = true }},
		{name: "sunset without time", update: func(cfg *configuration.Configuration) { cfg.Fade.Sunset.Enabled = true }},
		{name: "fade effects", pass: true, update: func(cfg *configuration.Configuration) {
			cfg.Fade.Alarm.Effect = "Linear"
			cfg.Fade.Alarm.PostEffect = "Nox"
			cfg.Fade.Sunset.Effect = "Random"
		}},
		{name: "unknown alarm effect", update: func(cfg *configuration.Configuration) { cfg.Fade.Alarm.Effect = "Lumos" }},
		{name: "unknown post-alarm effect", update: func(cfg *configuration.Configuration) { cfg.Fade.Alarm.PostEffect = "Lumos" }},
		{name: "unknown sunset effect", update: func(cfg *configuration.Configuration) { cfg.Fade.Sunset.Effect = "Lumos" }},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfiguration()
			if tt.update != nil {
				tt.update(&cfg)
			}
			h, err := New(cfg, led.NewBuffer(4, led.Discard{}), noon)
			if !tt.pass {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			d, ok := h.Controller.Current()
			require.True(t, ok)
			assert.Equal(t, cfg.Effect, d.Name)
			assert.Equal(t, fade.None, h.Fade.Mode())
		})
	}
}

func TestHub_Cycle(t *testing.T) {
	strip := led.NewBuffer(4, led.Discard{})
	h, err := New(testConfiguration(), strip, noon)
	require.NoError(t, err)

	for now := time.Duration(0); now <= 30*time.Millisecond; now += time.Millisecond {
		h.Cycle(now)
	}
	assert.Equal(t, 6.0, testutil.ToFloat64(h.metrics.effectTicks.WithLabelValues("Nox")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.fadeMode.WithLabelValues("none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.fadeLevel))
	assert.Equal(t, uint8(255), strip.Brightness())

	require.NoError(t, h.Fade.Begin(fade.Alarm))
	h.Cycle(31 * time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(h.metrics.fadeMode.WithLabelValues("none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.fadeMode.WithLabelValues("alarm")))
	assert.Equal(t, 0.0, testutil.ToFloat64(h.metrics.fadeLevel))
	assert.Equal(t, uint8(0), strip.Brightness())

	h.Fade.Stop()
	h.Cycle(32 * time.Millisecond)
	assert.Equal(t, uint8(255), strip.Brightness())

	require.NoError(t, h.Controller.ActivateByName("Linear"))
	h.Cycle(33 * time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.effectTicks.WithLabelValues("Linear")))
}

func currentEffect(h *Hub) string {
	d, _ := h.Controller.Current()
	return d.Name
}

func TestHub_FadeEffects(t *testing.T) {
	now := time.Date(2024, time.June, 21, 6, 0, 0, 0, time.UTC)
	c := clock.Func(func() (time.Time, bool) { return now, true })

	cfg := testConfiguration()
	cfg.Fade.Alarm.Effect = "Linear"
	cfg.Fade.Alarm.PostEffect = "LeftRightLeftRightLeft"
	cfg.Fade.Sunset.Effect = "Random"
	cfg.Fade.Sunset.Time = &clock.ClockTime{Hour: 21}
	h, err := New(cfg, led.NewBuffer(4, led.Discard{}), c)
	require.NoError(t, err)

	h.Cycle(0)
	assert.Equal(t, "Nox", currentEffect(h))

	require.NoError(t, h.Fade.Begin(fade.Alarm))
	h.Cycle(time.Millisecond)
	assert.Equal(t, "Linear", currentEffect(h))

	now = now.Add(31 * time.Minute)
	h.Cycle(2 * time.Millisecond)
	assert.Equal(t, "LeftRightLeftRightLeft", currentEffect(h))

	require.NoError(t, h.Controller.ActivateByName("Nox"))
	h.Fade.Stop()
	h.Cycle(3 * time.Millisecond)
	assert.Equal(t, "Nox", currentEffect(h), "stopping a completed alarm does not switch effects again")

	require.NoError(t, h.Fade.Begin(fade.Sunset))
	h.Cycle(4 * time.Millisecond)
	assert.Equal(t, "Random", currentEffect(h))

	h.Fade.Stop()
	h.Cycle(5 * time.Millisecond)
	assert.Equal(t, "Random", currentEffect(h))

	require.NoError(t, h.Fade.Begin(fade.Alarm))
	h.Cycle(6 * time.Millisecond)
	assert.Equal(t, "Linear", currentEffect(h))

	h.Fade.Stop()
	h.Cycle(7 * time.Millisecond)
	assert.Equal(t, "LeftRightLeftRightLeft", currentEffect(h), "stopping an alarm early starts the post-alarm effect")
}

func TestHub_FadeEffects_TriggeredAlarm(t *testing.T) {
	now := time.Date(2024, time.June, 21, 6, 30, 0, 0, time.UTC)
	c := clock.Func(func() (time.Time, bool) { return now, true })

	cfg := testConfiguration()
	cfg.Fade.AutoStop = true
	cfg.Fade.Alarm.Enabled = true
	cfg.Fade.Alarm.Time = &clock.ClockTime{Hour: 6, Minute: 30}
	cfg.Fade.Alarm.Duration = 10 * time.Minute
	cfg.Fade.Alarm.Effect = "Binary"
	cfg.Fade.Alarm.PostEffect = "Alternating"
	h, err := New(cfg, led.NewBuffer(4, led.Discard{}), c)
	require.NoError(t, err)

	h.Cycle(0)
	assert.Equal(t, fade.Alarm, h.Fade.Mode())
	assert.Equal(t, "Binary", currentEffect(h))

	now = now.Add(10 * time.Minute)
	h.Cycle(time.Millisecond)
	assert.Equal(t, fade.None, h.Fade.Mode())
	assert.Equal(t, "Alternating", currentEffect(h))
}

func TestHub_ActivationStartsAtCycleTime(t *testing.T) {
	h, err := New(testConfiguration(), led.NewBuffer(4, led.Discard{}), noon)
	require.NoError(t, err)

	h.Cycle(100 * time.Millisecond)
	ticks := testutil.ToFloat64(h.metrics.effectTicks.WithLabelValues("Nox"))
	require.NoError(t, h.Controller.ActivateByName("Nox"))
	h.Cycle(124 * time.Millisecond)
	assert.Equal(t, ticks, testutil.ToFloat64(h.metrics.effectTicks.WithLabelValues("Nox")))
	h.Cycle(125 * time.Millisecond)
	assert.Equal(t, ticks+1, testutil.ToFloat64(h.metrics.effectTicks.WithLabelValues("Nox")))
}

func TestHub_Run(t *testing.T) {
	h, err := New(testConfiguration(), led.NewBuffer(4, led.Discard{}), noon)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.NoError(t, h.Run(ctx))

	assert.NotZero(t, testutil.ToFloat64(h.metrics.effectTicks.WithLabelValues("Nox")))

	r := prometheus.NewPedanticRegistry()
	r.MustRegister(h)

	metrics, err := r.Gather()
	require.NoError(t, err)
	assert.Len(t, metrics, 4)
}
