package tide

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	events    []Event
	err       error
	callCount atomic.Int32
}

func (m *mockProvider) TidalEvents(_ context.Context, _ string, _ int) ([]Event, error) {
	m.callCount.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func (m *mockProvider) Name() string { return "mock" }

var target = time.Date(2025, time.June, 11, 12, 0, 0, 0, time.UTC)

func eventAt(kind EventKind, offset time.Duration, height float64) Event {
	return Event{Kind: kind, Time: target.Add(offset), Height: height}
}

func TestSelectEvent(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   time.Duration
	}{
		{
			name: "prefers nearest future within horizon",
			events: []Event{
				eventAt(HighWater, -30*time.Minute, 5.0),
				eventAt(HighWater, 3*time.Hour, 5.2),
				eventAt(HighWater, 9*time.Hour, 5.1),
			},
			want: 3 * time.Hour,
		},
		{
			name: "nearer past does not beat future within horizon",
			events: []Event{
				eventAt(HighWater, -10*time.Minute, 5.0),
				eventAt(HighWater, 11*time.Hour, 5.2),
			},
			want: 11 * time.Hour,
		},
		{
			name: "falls back to absolute nearest when future too far",
			events: []Event{
				eventAt(HighWater, -2*time.Hour, 5.0),
				eventAt(HighWater, 13*time.Hour, 5.2),
			},
			want: -2 * time.Hour,
		},
		{
			name: "all past picks nearest past",
			events: []Event{
				eventAt(HighWater, -8*time.Hour, 4.8),
				eventAt(HighWater, -90*time.Minute, 5.0),
			},
			want: -90 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := SelectEvent(tt.events, target)
			require.True(t, ok)
			assert.Equal(t, target.Add(tt.want), e.Time)
		})
	}

	_, ok := SelectEvent(nil, target)
	assert.False(t, ok)
}

func TestWindowForSplitsKinds(t *testing.T) {
	provider := &mockProvider{events: []Event{
		eventAt(HighWater, 2*time.Hour, 5.4),
		eventAt(LowWater, -4*time.Hour, 1.1),
		eventAt(LowWater, 4*time.Hour, 1.2),
		eventAt(HighWater, 10*time.Hour, 5.6),
	}}
	svc := NewService(ServiceConfig{Provider: provider, Logger: zerolog.Nop()})

	window, err := svc.WindowFor(context.Background(), "0505", target, target)
	require.NoError(t, err)

	require.True(t, window.High.Known)
	assert.Equal(t, target.Add(2*time.Hour), window.High.At)
	require.NotNil(t, window.High.Height)
	assert.InDelta(t, 5.4, *window.High.Height, 0.001)

	require.True(t, window.Low.Known)
	assert.Equal(t, target.Add(4*time.Hour), window.Low.At)
}

func TestWindowForCachesByStationAndDuration(t *testing.T) {
	provider := &mockProvider{events: []Event{eventAt(HighWater, time.Hour, 5.0)}}
	svc := NewService(ServiceConfig{Provider: provider, Logger: zerolog.Nop()})

	ctx := context.Background()
	_, err := svc.WindowFor(ctx, "0505", target, target)
	require.NoError(t, err)
	_, err = svc.WindowFor(ctx, "0505", target, target)
	require.NoError(t, err)
	assert.Equal(t, int32(1), provider.callCount.Load(), "second call should hit cache")

	// A target further out needs a longer window, so it misses the cache.
	_, err = svc.WindowFor(ctx, "0505", target.Add(48*time.Hour), target)
	require.NoError(t, err)
	assert.Equal(t, int32(2), provider.callCount.Load())

	stats := svc.CacheStats()
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, "mock", stats.Provider)

	svc.InvalidateCache()
	assert.Equal(t, 0, svc.CacheStats().Entries)
}

func TestWindowForProviderError(t *testing.T) {
	provider := &mockProvider{err: errors.New("boom")}
	svc := NewService(ServiceConfig{Provider: provider, Logger: zerolog.Nop()})

	window, err := svc.WindowFor(context.Background(), "0505", target, target)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
	assert.False(t, window.High.Known)
	assert.Equal(t, "—", window.High.Display)
	assert.Equal(t, "—", window.Low.Display)
}

func TestDurationDays(t *testing.T) {
	svc := NewService(ServiceConfig{Provider: &mockProvider{}, Logger: zerolog.Nop()})

	now := time.Date(2025, time.June, 11, 14, 0, 0, 0, svc.Location())

	assert.Equal(t, 2, svc.DurationDays(now, now))
	assert.Equal(t, 3, svc.DurationDays(now.AddDate(0, 0, 1), now))
	assert.Equal(t, 4, svc.DurationDays(now.AddDate(0, 0, 2), now))
	// Late tonight is still today.
	tonight := time.Date(2025, time.June, 11, 20, 0, 0, 0, svc.Location())
	assert.Equal(t, 2, svc.DurationDays(tonight, now))
}

func TestUnknownWindow(t *testing.T) {
	w := UnknownWindow()
	assert.False(t, w.High.Known)
	assert.False(t, w.Low.Known)
	assert.Nil(t, w.High.Height)
	assert.Equal(t, "—", w.Low.Display)
}
