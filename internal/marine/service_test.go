package marine

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
	snapshot  *Snapshot
	err       error
	callCount atomic.Int32
}

func (m *mockProvider) Snapshot(_ context.Context, _, _ float64, _ time.Time) (*Snapshot, error) {
	m.callCount.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot, nil
}

func (m *mockProvider) Name() string { return "mock" }

func fp(v float64) *float64 { return &v }

var target = time.Date(2025, time.June, 11, 8, 0, 0, 0, time.UTC)

func TestFeelsLike(t *testing.T) {
	tests := []struct {
		name      string
		airTemp   float64
		windSpeed float64
		want      float64
	}{
		{"reference point", 5, 20, 1},
		{"warm air passes through", 15, 30, 15},
		{"calm wind passes through", 2, 3, 2},
		{"cold and windy", 0, 30, -6},
		{"boundary above ten degrees", 10.5, 20, 10.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FeelsLike(tt.airTemp, tt.windSpeed), 0.001)
		})
	}

	// Pure function: repeated calls agree.
	assert.Equal(t, FeelsLike(5, 20), FeelsLike(5, 20))
}

func TestEffectiveFeelsLike(t *testing.T) {
	s := &Snapshot{FeelsLike: fp(3.2), AirTemp: fp(5), WindSpeed: 20}
	got, ok := s.EffectiveFeelsLike()
	require.True(t, ok)
	assert.InDelta(t, 3.2, got, 0.001)

	s = &Snapshot{AirTemp: fp(5), WindSpeed: 20}
	got, ok = s.EffectiveFeelsLike()
	require.True(t, ok)
	assert.InDelta(t, 1, got, 0.001)

	s = &Snapshot{WindSpeed: 20}
	_, ok = s.EffectiveFeelsLike()
	assert.False(t, ok)
}

func TestSnapshotForCaches(t *testing.T) {
	provider := &mockProvider{snapshot: &Snapshot{WaveHeight: 0.8, SeaTemp: fp(9.5)}}
	svc := NewService(ServiceConfig{Provider: provider, Logger: zerolog.Nop()})

	ctx := context.Background()
	first, err := svc.SnapshotFor(ctx, 51.568, -4.291, target)
	require.NoError(t, err)
	second, err := svc.SnapshotFor(ctx, 51.568, -4.291, target)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), provider.callCount.Load())

	// Same cell, different hour misses the cache.
	_, err = svc.SnapshotFor(ctx, 51.568, -4.291, target.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int32(2), provider.callCount.Load())

	stats := svc.CacheStats()
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, 2, stats.FreshEntries)

	svc.InvalidateCache()
	assert.Equal(t, 0, svc.CacheStats().Entries)
}

func TestSnapshotForNearbyBeachesShareCell(t *testing.T) {
	provider := &mockProvider{snapshot: &Snapshot{WaveHeight: 0.8}}
	svc := NewService(ServiceConfig{Provider: provider, Logger: zerolog.Nop()})

	ctx := context.Background()
	// Tenby North and Tenby Castle are a few hundred metres apart.
	_, err := svc.SnapshotFor(ctx, 51.675, -4.696, target)
	require.NoError(t, err)
	_, err = svc.SnapshotFor(ctx, 51.672, -4.699, target)
	require.NoError(t, err)

	assert.Equal(t, int32(1), provider.callCount.Load(), "adjacent beaches share a grid cell")
}

func TestSnapshotForProviderError(t *testing.T) {
	provider := &mockProvider{err: errors.New("boom")}
	svc := NewService(ServiceConfig{Provider: provider, Logger: zerolog.Nop()})

	_, err := svc.SnapshotFor(context.Background(), 51.5, -4.2, target)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestSnapshotForNoData(t *testing.T) {
	// No coverage is a distinct signal from a transient failure and must
	// survive the service layer untouched.
	provider := &mockProvider{err: ErrNoData}
	svc := NewService(ServiceConfig{Provider: provider, Logger: zerolog.Nop()})

	_, err := svc.SnapshotFor(context.Background(), 51.5, -4.2, target)
	assert.ErrorIs(t, err, ErrNoData)
	assert.NotErrorIs(t, err, ErrProviderUnavailable)
}

func TestSnapshotForInvalidCoordinates(t *testing.T) {
	svc := NewService(ServiceConfig{Provider: &mockProvider{}, Logger: zerolog.Nop()})

	_, err := svc.SnapshotFor(context.Background(), 91, 0, target)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
	_, err = svc.SnapshotFor(context.Background(), 0, -181, target)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}
