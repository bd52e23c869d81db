package service

import (
	"context"
	"testing"

	"VoiceTalent-Backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAnalytics(t *testing.T) *AnalyticsService {
	t.Helper()
	return NewAnalyticsService(memory.New(), nil, zap.NewNop(), 30)
}

func TestRecordVisit_FreshStore(t *testing.T) {
	ctx := context.Background()
	svc := newTestAnalytics(t)

	counted, err := svc.RecordVisit(ctx, "/", "agent", "1.1.1.1", "s1")
	require.NoError(t, err)
	assert.True(t, counted)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalVisits)
	assert.Equal(t, 1, summary.Today.Visits)
}

func TestRecordVisit_Dedup(t *testing.T) {
	ctx := context.Background()
	svc := newTestAnalytics(t)

	counted, err := svc.RecordVisit(ctx, "/", "agent", "A", "X")
	require.NoError(t, err)
	assert.True(t, counted)

	// New session from the same IP still counts
	counted, err = svc.RecordVisit(ctx, "/", "agent", "A", "Y")
	require.NoError(t, err)
	assert.True(t, counted)

	// Known session from a new IP still counts
	counted, err = svc.RecordVisit(ctx, "/", "agent", "B", "X")
	require.NoError(t, err)
	assert.True(t, counted)

	// Both seen today: acknowledged but dropped
	counted, err = svc.RecordVisit(ctx, "/", "agent", "A", "Y")
	require.NoError(t, err)
	assert.False(t, counted)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalVisits)
	assert.Equal(t, 2, summary.Today.UniqueIPVisits)
	assert.Equal(t, 2, summary.Today.UniqueSessionVisits)
}

func TestRecordVisit_DefaultsPageToRoot(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewAnalyticsService(store, nil, zap.NewNop(), 30)

	counted, err := svc.RecordVisit(ctx, "", "agent", "1.1.1.1", "s1")
	require.NoError(t, err)
	require.True(t, counted)

	visits, err := store.ListVisits(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "/", visits[0].Page)
}

func TestDeviceBreakdown_FallbackClassifier(t *testing.T) {
	ctx := context.Background()
	svc := newTestAnalytics(t)

	_, err := svc.RecordVisit(ctx, "/", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", "1.1.1.1", "s1")
	require.NoError(t, err)
	_, err = svc.RecordVisit(ctx, "/", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", "2.2.2.2", "s2")
	require.NoError(t, err)

	devices, err := svc.DeviceBreakdown(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, devices["mobile"])
	assert.Equal(t, 1, devices["desktop"])
}
