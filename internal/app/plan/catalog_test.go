package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuworldagency/SpeechScribe/internal/app/model"
)

func TestAll(t *testing.T) {
	plans := All()
	require.Len(t, plans, 4)

	ids := make([]string, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"starter", "professional", "business", "enterprise"}, ids)

	for _, p := range plans {
		assert.GreaterOrEqual(t, p.MaxAudioHours, 0.0, "plan %s", p.ID)
		_, ok := p.Duration.Window()
		assert.True(t, ok, "plan %s has unmapped duration %q", p.ID, p.Duration)
		assert.NotEmpty(t, p.Features, "plan %s", p.ID)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	plans := All()
	plans[0].ID = "mutated"
	assert.Equal(t, "starter", All()[0].ID)
}

func TestFind(t *testing.T) {
	p, ok := Find("professional")
	require.True(t, ok)
	assert.Equal(t, "Professional Project", p.Name)
	assert.Equal(t, 10.0, p.MaxAudioHours)
	assert.Equal(t, model.Duration7d, p.Duration)

	_, ok = Find("free-forever")
	assert.False(t, ok)
}

func TestDurationWindows(t *testing.T) {
	tests := []struct {
		duration model.PlanDuration
		want     time.Duration
	}{
		{model.Duration72h, 72 * time.Hour},
		{model.Duration7d, 7 * 24 * time.Hour},
		{model.Duration30d, 30 * 24 * time.Hour},
	}
	for _, tt := range tests {
		window, ok := tt.duration.Window()
		require.True(t, ok)
		assert.Equal(t, tt.want, window)
	}

	_, ok := model.PlanDuration("90d").Window()
	assert.False(t, ok)
}
