package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCurrentState_AllZero(t *testing.T) {
	s := NewCurrentState(sampleTargets())

	assert.Equal(t, []string{"A", "B"}, s.Tasks())
	assert.Equal(t, time.Duration(0), s.Get("A"))
	assert.Equal(t, time.Duration(0), s.Get("B"))
	assert.Equal(t, time.Duration(0), s.Total())
}

func TestCurrentState_SetAndAdd(t *testing.T) {
	s := NewCurrentState(sampleTargets())

	assert.True(t, s.Add("A", 2*time.Hour))
	assert.True(t, s.Add("A", 30*time.Minute))
	assert.Equal(t, 150*time.Minute, s.Get("A"))

	assert.True(t, s.Set("B", time.Hour))
	assert.Equal(t, time.Hour, s.Get("B"))

	assert.Equal(t, 210*time.Minute, s.Total())
}

func TestCurrentState_NeverNegative(t *testing.T) {
	s := NewCurrentState(sampleTargets())
	s.Set("A", time.Hour)

	s.Add("A", -2*time.Hour)
	assert.Equal(t, time.Duration(0), s.Get("A"))

	s.Set("B", -time.Minute)
	assert.Equal(t, time.Duration(0), s.Get("B"))
}

func TestCurrentState_UnknownTask(t *testing.T) {
	s := NewCurrentState(sampleTargets())

	assert.False(t, s.Set("Z", time.Hour))
	assert.False(t, s.Add("Z", time.Hour))
	assert.False(t, s.Has("Z"))
	assert.Equal(t, time.Duration(0), s.Get("Z"))
}

func TestCurrentState_Reset(t *testing.T) {
	s := NewCurrentState(sampleTargets())
	s.Set("A", time.Hour)
	s.Set("B", 5*time.Hour)

	s.Reset()

	assert.Equal(t, time.Duration(0), s.Total())
	assert.Equal(t, []string{"A", "B"}, s.Tasks())
}

func TestCurrentState_Equal(t *testing.T) {
	s := NewCurrentState(sampleTargets())
	s.Set("A", 90*time.Minute)

	c := NewCurrentState(sampleTargets())
	c.Set("A", 90*time.Minute)
	assert.True(t, s.Equal(c))

	c.Add("B", time.Minute)
	assert.False(t, s.Equal(c))
	assert.False(t, s.Equal(nil))
}

func TestCurrentState_AddSaturates(t *testing.T) {
	s := NewCurrentState(sampleTargets())
	s.Set("A", MaxDuration-time.Hour)

	s.Add("A", 2*time.Hour)
	assert.Equal(t, MaxDuration, s.Get("A"), "sum must not wrap negative")

	s.Add("A", MaxDuration)
	assert.Equal(t, MaxDuration, s.Get("A"))

	s.Add("A", -time.Hour)
	assert.Equal(t, MaxDuration-time.Hour, s.Get("A"))
}
