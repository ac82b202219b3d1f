package gateway

import (
	"testing"
	"time"

	"banking-client/internal/models"

	"github.com/stretchr/testify/assert"
)

type transitionLog struct {
	changes [][2]models.CircuitBreakerState
}

func (l *transitionLog) record(from, to models.CircuitBreakerState) {
	l.changes = append(l.changes, [2]models.CircuitBreakerState{from, to})
}

func newTestBreaker(maxFailures int, reset time.Duration) (*CircuitBreaker, *time.Time, *transitionLog) {
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	log := &transitionLog{}
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     maxFailures,
		ResetTimeout:    reset,
		HalfOpenMaxSucc: 1,
	}, log.record)
	cb.now = func() time.Time { return clock }
	return cb, &clock, log
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb, _, log := newTestBreaker(3, time.Minute)

	cb.RecordFailure()
	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 2, cb.GetFailureCount())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
	assert.Equal(t, StateOpen, cb.GetState())
	assert.Equal(t, [][2]models.CircuitBreakerState{{StateClosed, StateOpen}}, log.changes)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb, _, _ := newTestBreaker(2, time.Minute)

	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()

	assert.False(t, cb.IsOpen())
	assert.Equal(t, 1, cb.GetFailureCount())
}

func TestCircuitBreaker_HalfOpenProbe(t *testing.T) {
	tests := []struct {
		name      string
		probe     func(cb *CircuitBreaker)
		wantState models.CircuitBreakerState
	}{
		{
			name:      "probe succeeds",
			probe:     func(cb *CircuitBreaker) { cb.RecordSuccess() },
			wantState: StateClosed,
		},
		{
			name:      "probe fails",
			probe:     func(cb *CircuitBreaker) { cb.RecordFailure() },
			wantState: StateOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, clock, _ := newTestBreaker(1, 10*time.Second)

			cb.RecordFailure()
			assert.True(t, cb.IsOpen())

			*clock = clock.Add(11 * time.Second)
			assert.False(t, cb.IsOpen())
			assert.Equal(t, StateHalfOpen, cb.GetState())

			tt.probe(cb)
			assert.Equal(t, tt.wantState, cb.GetState())
		})
	}
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb, _, log := newTestBreaker(1, time.Minute)

	cb.RecordFailure()
	cb.Reset()

	assert.False(t, cb.IsOpen())
	assert.Equal(t, 0, cb.GetFailureCount())
	assert.Len(t, log.changes, 2)
	assert.Equal(t, "closed", cb.GetState().String())
}

func TestNewCircuitBreaker_Defaults(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{}, nil)

	for i := 0; i < DefaultCircuitBreakerConfig().MaxFailures-1; i++ {
		cb.RecordFailure()
	}
	assert.False(t, cb.IsOpen())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
}
