package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefreshBroadcaster_PublishReachesEverySubscriber(t *testing.T) {
	broadcaster := NewRefreshBroadcaster(newTestMetrics())

	first, cancelFirst := broadcaster.Subscribe()
	defer cancelFirst()
	second, cancelSecond := broadcaster.Subscribe()
	defer cancelSecond()

	broadcaster.Publish()

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
	assert.Equal(t, uint64(1), broadcaster.Published())
}

func TestRefreshBroadcaster_PendingSignalAbsorbsPublishes(t *testing.T) {
	broadcaster := NewRefreshBroadcaster(newTestMetrics())

	signals, cancel := broadcaster.Subscribe()
	defer cancel()

	broadcaster.Publish()
	broadcaster.Publish()
	broadcaster.Publish()

	<-signals
	assert.Empty(t, signals)
	assert.Equal(t, uint64(3), broadcaster.Published())
}

func TestRefreshBroadcaster_CancelClosesChannel(t *testing.T) {
	broadcaster := NewRefreshBroadcaster(newTestMetrics())

	signals, cancel := broadcaster.Subscribe()
	cancel()
	cancel()

	_, open := <-signals
	assert.False(t, open)

	broadcaster.Publish()
	assert.Equal(t, uint64(1), broadcaster.Published())
}
