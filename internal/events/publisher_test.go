package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopPublisher(t *testing.T) {
	publisher := NoopPublisher{}

	err := publisher.PublishRosterChanged(context.Background(), RosterChanged{Activity: "Chess Club"})
	require.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisherReusesWriters(t *testing.T) {
	publisher := NewKafkaPublisher([]string{"localhost:9092"}, "roster_events")

	first := publisher.writerForTopic("roster_events")
	second := publisher.writerForTopic("roster_events")
	require.Same(t, first, second)

	require.NoError(t, publisher.Close())
	require.Empty(t, publisher.writers)
}
