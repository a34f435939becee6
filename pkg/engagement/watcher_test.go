package engagement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fendixhq/trackkit/pkg/datalayer"
	"github.com/fendixhq/trackkit/pkg/engagement"
	"github.com/fendixhq/trackkit/pkg/page"
)

func TestWatcher(t *testing.T) {
	d := page.Descriptor{Path: "/contact", Type: page.TypeStatic}

	t.Run("fires milestones in order", func(t *testing.T) {
		sink := datalayer.NewMemorySink()
		emitter := datalayer.NewEmitter(sink)

		w := engagement.Start(emitter, d, 10*time.Millisecond, 30*time.Millisecond)
		defer w.Close()

		require.Eventually(t, func() bool {
			return len(sink.Named(datalayer.EventEngagedTime)) == 2
		}, time.Second, 5*time.Millisecond)

		events := sink.Named(datalayer.EventEngagedTime)
		assert.Equal(t, 0, events[0].Payload["seconds"]) // sub-second milestones floor to 0
		assert.Equal(t, "/contact", events[0].Payload["page_path"])
		assert.Equal(t, "static", events[0].Payload["page_type"])
	})

	t.Run("close cancels pending timers", func(t *testing.T) {
		sink := datalayer.NewMemorySink()
		emitter := datalayer.NewEmitter(sink)

		w := engagement.Start(emitter, d, 50*time.Millisecond)
		require.NoError(t, w.Close())
		require.NoError(t, w.Close()) // idempotent

		time.Sleep(80 * time.Millisecond)
		assert.Empty(t, sink.Events())
	})
}
