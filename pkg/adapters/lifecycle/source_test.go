package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quill/pkg/adapters/lifecycle"
	"github.com/aretw0/quill/pkg/core"
)

func TestSource_ForwardsFilteredEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.Event, 3)
	in <- core.Event{Type: core.EventCreate, ID: 1}
	in <- core.Event{Type: core.EventReload}
	in <- core.Event{Type: core.EventDelete, ID: 1}
	close(in)

	src := lifecycle.NewSource(in, core.EventCreate, core.EventDelete)
	require.NoError(t, src.Start(ctx))

	var got []string
	timeout := time.After(2 * time.Second)
	for {
		select {
		case e, ok := <-src.Events():
			if !ok {
				assert.Equal(t, []string{"CREATE 1", "DELETE 1"}, got)
				return
			}
			got = append(got, e.String())
		case <-timeout:
			t.Fatal("timeout waiting for source to drain")
		}
	}
}

func TestSource_NoFilterForwardsAll(t *testing.T) {
	in := make(chan core.Event, 2)
	in <- core.Event{Type: core.EventModify, ID: 2}
	in <- core.Event{Type: core.EventReload}
	close(in)

	src := lifecycle.NewSource(in)
	require.NoError(t, src.Start(context.Background()))

	var got []string
	for e := range src.Events() {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{"MODIFY 2", "RELOAD"}, got)
}

func TestSource_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan core.Event)

	src := lifecycle.NewSource(in)
	require.NoError(t, src.Start(ctx))
	cancel()

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("source did not stop after cancel")
	}
}
