package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	err := s.Write(ctx, "some_key", []byte(`{"a":1}`))
	require.NoError(t, err)

	value, err := s.Read(ctx, "some_key")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), value)
}

func TestMemoryReadMissingKey(t *testing.T) {
	s := NewMemory()

	_, err := s.Read(context.Background(), "never_written")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryOverwrite(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "k", []byte("old")))
	require.NoError(t, s.Write(ctx, "k", []byte("new")))

	value, err := s.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}

func TestReadJSONDefaults(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	t.Run("missing key leaves default", func(t *testing.T) {
		items := []string{"default"}
		ok := ReadJSON(ctx, s, "missing", &items)
		assert.False(t, ok)
		assert.Equal(t, []string{"default"}, items)
	})

	t.Run("corrupt value leaves default", func(t *testing.T) {
		require.NoError(t, s.Write(ctx, "corrupt", []byte("{not json")))

		items := []string{"default"}
		ok := ReadJSON(ctx, s, "corrupt", &items)
		assert.False(t, ok)
		assert.Equal(t, []string{"default"}, items)
	})

	t.Run("valid value decodes", func(t *testing.T) {
		require.NoError(t, WriteJSON(ctx, s, "valid", []string{"a", "b"}))

		var items []string
		ok := ReadJSON(ctx, s, "valid", &items)
		assert.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, items)
	})
}

func TestWriteJSONRoundTrip(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	in := record{Name: "x", Count: 3}
	require.NoError(t, WriteJSON(ctx, s, "record", in))

	var out record
	require.True(t, ReadJSON(ctx, s, "record", &out))
	assert.Equal(t, in, out)
}

func TestSubscribeReceivesWrites(t *testing.T) {
	s := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Subscribe(ctx)

	require.NoError(t, s.Write(context.Background(), "watched_key", []byte("v")))

	select {
	case key := <-ch:
		assert.Equal(t, "watched_key", key)
	case <-time.After(time.Second):
		t.Fatal("no notification received")
	}
}

func TestSubscribeEndsWithContext(t *testing.T) {
	s := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())

	ch := s.Subscribe(ctx)
	cancel()

	// Give the unsubscribe goroutine a moment, then confirm writes no
	// longer reach the channel.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.Write(context.Background(), "after_cancel", []byte("v")))

	select {
	case key, ok := <-ch:
		if ok {
			t.Fatalf("unexpected notification after cancel: %s", key)
		}
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSlowSubscriberDoesNotBlockWrites(t *testing.T) {
	s := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Subscribe(ctx) // never drained

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = s.Write(context.Background(), "burst", []byte("v"))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("writes blocked on an undrained subscriber")
	}
}
