package lessons

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=120", "dQw4w9WgXcQ", true},
		{"https://example.com/video", "", false},
		{"tooshort", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, ok := VideoID(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestFetchTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"videoId": "dQw4w9WgXcQ"}`, string(body))
		w.Write([]byte(`{"transcript": "never gonna fold them", "segments": [{"text": "never", "offset": 0, "duration": 1.5}]}`))
	}))
	defer server.Close()

	client := NewTranscriptClient(server.URL, quartz.NewReal(), log.New(io.Discard))

	transcript, err := client.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", transcript.VideoID)
	assert.Equal(t, "never gonna fold them", transcript.Text)
	require.Len(t, transcript.Segments, 1)
	assert.Equal(t, 1.5, transcript.Segments[0].Duration)
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"transcript": "second time lucky"}`))
	}))
	defer server.Close()

	ctx := context.Background()
	mockClock := quartz.NewMock(t)
	trap := mockClock.Trap().NewTimer()
	defer trap.Close()

	client := NewTranscriptClient(server.URL, mockClock, log.New(io.Discard))

	done := make(chan struct{})
	var transcript Transcript
	var err error
	go func() {
		defer close(done)
		transcript, err = client.Fetch(ctx, "dQw4w9WgXcQ")
	}()

	// Release the backoff timer for the second attempt.
	call := trap.MustWait(ctx)
	call.MustRelease(ctx)
	mockClock.Advance(500 * time.Millisecond).MustWait(ctx)
	<-done

	require.NoError(t, err)
	assert.Equal(t, "second time lucky", transcript.Text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchTerminalErrorDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "no transcript available for this video"}`))
	}))
	defer server.Close()

	client := NewTranscriptClient(server.URL, quartz.NewReal(), log.New(io.Discard))

	_, err := client.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transcript available")
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchEmptyTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transcript": ""}`))
	}))
	defer server.Close()

	client := NewTranscriptClient(server.URL, quartz.NewReal(), log.New(io.Discard))

	_, err := client.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no transcript")
}

func TestFetchRejectsUnrecognizedURL(t *testing.T) {
	client := NewTranscriptClient("http://unused", quartz.NewReal(), log.New(io.Discard))

	_, err := client.Fetch(context.Background(), "https://example.com/not-a-video")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a recognizable video URL")
}
