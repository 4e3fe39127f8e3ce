package lessons

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// videoIDPatterns accepts watch URLs, short links, embeds and bare
// 11-character IDs.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// VideoID extracts the video identifier from a URL or bare ID.
func VideoID(raw string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Segment is one timed piece of a transcript.
type Segment struct {
	Text     string  `json:"text"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
}

// Transcript is the text of one video.
type Transcript struct {
	VideoID  string    `json:"videoId"`
	Text     string    `json:"transcript"`
	Segments []Segment `json:"segments,omitempty"`
}

// TranscriptClient fetches transcripts from an external transcript
// service. Transient failures are retried with linear backoff driven by
// the injected clock so tests can advance time.
type TranscriptClient struct {
	baseURL    string
	httpClient *http.Client
	clock      quartz.Clock
	retries    int
	logger     *log.Logger
}

// NewTranscriptClient creates a client for the given endpoint URL.
func NewTranscriptClient(baseURL string, clock quartz.Clock, logger *log.Logger) *TranscriptClient {
	return &TranscriptClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		clock:      clock,
		retries:    3,
		logger:     logger.WithPrefix("transcript"),
	}
}

// SetRetries overrides the number of fetch attempts.
func (c *TranscriptClient) SetRetries(n int) {
	if n > 0 {
		c.retries = n
	}
}

// Fetch resolves the video reference and retrieves its transcript.
func (c *TranscriptClient) Fetch(ctx context.Context, videoURL string) (Transcript, error) {
	videoID, ok := VideoID(videoURL)
	if !ok {
		return Transcript{}, fmt.Errorf("not a recognizable video URL: %q", videoURL)
	}

	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(attempt-1) * 500 * time.Millisecond
			c.logger.Debug("Retrying transcript fetch", "video_id", videoID, "attempt", attempt, "backoff", backoff)
			timer := c.clock.NewTimer(backoff)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return Transcript{}, ctx.Err()
			}
		}

		transcript, retryable, err := c.fetchOnce(ctx, videoID)
		if err == nil {
			return transcript, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}

	return Transcript{}, fmt.Errorf("fetching transcript for %s: %w", videoID, lastErr)
}

func (c *TranscriptClient) fetchOnce(ctx context.Context, videoID string) (Transcript, bool, error) {
	body, err := json.Marshal(map[string]string{"videoId": videoID})
	if err != nil {
		return Transcript{}, false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return Transcript{}, false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Transcript{}, true, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Transcript{}, true, err
	}

	if resp.StatusCode >= 500 {
		return Transcript{}, true, fmt.Errorf("transcript service http %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		var fail struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &fail)
		if fail.Message != "" {
			return Transcript{}, false, fmt.Errorf("transcript service: %s", fail.Message)
		}
		return Transcript{}, false, fmt.Errorf("transcript service http %d", resp.StatusCode)
	}

	var transcript Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return Transcript{}, false, fmt.Errorf("decoding transcript: %w", err)
	}
	transcript.VideoID = videoID

	if transcript.Text == "" {
		return Transcript{}, false, fmt.Errorf("video %s has no transcript", videoID)
	}

	return transcript, false, nil
}
