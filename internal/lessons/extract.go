package lessons

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// maxTranscriptLen bounds what is sent to the completion API; longer
// transcripts are truncated.
const maxTranscriptLen = 15000

// extractionPrompt is the fixed instruction given to the completion
// API. The reply must be a single JSON object matching rawExtraction.
const extractionPrompt = `You are a poker strategy analyzer. Given a transcript from a poker strategy video, extract specific strategic adjustments that modify standard play.

Focus on extracting:
1. Position-based adjustments (e.g., "play tighter from UTG", "widen your range on the button")
2. Hand-specific adjustments (e.g., "3-bet suited connectors more", "fold small pairs to 4-bets")
3. Situation-specific adjustments (e.g., "c-bet more on dry boards")

Output format - respond ONLY with valid JSON:
{
  "summary": "Brief 1-2 sentence summary of the video's main strategic advice",
  "adjustments": [
    {
      "description": "What the adjustment is about",
      "position": "UTG" | "UTG+1" | "UTG+2" | "LJ" | "HJ" | "CO" | "BTN" | "SB" | "BB" | null,
      "handCategory": "premium" | "strong" | "medium" | "speculative" | "weak" | null,
      "situation": "RFI" | "vs_limp" | "vs_raise" | "vs_3bet" | "vs_4bet" | "cbet" | "facing_cbet" | null,
      "foldAdjust": number (-50 to +50) or null,
      "callAdjust": number (-50 to +50) or null,
      "raiseAdjust": number (-50 to +50) or null
    }
  ]
}

Rules:
- Only extract clear, actionable adjustments
- Use null for fields that don't apply
- Adjustments are in percentage points (e.g., +10 means add 10% to that action)
- foldAdjust + callAdjust + raiseAdjust should roughly balance to 0
- Maximum 10 adjustments per video
- If no clear adjustments can be extracted, return an empty adjustments array`

// ExtractorConfig configures the completion API client. APIKey is
// required; Model and BaseURL fall back to sensible defaults.
type ExtractorConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Extractor turns transcript text into adjustment candidates via a
// chat-completions API.
type Extractor struct {
	cfg        ExtractorConfig
	httpClient *http.Client
	logger     *log.Logger
}

// NewExtractor creates an extraction client.
func NewExtractor(cfg ExtractorConfig, logger *log.Logger) *Extractor {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	return &Extractor{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 45 * time.Second},
		logger:     logger.WithPrefix("extract"),
	}
}

// Extract sends the transcript through the extraction prompt and
// validates the reply. source and videoURL become the provenance of the
// resulting adjustments.
func (e *Extractor) Extract(ctx context.Context, transcript, source, videoURL string) (Extraction, error) {
	if e.cfg.APIKey == "" {
		return Extraction{}, fmt.Errorf("extraction API key missing")
	}

	if len(transcript) > maxTranscriptLen {
		transcript = transcript[:maxTranscriptLen] + "... [truncated]"
	}

	reply, err := e.complete(ctx, transcript)
	if err != nil {
		return Extraction{}, err
	}

	extraction, err := ParseExtraction(reply, source, videoURL)
	if err != nil {
		return Extraction{}, err
	}

	e.logger.Info("Extracted adjustments",
		"count", len(extraction.Adjustments),
		"rejected", extraction.Rejected,
		"video_url", videoURL)
	return extraction, nil
}

func (e *Extractor) complete(ctx context.Context, transcript string) (string, error) {
	payload := map[string]any{
		"model": e.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": extractionPrompt},
			{"role": "user", "content": "Extract poker strategy adjustments from this video transcript:\n\n" + transcript},
		},
		"temperature": 0.3,
		"max_tokens":  2000,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.cfg.APIKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion API http %d: %s", resp.StatusCode, truncate(string(data), 500))
	}

	var reply struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &reply); err != nil {
		return "", fmt.Errorf("decoding completion reply: %w", err)
	}
	if len(reply.Choices) == 0 || reply.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("completion API returned no content")
	}

	return reply.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
