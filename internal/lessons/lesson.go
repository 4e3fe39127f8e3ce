// Package lessons turns strategy-video content into typed adjustments
// the strategy engine can consume. It owns the validation boundary
// between externally-sourced JSON and the engine's data contract.
package lessons

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lox/pokercoach/internal/classify"
	"github.com/lox/pokercoach/internal/position"
	"github.com/lox/pokercoach/internal/strategy"
)

// maxDelta bounds each adjustment delta in percentage points. This is
// the authoritative clamp for extracted values; the engine never clamps
// deltas a second time.
const maxDelta = 50

// Lesson is one learned adjustment plus its provenance.
type Lesson struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Summary   string    `json:"summary,omitempty"`
	strategy.Adjustment
}

// NewID returns a short random lesson identifier.
func NewID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("lessons: reading random bytes: %v", err))
	}
	return hex.EncodeToString(b[:])
}

// Extraction is the validated result of one extraction call.
type Extraction struct {
	Summary     string
	Adjustments []strategy.Adjustment
	Rejected    int // items dropped by validation
}

// rawAdjustment mirrors the JSON shape the extraction model is asked
// to produce. Everything is optional; validation decides what survives.
type rawAdjustment struct {
	Description  string   `json:"description"`
	Position     *string  `json:"position"`
	HandCategory *string  `json:"handCategory"`
	Situation    *string  `json:"situation"`
	FoldAdjust   *float64 `json:"foldAdjust"`
	CallAdjust   *float64 `json:"callAdjust"`
	RaiseAdjust  *float64 `json:"raiseAdjust"`
}

type rawExtraction struct {
	Summary     string          `json:"summary"`
	Adjustments []rawAdjustment `json:"adjustments"`
}

// ParseExtraction validates a model reply into typed adjustments. The
// reply may wrap the JSON object in prose; everything outside the
// outermost braces is ignored. Items with no delta at all are dropped,
// unknown enum values are nulled to wildcards, and deltas are clamped
// into [-50, 50]. The returned adjustments are active by default.
func ParseExtraction(reply, source, videoURL string) (Extraction, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return Extraction{}, fmt.Errorf("no JSON object in extraction reply")
	}

	var raw rawExtraction
	if err := json.Unmarshal([]byte(reply[start:end+1]), &raw); err != nil {
		return Extraction{}, fmt.Errorf("decoding extraction reply: %w", err)
	}

	out := Extraction{Summary: strings.TrimSpace(raw.Summary)}
	for _, item := range raw.Adjustments {
		if item.FoldAdjust == nil && item.CallAdjust == nil && item.RaiseAdjust == nil {
			out.Rejected++
			continue
		}

		adj := strategy.Adjustment{
			Source:     strings.TrimSpace(item.Description),
			VideoURL:   videoURL,
			FoldDelta:  clampDelta(item.FoldAdjust),
			CallDelta:  clampDelta(item.CallAdjust),
			RaiseDelta: clampDelta(item.RaiseAdjust),
			Active:     true,
		}
		if adj.Source == "" {
			adj.Source = source
		}
		if item.Position != nil && position.Valid(position.Position(*item.Position)) {
			adj.Position = position.Position(*item.Position)
		}
		if item.HandCategory != nil && classify.ValidCategory(classify.HandCategory(*item.HandCategory)) {
			adj.HandCategory = classify.HandCategory(*item.HandCategory)
		}
		if item.Situation != nil && strategy.ValidSituation(strategy.Situation(*item.Situation)) {
			adj.Situation = strategy.Situation(*item.Situation)
		}

		out.Adjustments = append(out.Adjustments, adj)
	}

	return out, nil
}

func clampDelta(v *float64) int {
	if v == nil {
		return 0
	}
	d := int(*v)
	if d > maxDelta {
		return maxDelta
	}
	if d < -maxDelta {
		return -maxDelta
	}
	return d
}
