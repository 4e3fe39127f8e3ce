package lessons

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Learner runs the full pipeline from video URL to stored-ready
// lessons: fetch the transcript, extract adjustments, stamp identity
// and provenance.
type Learner struct {
	transcripts *TranscriptClient
	extractor   *Extractor
	now         func() time.Time
	logger      *log.Logger
}

// NewLearner wires the pipeline together.
func NewLearner(transcripts *TranscriptClient, extractor *Extractor, logger *log.Logger) *Learner {
	return &Learner{
		transcripts: transcripts,
		extractor:   extractor,
		now:         time.Now,
		logger:      logger.WithPrefix("learner"),
	}
}

// Learn processes one video URL into lessons. Each extracted
// adjustment becomes its own lesson carrying the video's summary.
func (l *Learner) Learn(ctx context.Context, videoURL string) ([]Lesson, error) {
	transcript, err := l.transcripts.Fetch(ctx, videoURL)
	if err != nil {
		return nil, err
	}
	l.logger.Info("Fetched transcript", "video_id", transcript.VideoID, "chars", len(transcript.Text))

	extraction, err := l.extractor.Extract(ctx, transcript.Text, "video "+transcript.VideoID, videoURL)
	if err != nil {
		return nil, fmt.Errorf("extracting adjustments: %w", err)
	}
	if len(extraction.Adjustments) == 0 {
		return nil, nil
	}

	createdAt := l.now()
	lessons := make([]Lesson, 0, len(extraction.Adjustments))
	for _, adj := range extraction.Adjustments {
		lessons = append(lessons, Lesson{
			ID:         NewID(),
			CreatedAt:  createdAt,
			Summary:    extraction.Summary,
			Adjustment: adj,
		})
	}
	return lessons, nil
}
