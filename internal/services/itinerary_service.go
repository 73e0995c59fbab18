package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"roamio/pkg/utils"
)

// ItineraryResult is the outcome of one generation. A failed result never
// carries itinerary text, so an error message cannot be saved as a plan.
type ItineraryResult struct {
	OK     bool
	Text   string
	Reason string
}

func ItinerarySucceeded(text string) ItineraryResult {
	return ItineraryResult{OK: true, Text: text}
}

func ItineraryFailed(reason string) ItineraryResult {
	return ItineraryResult{Reason: reason}
}

// Prefixes the old tool wrote into itinerary_text when generation failed.
var legacyFailureMarkers = []string{"ERROR:", "Gemini error:", "OpenAI error:"}

// IsFailedItineraryText reports whether saved text is an error message
// rather than an itinerary.
func IsFailedItineraryText(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, marker := range legacyFailureMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, prompt string) ItineraryResult
}

type ItineraryService struct {
	generator utils.TextGeneratorInterface
	// keyName is reported when generator is nil because its key is missing.
	keyName string
	timeout time.Duration
	logger  *zap.Logger
}

// NewItineraryService accepts a nil generator; Generate then reports the
// missing credential instead of calling out.
func NewItineraryService(generator utils.TextGeneratorInterface, keyName string, timeout time.Duration, logger *zap.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		generator: generator,
		keyName:   keyName,
		timeout:   timeout,
		logger:    logger,
	}
}

func (s *ItineraryService) Generate(ctx context.Context, prompt string) ItineraryResult {
	if s.generator == nil {
		s.logger.Warn("itinerary generator not configured", zap.String("missing", s.keyName))
		return ItineraryFailed(fmt.Sprintf("ERROR: %s not set.", s.keyName))
	}

	// Single attempt; no retries.
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn("itinerary generation failed",
			zap.String("provider", s.generator.Provider()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return ItineraryFailed(fmt.Sprintf("%s error: %v", s.generator.Provider(), err))
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.logger.Warn("itinerary generation returned empty text", zap.String("provider", s.generator.Provider()))
		return ItineraryFailed(fmt.Sprintf("%s error: empty response", s.generator.Provider()))
	}

	s.logger.Info("itinerary generated",
		zap.String("provider", s.generator.Provider()),
		zap.Int("chars", len(text)),
		zap.Duration("elapsed", time.Since(start)))

	return ItinerarySucceeded(text)
}
