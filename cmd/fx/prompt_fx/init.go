package prompt_fx

import (
	"context"
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"roamio/internal/config"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	services.NewPromptService,
	ProvideItineraryService)

// ProvideTextGenerator builds the configured itinerary backend. A missing
// key is not fatal: it yields a nil generator and the itinerary service
// reports the missing credential on every request.
func ProvideTextGenerator(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (utils.TextGeneratorInterface, error) {
	model := cfg.GeminiModel
	if cfg.ItineraryProvider == "openai" {
		model = cfg.OpenAIModel
	}

	generator, err := utils.NewTextGenerator(context.Background(), cfg.ItineraryProvider, cfg.GenerationAPIKey(), model, cfg.OpenAIBaseURL)
	if errors.Is(err, utils.ErrMissingCredential) {
		logger.Warn("itinerary generation disabled", zap.String("missing", cfg.GenerationKeyName()))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if gemini, ok := generator.(*utils.GeminiTextClient); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return gemini.Close()
			},
		})
	}

	logger.Info("itinerary generator ready", zap.String("provider", generator.Provider()), zap.String("model", model))
	return generator, nil
}

func ProvideItineraryService(generator utils.TextGeneratorInterface, cfg config.Config, logger *zap.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(generator, cfg.GenerationKeyName(), cfg.GenerationTimeout, logger)
}
