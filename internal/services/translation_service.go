package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/TalkBridge-2025/mentorship-service/internal/translator"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

type translationService struct {
	client    *translator.Client
	logger    *slog.Logger
	validator *validator.Validator
}

func NewTranslationService(client *translator.Client, logger *slog.Logger, validator *validator.Validator) TranslationService {
	return &translationService{
		client:    client,
		logger:    logger,
		validator: validator,
	}
}

// Translate performs exactly one provider call per request. Results are not
// cached and failed calls are not retried; callers see the outcome of the
// single attempt.
func (s *translationService) Translate(ctx context.Context, req *TranslateRequest) (*TranslateResponse, error) {
	if errs := s.validator.GetBusinessValidator().ValidateTranslate(req); len(errs) > 0 {
		return nil, errs
	}

	if s.client == nil {
		return nil, ErrTranslationNotConfigured
	}

	source := req.SourceLanguage
	if source == "" {
		source = "auto"
	}

	translated, err := s.client.Translate(ctx, req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		if errors.Is(err, translator.ErrNotConfigured) {
			return nil, ErrTranslationNotConfigured
		}
		var provErr *translator.ProviderError
		if errors.As(err, &provErr) {
			s.logger.Error("Translation provider call failed", "op", provErr.Op, "status", provErr.StatusCode, "error", err)
			return nil, NewUpstreamError("translator", provErr.Op, provErr.Details, err)
		}
		return nil, fmt.Errorf("failed to translate text: %w", err)
	}

	return &TranslateResponse{
		TranslatedText: translated,
		SourceLanguage: source,
		TargetLanguage: req.TargetLanguage,
	}, nil
}
