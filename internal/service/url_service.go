package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apperrors "github.com/Kosench/memshort/internal/errors"
	"github.com/Kosench/memshort/internal/model"
	"github.com/Kosench/memshort/internal/repository"
	"github.com/Kosench/memshort/internal/utils"
)

const DefaultMaxRetries = 5

type URLService struct {
	urlRepo    repository.URLRepository
	logger     *slog.Logger
	maxRetries int

	generateCode  func() (string, error)
	generateToken func() (string, error)
}

// NewURLService wires the store into the service. maxRetries < 1 falls back to DefaultMaxRetries.
func NewURLService(urlRepo repository.URLRepository, logger *slog.Logger, maxRetries int) *URLService {
	if maxRetries < 1 {
		maxRetries = DefaultMaxRetries
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &URLService{
		urlRepo:       urlRepo,
		logger:        logger,
		maxRetries:    maxRetries,
		generateCode:  utils.GenerateShortCode,
		generateToken: utils.GenerateAnalyticsToken,
	}
}

// CreateShortURL validates the URL, assigns it a free short code and issues its analytics token.
// baseURL is the scheme and host the short URL is built on, without a trailing slash.
func (s *URLService) CreateShortURL(ctx context.Context, req *model.CreateURLRequest, baseURL string) (*model.ShortenResponse, error) {
	originalURL := utils.SanitizeInput(req.URL)
	if err := utils.ValidateURL(originalURL); err != nil {
		return nil, fmt.Errorf("validate error: %w", err)
	}

	token, err := s.generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate analytics token: %w", err)
	}

	shortCode, err := s.storeWithUniqueShortCode(ctx, originalURL, token)
	if err != nil {
		return nil, fmt.Errorf("failed to store URL: %w", err)
	}

	return &model.ShortenResponse{
		ShortCode:      shortCode,
		ShortURL:       buildShortURL(baseURL, shortCode),
		AnalyticsToken: token,
	}, nil
}

// GetOriginalURL resolves a short code without counting a click.
func (s *URLService) GetOriginalURL(ctx context.Context, shortCode string) (string, error) {
	url, err := s.lookup(shortCode)
	if err != nil {
		return "", err
	}
	return url.OriginalURL, nil
}

func (s *URLService) RecordClick(ctx context.Context, shortCode string) error {
	if !s.urlRepo.IncrementClick(shortCode) {
		return fmt.Errorf("record click for '%s': %w", shortCode, apperrors.ErrURLNotFound)
	}
	return nil
}

// GetStats returns the analytics of a short code to the holder of its token.
func (s *URLService) GetStats(ctx context.Context, shortCode, token string) (*model.StatsResponse, error) {
	url, err := s.lookup(shortCode)
	if err != nil {
		return nil, err
	}

	if token == "" {
		return nil, apperrors.ErrMissingToken
	}

	if !s.urlRepo.ValidateToken(shortCode, token) {
		return nil, apperrors.ErrInvalidToken
	}

	return model.NewStatsResponse(url), nil
}

// StoredCount reports how many short codes are currently assigned.
func (s *URLService) StoredCount() int {
	return s.urlRepo.Len()
}

func (s *URLService) lookup(shortCode string) (model.URL, error) {
	if err := utils.ValidateShortCode(shortCode); err != nil {
		return model.URL{}, err
	}

	url, found := s.urlRepo.Lookup(shortCode)
	if !found {
		return model.URL{}, fmt.Errorf("URL with short code '%s': %w", shortCode, apperrors.ErrURLNotFound)
	}
	return url, nil
}

// storeWithUniqueShortCode generates candidates until one is free. A code that
// is taken between the Lookup and the Create counts as one more collision.
func (s *URLService) storeWithUniqueShortCode(ctx context.Context, originalURL, token string) (string, error) {
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code, err := s.generateCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}

		if _, found := s.urlRepo.Lookup(code); found {
			s.logger.Debug("short code collision", "short_code", code, "attempt", attempt)
			continue
		}

		err = s.urlRepo.Create(code, originalURL, token)
		if errors.Is(err, apperrors.ErrShortCodeExists) {
			s.logger.Debug("short code taken concurrently", "short_code", code, "attempt", attempt)
			continue
		}
		if err != nil {
			return "", err
		}

		return code, nil
	}

	return "", fmt.Errorf("failed to generate unique short code after %d attempts: %w", s.maxRetries, apperrors.ErrShortCodeGeneration)
}

func buildShortURL(baseURL, shortCode string) string {
	return fmt.Sprintf("%s/%s", baseURL, shortCode)
}
