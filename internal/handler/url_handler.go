package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/Kosench/memshort/internal/errors"
	"github.com/Kosench/memshort/internal/model"
	"github.com/gin-gonic/gin"
)

const (
	ServiceName          = "URL Shortener API"
	ServiceVersion       = "1.0.0"
	AnalyticsTokenHeader = "X-Analytics-Token"
	analyticsTokenQuery  = "token"
)

// Shortener is the part of service.URLService the handlers depend on.
type Shortener interface {
	CreateShortURL(ctx context.Context, req *model.CreateURLRequest, baseURL string) (*model.ShortenResponse, error)
	GetOriginalURL(ctx context.Context, shortCode string) (string, error)
	RecordClick(ctx context.Context, shortCode string) error
	GetStats(ctx context.Context, shortCode, token string) (*model.StatsResponse, error)
	StoredCount() int
}

type URLHandler struct {
	urlService Shortener
	logger     *slog.Logger
	// baseURL, when set, replaces the request's own scheme and host in short URLs.
	baseURL string
}

func NewURLHandler(urlService Shortener, logger *slog.Logger, baseURL string) *URLHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &URLHandler{
		urlService: urlService,
		logger:     logger,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// RegisterRoutes mounts every endpoint on router.
func RegisterRoutes(router *gin.Engine, h *URLHandler) {
	router.GET("/", h.Root)
	router.GET("/info", h.Info)

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/shorten", h.CreateURL)
		api.GET("/stats/:shortCode", h.GetStats)
	}

	router.GET("/:shortCode", h.RedirectURL)
}

func (h *URLHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": ServiceName,
	})
}

func (h *URLHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": ServiceName + " is running",
	})
}

func (h *URLHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     ServiceName,
		"version":     ServiceVersion,
		"storage":     "memory",
		"urls_stored": h.urlService.StoredCount(),
	})
}

func (h *URLHandler) CreateURL(c *gin.Context) {
	var req model.CreateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("missing url in request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing 'url' in request body",
			"field": "url",
		})
		return
	}

	response, err := h.urlService.CreateShortURL(c.Request.Context(), &req, h.requestBaseURL(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.logger.Info("shortened url", "url", req.URL, "short_url", response.ShortURL)
	c.JSON(http.StatusCreated, response)
}

func (h *URLHandler) RedirectURL(c *gin.Context) {
	shortCode := strings.TrimSpace(c.Param("shortCode"))

	originalURL, err := h.urlService.GetOriginalURL(c.Request.Context(), shortCode)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// counted before the redirect leaves, so the next stats request sees it
	if err := h.urlService.RecordClick(c.Request.Context(), shortCode); err != nil {
		h.handleError(c, err)
		return
	}

	h.logger.Info("redirecting", "short_code", shortCode, "url", originalURL)
	c.Redirect(http.StatusFound, originalURL)
}

func (h *URLHandler) GetStats(c *gin.Context) {
	shortCode := strings.TrimSpace(c.Param("shortCode"))

	token := c.Query(analyticsTokenQuery)
	if token == "" {
		token = c.GetHeader(AnalyticsTokenHeader)
	}

	stats, err := h.urlService.GetStats(c.Request.Context(), shortCode, token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.logger.Info("stats requested", "short_code", shortCode)
	c.JSON(http.StatusOK, stats)
}

// handleError maps the error taxonomy onto HTTP status codes.
func (h *URLHandler) handleError(c *gin.Context, err error) {
	path := c.Request.URL.Path

	if apperrors.IsValidationError(err) {
		validationErr := apperrors.GetValidationError(err)
		h.logger.Warn("validation failed", "path", path, "field", validationErr.Field, "error", validationErr.Message)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrMissingToken):
		h.logger.Warn("missing analytics token", "path", path)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing analytics token"})
		return
	case errors.Is(err, apperrors.ErrInvalidToken):
		h.logger.Warn("invalid analytics token", "path", path)
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid analytics token"})
		return
	case errors.Is(err, apperrors.ErrURLNotFound):
		h.logger.Info("short code not found", "path", path)
		c.JSON(http.StatusNotFound, gin.H{"error": "Short code not found"})
		return
	}

	if apperrors.IsBusinessError(err) {
		businessErr := apperrors.GetBusinessError(err)
		h.logger.Error("business error", "path", path, "code", businessErr.Code, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": businessErr.Message,
			"code":  businessErr.Code,
		})
		return
	}

	h.logger.Error("unexpected error", "path", path, "method", c.Request.Method, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}

// requestBaseURL is the scheme and host short URLs are built on.
func (h *URLHandler) requestBaseURL(c *gin.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	// прокси может прислать что угодно, доверяем только http и https
	proto := strings.ToLower(strings.TrimSpace(strings.Split(c.GetHeader("X-Forwarded-Proto"), ",")[0]))
	if proto == "http" || proto == "https" {
		scheme = proto
	}

	return scheme + "://" + c.Request.Host
}
