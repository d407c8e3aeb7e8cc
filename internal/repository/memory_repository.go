package repository

import (
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	apperrors "github.com/Kosench/memshort/internal/errors"
	"github.com/Kosench/memshort/internal/model"
	"github.com/Kosench/memshort/internal/utils"
)

var _ URLRepository = (*MemoryURLRepository)(nil)

// MemoryURLRepository - хранилище в памяти процесса под одним RWMutex.
// Записи никогда не вытесняются.
type MemoryURLRepository struct {
	mu   sync.RWMutex
	urls map[string]*model.URL
	now  func() time.Time
}

func NewMemoryURLRepository() *MemoryURLRepository {
	return &MemoryURLRepository{
		urls: make(map[string]*model.URL),
		now:  time.Now,
	}
}

func (r *MemoryURLRepository) Insert(code, originalURL, token string) error {
	if !utils.IsValidShortCode(code) {
		return fmt.Errorf("insert %q: %w", code, apperrors.ErrInvalidShortCode)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.urls[code] = r.newRecord(code, originalURL, token)
	return nil
}

func (r *MemoryURLRepository) Create(code, originalURL, token string) error {
	if !utils.IsValidShortCode(code) {
		return fmt.Errorf("create %q: %w", code, apperrors.ErrInvalidShortCode)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.urls[code]; exists {
		return apperrors.ErrShortCodeExists
	}

	r.urls[code] = r.newRecord(code, originalURL, token)
	return nil
}

func (r *MemoryURLRepository) Lookup(code string) (model.URL, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	url, exists := r.urls[code]
	if !exists {
		return model.URL{}, false
	}
	return *url, true
}

func (r *MemoryURLRepository) IncrementClick(code string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	url, exists := r.urls[code]
	if !exists {
		return false
	}
	url.ClickCount++
	return true
}

func (r *MemoryURLRepository) ValidateToken(code, token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	url, exists := r.urls[code]
	if !exists || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(url.AnalyticsToken), []byte(token)) == 1
}

func (r *MemoryURLRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.urls)
}

// newRecord вызывается только под mu
func (r *MemoryURLRepository) newRecord(code, originalURL, token string) *model.URL {
	return &model.URL{
		ShortCode:      code,
		OriginalURL:    originalURL,
		ClickCount:     0,
		CreatedAt:      r.now().UTC(),
		AnalyticsToken: token,
	}
}
