package service

import (
	"sync"

	"go-postgres-optics/models"

	"gorm.io/gorm"
)

// StockSource answers the distinct-value queries behind the intake dropdowns.
type StockSource interface {
	DistinctFrames() ([]string, error)
	DistinctTypes(frame string) ([]string, error)
}

// Catalog memoizes frame and type lookups for the lifetime of a session.
// Any stock mutation must call Invalidate before the next read so the
// dropdowns never offer stale choices.
type Catalog struct {
	mu     sync.Mutex
	src    StockSource
	frames []string
	types  map[string][]string
}

func NewCatalog(src StockSource) *Catalog {
	return &Catalog{src: src, types: make(map[string][]string)}
}

func (c *Catalog) ListFrames() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frames != nil {
		return c.frames, nil
	}
	frames, err := c.src.DistinctFrames()
	if err != nil {
		return nil, err
	}
	if frames == nil {
		frames = []string{}
	}
	c.frames = frames
	return frames, nil
}

// ListTypes fills the per-frame cache entry lazily on first request.
func (c *Catalog) ListTypes(frame string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if types, ok := c.types[frame]; ok {
		return types, nil
	}
	types, err := c.src.DistinctTypes(frame)
	if err != nil {
		return nil, err
	}
	if types == nil {
		types = []string{}
	}
	c.types[frame] = types
	return types, nil
}

func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frames = nil
	c.types = make(map[string][]string)
}

type gormStockSource struct{ db *gorm.DB }

// NewStockSource backs a Catalog with the stocks table; only rows with
// remaining stock are offered.
func NewStockSource(db *gorm.DB) StockSource {
	return &gormStockSource{db: db}
}

func (s *gormStockSource) DistinctFrames() ([]string, error) {
	var frames []string
	err := s.db.Model(&models.Stock{}).
		Where("count > 0").
		Distinct().
		Pluck("frame", &frames).Error
	return frames, err
}

func (s *gormStockSource) DistinctTypes(frame string) ([]string, error) {
	var types []string
	err := s.db.Model(&models.Stock{}).
		Where("frame = ? AND count > 0", frame).
		Distinct().
		Pluck("type", &types).Error
	return types, err
}
