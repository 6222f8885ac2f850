package repositories

import (
	"errors"

	"SolanaTradeBot/internal/models"

	"gorm.io/gorm"
)

type NewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new instance of NewsRepository
func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create adds a new NewsItem record
func (r *NewsRepository) Create(item *models.NewsItem) error {
	if item == nil {
		return errors.New("news item cannot be nil")
	}
	return r.db.Create(item).Error
}

// FindRecent retrieves the most recent news items, newest first
func (r *NewsRepository) FindRecent(limit int) ([]models.NewsItem, error) {
	if limit <= 0 {
		return nil, errors.New("invalid limit")
	}
	var items []models.NewsItem
	err := r.db.Order("published_at DESC").Limit(limit).Find(&items).Error
	return items, err
}

// RecentHeadlines returns just the titles of the most recent news items,
// for the market snapshot enrichment.
func (r *NewsRepository) RecentHeadlines(limit int) ([]string, error) {
	items, err := r.FindRecent(limit)
	if err != nil {
		return nil, err
	}
	headlines := make([]string, 0, len(items))
	for _, item := range items {
		headlines = append(headlines, item.Title)
	}
	return headlines, nil
}
