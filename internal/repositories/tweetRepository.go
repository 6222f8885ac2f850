package repositories

import (
	"errors"
	"time"

	"SolanaTradeBot/internal/models"

	"gorm.io/gorm"
)

type TweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository creates a new instance of TweetRepository
func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

// Create adds a new Tweet record to the cache
func (r *TweetRepository) Create(tweet *models.Tweet) error {
	if tweet == nil {
		return errors.New("tweet cannot be nil")
	}
	return r.db.Create(tweet).Error
}

// FindRecent retrieves the most recent tweets, newest first
func (r *TweetRepository) FindRecent(limit int) ([]models.Tweet, error) {
	if limit <= 0 {
		return nil, errors.New("invalid limit")
	}
	var tweets []models.Tweet
	err := r.db.Order("posted_at DESC").Limit(limit).Find(&tweets).Error
	return tweets, err
}

// RecentTexts returns just the text of the most recent tweets, for the
// market snapshot enrichment.
func (r *TweetRepository) RecentTexts(limit int) ([]string, error) {
	tweets, err := r.FindRecent(limit)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(tweets))
	for _, t := range tweets {
		texts = append(texts, t.FullText)
	}
	return texts, nil
}

// DeleteOlderThan prunes cache entries older than the given cutoff
func (r *TweetRepository) DeleteOlderThan(cutoff time.Time) error {
	return r.db.Where("posted_at < ?", cutoff).Delete(&models.Tweet{}).Error
}
