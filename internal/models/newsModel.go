package models

import "time"

// NewsItem is one record of the raw-text news feed. Like tweets it is an
// optional snapshot enrichment only.
type NewsItem struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"not null"`
	Body        string    `gorm:"type:text"`
	Source      string    `gorm:"index"`
	PublishedAt time.Time `gorm:"index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName sets the table name for NewsItem model
func (NewsItem) TableName() string {
	return "news_items"
}
