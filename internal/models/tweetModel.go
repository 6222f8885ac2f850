package models

import "time"

// Tweet is a cached social-media post used to enrich the market snapshot
// passed to the narrative service. Never an input to indicator math.
type Tweet struct {
	ID        uint      `gorm:"primaryKey"`
	TweetID   string    `gorm:"uniqueIndex;not null"`
	Author    string    `gorm:"index"`
	FullText  string    `gorm:"type:text;not null"`
	PostedAt  time.Time `gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName sets the table name for Tweet model
func (Tweet) TableName() string {
	return "tweets"
}
