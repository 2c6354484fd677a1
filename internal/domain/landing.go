package domain

import "time"

// LandingBlock is a CMS content block rendered on the landing page.
type LandingBlock struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey"`
	Slug        string    `json:"slug" gorm:"column:slug;uniqueIndex"`
	Title       string    `json:"title" gorm:"column:title"`
	Body        string    `json:"body" gorm:"column:body"`
	Position    int       `json:"position" gorm:"column:position"`
	IsPublished bool      `json:"is_published" gorm:"column:is_published"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (LandingBlock) TableName() string { return "landing_blocks" }
