package models

import (
	"time"
)

// BlogCategories is the fixed set of categories a blog post may carry.
// The persistence layer rejects anything outside this set.
var BlogCategories = []string{
	"Technology",
	"Food",
	"Travel",
	"Lifestyle",
	"Education",
	"Other",
}

// IsValidBlogCategory reports whether category is a member of BlogCategories.
func IsValidBlogCategory(category string) bool {
	for _, c := range BlogCategories {
		if c == category {
			return true
		}
	}
	return false
}

// BlogPost represents a single blog post
type BlogPost struct {
	ID        int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Category  string    `json:"category" db:"category" gorm:"type:varchar(50);not null;check:category IN ('Technology','Food','Travel','Lifestyle','Education','Other')"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Image     *string   `json:"image,omitempty" db:"image" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
