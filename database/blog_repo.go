package database

import (
	"errors"

	"github.com/mediconnect/backend/errs"
	"github.com/mediconnect/backend/models"
	"gorm.io/gorm"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindAll returns all blog posts ordered by creation time, newest first
func (r *BlogRepo) FindAll() ([]*models.BlogPost, error) {
	blogPosts := []*models.BlogPost{}
	err := r.db.Order("created_at DESC").Find(&blogPosts).Error
	return blogPosts, err
}

// FindByID returns a blog post by its ID, or nil when no such post exists
func (r *BlogRepo) FindByID(id int) (*models.BlogPost, error) {
	var blogPost models.BlogPost
	err := r.db.First(&blogPost, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blogPost, nil
}

// Add inserts a new blog post. Posts with a category outside the fixed
// set are rejected here, before touching the database.
func (r *BlogRepo) Add(blogPost *models.BlogPost) error {
	if !models.IsValidBlogCategory(blogPost.Category) {
		return errs.NewInvalidFieldError("category", "must be one of the supported blog categories")
	}
	return r.db.Create(blogPost).Error
}

// UpdateFields applies a partial update to the post matching id, touching
// only the supplied columns. Returns nil when no such post exists.
func (r *BlogRepo) UpdateFields(id int, fields map[string]any) (*models.BlogPost, error) {
	if category, ok := fields["category"].(string); ok && !models.IsValidBlogCategory(category) {
		return nil, errs.NewInvalidFieldError("category", "must be one of the supported blog categories")
	}

	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := r.db.Model(&models.BlogPost{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}

	return r.FindByID(id)
}

// Delete removes the post matching id and returns its value as it stood
// immediately before deletion. Returns nil when no such post exists.
func (r *BlogRepo) Delete(id int) (*models.BlogPost, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := r.db.Delete(&models.BlogPost{}, id).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
