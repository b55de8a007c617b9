package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mediconnect/backend/database"
	"github.com/mediconnect/backend/errs"
	"github.com/mediconnect/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogRepo  *database.BlogRepo
}

func newBlogHandler(blogRepo *database.BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogRepo:  blogRepo,
	}
}

// blogUpdatableColumns maps JSON field names to their database columns.
// Only these fields participate in partial updates.
var blogUpdatableColumns = map[string]string{
	"title":    "title",
	"category": "category",
	"content":  "content",
	"image":    "image",
}

func parseID(r *http.Request) (int, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return 0, errs.NewBadRequestError("missing id")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, errs.NewInvalidFieldError("id", "must be a positive integer")
	}
	return id, nil
}

// createBlog creates a new blog post
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var blogPost models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&blogPost); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if blogPost.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if blogPost.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}
		if blogPost.Category == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("category"))
			return
		}

		// identifier and timestamps are system-assigned
		blogPost.ID = 0
		blogPost.CreatedAt = time.Time{}
		blogPost.UpdatedAt = time.Time{}

		if err := h.blogRepo.Add(&blogPost); err != nil {
			if errs.IsInvalidFieldError(err) {
				h.responder.WriteError(w, err)
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create", "blog post", err))
			return
		}

		h.responder.WriteDataWithMessage(w, http.StatusCreated, blogPost, "Blog created successfully")
	}
}

// getAllBlogs retrieves all blog posts, newest first
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPosts, err := h.blogRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog posts", err))
			return
		}

		h.responder.WriteList(w, blogPosts, len(blogPosts))
	}
}

// getBlog retrieves a specific blog post by ID
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogPost, err := h.blogRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if blogPost == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog not found"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, blogPost)
	}
}

// updateBlog applies a partial update to an existing blog post
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		fields := make(map[string]any, len(body))
		for field, value := range body {
			if column, ok := blogUpdatableColumns[field]; ok {
				fields[column] = value
			}
		}
		if len(fields) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("no updatable fields provided"))
			return
		}

		updated, err := h.blogRepo.UpdateFields(id, fields)
		if err != nil {
			if errs.IsInvalidFieldError(err) {
				h.responder.WriteError(w, err)
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update", "blog post", err))
			return
		}
		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog not found"))
			return
		}

		h.responder.WriteDataWithMessage(w, http.StatusOK, updated, "Blog updated successfully")
	}
}

// deleteBlog deletes a blog post and returns the record that was removed
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.blogRepo.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog post", err))
			return
		}
		if deleted == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog not found"))
			return
		}

		h.responder.WriteDataWithMessage(w, http.StatusOK, deleted, "Blog deleted successfully")
	}
}
