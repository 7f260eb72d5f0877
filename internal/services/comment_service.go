package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/zhiyizhu805/FinShark/internal/errors"
	"github.com/zhiyizhu805/FinShark/internal/models"
)

// commentService handles comment-related business logic.
type commentService struct {
	db *gorm.DB
}

// NewCommentService creates a new CommentServicer.
func NewCommentService(db *gorm.DB) CommentServicer {
	return &commentService{db: db}
}

// GetComments returns all comments with their authors hydrated.
func (s *commentService) GetComments() ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Preload("User").Find(&comments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return comments, nil
}

// GetCommentByID returns a comment with its author hydrated.
func (s *commentService) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.Preload("User").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &comment, nil
}

// CreateComment creates a comment on a stock. Stock existence is the
// caller's responsibility; this keeps the write path a single insert.
func (s *commentService) CreateComment(stockID, userID uint, title, content string) (*models.Comment, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Title is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Content is required")
	}

	comment := &models.Comment{
		Title:   title,
		Content: content,
		StockID: &stockID,
		UserID:  userID,
	}

	if err := s.db.Create(comment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return comment, nil
}

// UpdateComment changes a comment's title and content. The stock and user
// references are immutable after creation.
func (s *commentService) UpdateComment(id uint, title, content string) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	comment.Title = title
	comment.Content = content

	if err := s.db.Save(&comment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &comment, nil
}

// DeleteComment removes a comment by ID.
func (s *commentService) DeleteComment(id uint) error {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&comment).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
