package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/zhiyizhu805/FinShark/internal/errors"
	"github.com/zhiyizhu805/FinShark/internal/services"
)

// CommentHandler handles comment-related requests.
type CommentHandler struct {
	commentService services.CommentServicer
	stockService   services.StockServicer
	auditService   services.AuditServicer
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService services.CommentServicer, stockService services.StockServicer, auditService services.AuditServicer) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		stockService:   stockService,
		auditService:   auditService,
	}
}

// CreateCommentRequest represents the request payload for creating a comment.
type CreateCommentRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// UpdateCommentRequest represents the request payload for updating a comment.
type UpdateCommentRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// GetComments handles the retrieval of all comments.
// @Summary     List comments
// @Description Get all comments with their authors
// @Tags        comments
// @Produce     json
// @Success     200 {array} models.Comment "Comments"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /comments [get]
func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.commentService.GetComments()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// GetComment handles the retrieval of a single comment by ID.
// @Summary     Get a comment
// @Description Get a single comment with its author by ID
// @Tags        comments
// @Produce     json
// @Param       id path int true "Comment ID"
// @Success     200 {object} models.Comment "Comment"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Comment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	comment, err := h.commentService.GetCommentByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// CreateComment handles the creation of a comment on a stock. The target
// stock is checked first so a dangling stock ID surfaces as a not-found
// error rather than a broken reference.
// @Summary     Create a comment
// @Description Create a comment on a stock as the authenticated user
// @Tags        comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "Stock ID"
// @Param       request body CreateCommentRequest true "Comment details"
// @Success     201 {object} models.Comment "Comment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stockID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	exists, err := h.stockService.StockExists(stockID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !exists {
		respondWithError(c, apperrors.ErrStockNotFound)
		return
	}

	comment, err := h.commentService.CreateComment(stockID, userID, req.Title, req.Content)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_COMMENT", "comment", comment.ID, c.ClientIP(),
		map[string]interface{}{"stock_id": stockID, "title": req.Title})

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// UpdateComment handles the update of a comment's title and content.
// @Summary     Update a comment
// @Description Update the title and content of an existing comment
// @Tags        comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "Comment ID"
// @Param       request body UpdateCommentRequest true "New comment details"
// @Success     200 {object} models.Comment "Comment updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Comment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	comment, err := h.commentService.UpdateComment(id, req.Title, req.Content)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_COMMENT", "comment", comment.ID, c.ClientIP(),
		map[string]interface{}{"title": req.Title})

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment handles the deletion of a comment.
// @Summary     Delete a comment
// @Description Delete a comment by ID
// @Tags        comments
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Comment ID"
// @Success     204 "Comment deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Comment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.commentService.DeleteComment(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_COMMENT", "comment", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
