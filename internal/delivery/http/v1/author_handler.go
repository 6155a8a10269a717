package v1

import (
	"net/http"

	"go-publishing-backend/internal/delivery/http/response"
	"go-publishing-backend/internal/domain"
	"go-publishing-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	authorUC domain.AuthorUsecase
}

// NewAuthorHandler registers the author-information routes (public)
func NewAuthorHandler(public *gin.RouterGroup, authorUC domain.AuthorUsecase) {
	handler := &AuthorHandler{authorUC: authorUC}

	public.GET("/author-info", handler.GetAuthorInfo)
	public.POST("/author-info", handler.SubmitInquiry)
}

// GetAuthorInfo godoc
// @Summary      Author Information
// @Description  Returns submission guidelines, statistics, and support contacts for authors.
// @Tags         authors
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /author-info [get]
func (h *AuthorHandler) GetAuthorInfo(c *gin.Context) {
	info, err := h.authorUC.GetAuthorInfo(c.Request.Context())
	if err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to fetch author information", err))
		return
	}
	// Stable content, cacheable for an hour
	c.Header("Cache-Control", "public, max-age=3600, s-maxage=3600")
	response.Success(c, http.StatusOK, "Author information retrieved", info)
}

// SubmitInquiry godoc
// @Summary      Submit Author Inquiry
// @Tags         authors
// @Accept       json
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /author-info [post]
func (h *AuthorHandler) SubmitInquiry(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	inquiry, err := h.authorUC.SubmitInquiry(c.Request.Context(), fields)
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	response.Success(c, http.StatusCreated, "Inquiry submitted successfully", gin.H{
		"inquiryId": inquiry.ID,
	})
}
