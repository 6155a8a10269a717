package v1

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go-publishing-backend/internal/delivery/http/response"
	"go-publishing-backend/internal/domain"
	"go-publishing-backend/pkg/apperror"
	"go-publishing-backend/pkg/imaging"
	"go-publishing-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Card images are normalized server side so the public site never serves
// multi-megabyte uploads.
const (
	newsImageMaxEdge = 800
	newsImageQuality = 82
)

type NewsHandler struct {
	newsUC domain.NewsUsecase
}

// NewNewsHandler registers news routes: listing and reading are public,
// mutations require an admin account.
func NewNewsHandler(public *gin.RouterGroup, admin *gin.RouterGroup, newsUC domain.NewsUsecase) {
	handler := &NewsHandler{newsUC: newsUC}

	public.GET("/news", handler.ListNews)
	public.GET("/news/:id", handler.GetNews)

	admin.GET("/news/all", handler.ListAllNews)
	admin.POST("/news", handler.CreateNews)
	admin.PUT("/news/:id", handler.UpdateNews)
	admin.POST("/news/:id/image", handler.UploadImage)
	admin.DELETE("/news/:id", handler.DeleteNews)
}

// ListNews godoc
// @Summary      List News
// @Description  Returns active news items for the public site, newest first.
// @Tags         news
// @Produce      json
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  response.Response
// @Router       /news [get]
func (h *NewsHandler) ListNews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, total, err := h.newsUC.ListNews(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "News retrieved", gin.H{"items": items, "total": total})
}

// ListAllNews returns every item, inactive included, for the admin console.
func (h *NewsHandler) ListAllNews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, total, err := h.newsUC.ListAllNews(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "News retrieved", gin.H{"items": items, "total": total})
}

// GetNews godoc
// @Summary      Get News Item
// @Tags         news
// @Produce      json
// @Param        id   path  int  true  "News ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /news/{id} [get]
func (h *NewsHandler) GetNews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("id must be an integer"))
		return
	}

	item, err := h.newsUC.GetNews(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("News item not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "News item retrieved", item)
}

// CreateNews godoc
// @Summary      Create News Item
// @Description  Creates a news item. Admin only.
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        news  body      domain.NewsRequest  true  "News Data"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /news [post]
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req domain.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	item, err := h.newsUC.CreateNews(c.Request.Context(), &req)
	if err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			response.Error(c, http.StatusBadRequest, "Validation failed", validation.FormatValidationErrors(verrs))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusCreated, "News item created", item)
}

// UpdateNews godoc
// @Summary      Update News Item
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "News ID"
// @Param        news  body  domain.NewsRequest  true  "News Data"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /news/{id} [put]
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("id must be an integer"))
		return
	}

	var req domain.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	item, err := h.newsUC.UpdateNews(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("News item not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "News item updated", item)
}

// UploadImage godoc
// @Summary      Upload News Image
// @Description  Accepts a multipart image, resizes it to card dimensions, and stores it on the item. Admin only.
// @Tags         news
// @Accept       mpfd
// @Produce      json
// @Param        id     path      int   true  "News ID"
// @Param        image  formData  file  true  "Card image (JPEG or PNG, max 5MB)"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /news/{id}/image [post]
func (h *NewsHandler) UploadImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("id must be an integer"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.Error(apperror.BadRequest("image file is required"))
		return
	}
	if fileHeader.Size > 5<<20 {
		c.Error(apperror.BadRequest("image must be at most 5MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	thumb, err := imaging.Thumbnail(data, newsImageMaxEdge, newsImageQuality)
	if err != nil {
		c.Error(apperror.BadRequest("image must be a valid JPEG or PNG"))
		return
	}

	encoded := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(thumb)
	item, err := h.newsUC.SetNewsImage(c.Request.Context(), id, encoded)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("News item not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "News image updated", item)
}

// DeleteNews godoc
// @Summary      Delete News Item
// @Tags         news
// @Produce      json
// @Param        id   path  int  true  "News ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /news/{id} [delete]
func (h *NewsHandler) DeleteNews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("id must be an integer"))
		return
	}

	if err := h.newsUC.DeleteNews(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("News item not found"))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "News item deleted", nil)
}
