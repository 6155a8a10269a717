package v1

import (
	"net/http"
	"time"

	"go-publishing-backend/internal/delivery/http/response"
	"go-publishing-backend/internal/domain"
	"go-publishing-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

// NewChatHandler registers the chatbot routes (public, no auth required)
func NewChatHandler(public *gin.RouterGroup, chatUC domain.ChatUsecase) {
	handler := &ChatHandler{chatUC: chatUC}

	public.POST("/chat", handler.SendMessage)
	public.GET("/chat", handler.Status)
}

// SendMessage godoc
// @Summary      Send Chat Message
// @Description  Sends a visitor message to the site chatbot and returns the canned response.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        chat  body      domain.ChatRequest  true  "Chat Message"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /chat [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Message is required and must be a string"))
		return
	}

	msg, err := h.chatUC.Reply(c.Request.Context(), &req)
	if err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to process chat message", err))
		return
	}

	response.Success(c, http.StatusOK, "Message processed", msg)
}

// Status godoc
// @Summary      Chat Service Status
// @Tags         chat
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /chat [get]
func (h *ChatHandler) Status(c *gin.Context) {
	response.Success(c, http.StatusOK, "Chat API is running", gin.H{
		"endpoints": gin.H{
			"POST":            "Send a chat message",
			"supportedParams": []string{"message", "sessionId", "userType"},
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
