package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-publishing-backend/internal/domain"

	"github.com/google/uuid"
)

// cannedReply pairs trigger keywords with the bot's response.
type cannedReply struct {
	keywords []string
	response string
}

// Order matters: the first matching entry wins.
var cannedReplies = []cannedReply{
	{
		keywords: []string{"submit", "submission"},
		response: "To submit your manuscript, please visit our submission portal or check our Author Guidelines section. Our submission process typically takes 4-6 weeks for peer review.",
	},
	{
		keywords: []string{"review", "peer"},
		response: "We use a double-blind peer review process. The typical review time is 4-6 weeks, and we maintain high academic standards with expert reviewers in your field.",
	},
	{
		keywords: []string{"publish", "publication"},
		response: "SR Publishing House offers open access publishing across 8+ journals. We support authors through the entire publication process with professional editing services.",
	},
	{
		keywords: []string{"cost", "fee", "price"},
		response: "We offer competitive publication fees with various support options. Please contact our editorial team for specific pricing information based on your manuscript type.",
	},
	{
		keywords: []string{"help", "support"},
		response: "We're here to help! You can reach us at authors@srpublishinghouse.com or check our FAQ section. Our support team responds within 24-48 hours.",
	},
	{
		keywords: []string{"journal", "scope"},
		response: "We publish in multiple fields including science, technology, medicine, social sciences, and humanities. Visit our Journals section to find the best fit for your research.",
	},
}

const defaultChatResponse = "Thank you for your question! For detailed information about submissions, peer review, and our services, please visit our Author Guidelines or contact us at authors@srpublishinghouse.com. How else can I assist you today?"

type chatUsecase struct{}

// NewChatUsecase creates the canned-response chat usecase
func NewChatUsecase() domain.ChatUsecase {
	return &chatUsecase{}
}

func (uc *chatUsecase) Reply(ctx context.Context, req *domain.ChatRequest) (*domain.ChatMessage, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("message is required")
	}

	userType := req.UserType
	if userType == "" {
		userType = domain.ChatUserVisitor
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = fmt.Sprintf("session_%s", uuid.NewString())
	}

	return &domain.ChatMessage{
		ID:          fmt.Sprintf("msg_%s", uuid.NewString()),
		SessionID:   sessionID,
		Timestamp:   time.Now().UTC(),
		UserMessage: req.Message,
		BotResponse: respondTo(req.Message),
		UserType:    userType,
	}, nil
}

func respondTo(message string) string {
	lower := strings.ToLower(message)
	for _, reply := range cannedReplies {
		for _, kw := range reply.keywords {
			if strings.Contains(lower, kw) {
				return reply.response
			}
		}
	}
	return defaultChatResponse
}
