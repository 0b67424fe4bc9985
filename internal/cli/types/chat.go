package types

import "time"

// Chat message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry in the local conversation log.
// Entries are immutable once appended and are never persisted.
type ChatMessage struct {
	Role      string    `json:"role"` // user, assistant
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatContext carries optional browsing context alongside a chat message
type ChatContext struct {
	CurrentPage      string `json:"currentPage,omitempty"`
	ViewingProductID string `json:"viewingProductId,omitempty"`
	LastOrderNumber  string `json:"lastOrderNumber,omitempty"`
}

// ChatRequest is the wire payload for POST /ai/chat
type ChatRequest struct {
	Message   string       `json:"message"`
	SessionID string       `json:"sessionId,omitempty"`
	Context   *ChatContext `json:"context,omitempty"`
}

// ChatResponse is the assistant's reply. SessionID is backend-assigned;
// the client never invents one.
type ChatResponse struct {
	Message           string            `json:"message"`
	SessionID         string            `json:"sessionId"`
	SuggestedProducts []string          `json:"suggestedProducts,omitempty"`
	SuggestedActions  []SuggestedAction `json:"suggestedActions,omitempty"`
	Timestamp         string            `json:"timestamp"`
}

// SuggestedAction is a follow-up action proposed by the assistant
type SuggestedAction struct {
	Type      string `json:"type"`
	ProductID string `json:"productId,omitempty"`
	Label     string `json:"label"`
}
