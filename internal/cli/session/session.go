// Package session owns the conversation state of the chat panel: the
// append-only message log, the backend-assigned session id, and the
// single-flight send guard.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/types"
)

// WelcomeMessage opens every conversation.
const WelcomeMessage = "Welcome to Aura. I am here to help you find objects that resonate with your life. How may I assist?"

// Fallback replies shown when a send does not produce an assistant answer.
// The two texts differ on purpose: an empty reply from the backend and a
// transport error are distinct failure classes, even though the user recovers
// from both the same way.
const (
	FallbackNoData    = "I'm having trouble connecting to the server. Please try again later."
	FallbackTransport = "An error occurred. Please check your connection."
)

// Sender is the gateway operation the controller depends on
type Sender interface {
	SendChatMessage(ctx context.Context, req *types.ChatRequest) (*types.ChatResponse, error)
}

// Controller drives one chat conversation. All methods are safe for
// concurrent use; Submit runs off the UI goroutine.
type Controller struct {
	mu          sync.Mutex
	sender      Sender
	messages    []types.ChatMessage
	sessionID   string
	sending     bool
	suggestions []string
	now         func() time.Time
}

// New creates a controller seeded with the welcome message
func New(sender Sender) *Controller {
	c := &Controller{
		sender: sender,
		now:    time.Now,
	}
	c.messages = append(c.messages, types.ChatMessage{
		Role:      types.RoleAssistant,
		Text:      WelcomeMessage,
		Timestamp: c.now(),
	})
	return c
}

// Submit sends one user message and reconciles the reply into the log.
//
// It reports false without side effects when the trimmed text is empty or a
// send is already in flight, so a double submit produces exactly one network
// call and one user/assistant message pair. The user's own message is
// appended before the network call and is never rolled back.
func (c *Controller) Submit(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	c.mu.Lock()
	if c.sending {
		c.mu.Unlock()
		return false
	}
	c.sending = true
	c.messages = append(c.messages, types.ChatMessage{
		Role:      types.RoleUser,
		Text:      text,
		Timestamp: c.now(),
	})
	req := &types.ChatRequest{
		Message:   text,
		SessionID: c.sessionID,
	}
	c.mu.Unlock()

	// The in-flight flag is cleared no matter which branch runs below, so
	// the input never sticks in a disabled state.
	defer func() {
		c.mu.Lock()
		c.sending = false
		c.mu.Unlock()
	}()

	resp, err := c.sender.SendChatMessage(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case err != nil:
		c.appendAssistant(FallbackTransport)
	case resp == nil:
		c.appendAssistant(FallbackNoData)
	default:
		if resp.SessionID != "" {
			c.sessionID = resp.SessionID
		}
		c.suggestions = resp.SuggestedProducts
		c.appendAssistant(resp.Message)
	}

	return true
}

// appendAssistant appends an assistant message. Caller holds the lock.
func (c *Controller) appendAssistant(text string) {
	c.messages = append(c.messages, types.ChatMessage{
		Role:      types.RoleAssistant,
		Text:      text,
		Timestamp: c.now(),
	})
}

// Messages returns a snapshot of the conversation log
func (c *Controller) Messages() []types.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// SessionID returns the current backend-assigned session id, if any
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Busy reports whether a send is in flight
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sending
}

// Suggestions returns the product suggestions from the latest reply
func (c *Controller) Suggestions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suggestions
}
