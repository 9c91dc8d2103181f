// Package bridge connects the TUI to the AI backend. Chat keeps a
// local transcript and never surfaces backend failures: when the server
// or the circuit breaker refuses a call, the buddy answers from the
// local persona tables instead. Voice playback is best-effort in the
// same way.
package bridge

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/ckarenz/bodybuddy/internal/api"
	"github.com/ckarenz/bodybuddy/internal/logging"
	"github.com/ckarenz/bodybuddy/internal/persona"
)

// Sender identifies who wrote a transcript entry.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderBuddy Sender = "buddy"
)

// Message is one transcript entry.
type Message struct {
	From Sender
	Text string
	Time time.Time
}

// ChatBackend is the slice of the API client the chat bridge needs.
type ChatBackend interface {
	SendChat(ctx context.Context, userID, text string) (api.ChatReply, error)
	ChatHistory(ctx context.Context, userID string) ([]api.ChatMessage, error)
}

// Chat is the conversation between the user and the buddy.
type Chat struct {
	mu         sync.Mutex
	backend    ChatBackend
	gen        *persona.Generator
	logger     *logging.Logger
	userID     string
	now        func() time.Time
	transcript []Message
}

// NewChat creates a chat bridge for one user. A nil logger is replaced
// with a no-op one.
func NewChat(backend ChatBackend, gen *persona.Generator, userID string, logger *logging.Logger) *Chat {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Chat{
		backend: backend,
		gen:     gen,
		logger:  logger,
		userID:  userID,
		now:     time.Now,
	}
}

// SetClock overrides the bridge's notion of now.
func (c *Chat) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Send records the user's message, asks the backend for a reply and
// records exactly one buddy answer. A backend failure is downgraded to
// a local persona response, so Send never returns an error.
func (c *Chat) Send(ctx context.Context, text string) Message {
	c.mu.Lock()
	c.transcript = append(c.transcript, Message{From: SenderUser, Text: text, Time: c.now()})
	c.mu.Unlock()

	// The lock is not held across the network call: Send runs off the
	// event loop, and Transcript() must stay prompt for renders while
	// the backend is answering.
	replyText := ""
	if c.backend != nil {
		reply, err := c.backend.SendChat(ctx, c.userID, text)
		if err != nil {
			c.logger.Warn("chat backend failed, using local response", "error", err)
		} else {
			replyText = reply.Text
		}
	}
	if replyText == "" {
		replyText = c.gen.ChatResponse()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	msg := Message{From: SenderBuddy, Text: replyText, Time: c.now()}
	c.transcript = append(c.transcript, msg)
	return msg
}

// LoadHistory replaces the transcript with the backend's stored
// conversation, oldest first. Failures leave the current transcript in
// place.
func (c *Chat) LoadHistory(ctx context.Context) {
	if c.backend == nil {
		return
	}

	msgs, err := c.backend.ChatHistory(ctx, c.userID)
	if err != nil {
		c.logger.Warn("chat history unavailable", "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.transcript = c.transcript[:0]
	for _, m := range msgs {
		from := SenderBuddy
		if m.Role == "user" {
			from = SenderUser
		}
		c.transcript = append(c.transcript, Message{From: from, Text: m.Content})
	}
}

// Transcript returns a copy of the conversation, oldest first.
func (c *Chat) Transcript() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.transcript...)
}

// Greet seeds an empty transcript with a buddy greeting. A non-empty
// transcript is left alone.
func (c *Chat) Greet(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.transcript) > 0 {
		return
	}
	c.transcript = append(c.transcript, Message{From: SenderBuddy, Text: text, Time: c.now()})
}

// VoiceBackend is the slice of the API client the speaker needs.
type VoiceBackend interface {
	Say(ctx context.Context, req api.SayRequest) (io.ReadCloser, error)
}

// Player consumes a synthesized audio stream.
type Player interface {
	Play(ctx context.Context, audio io.Reader) error
}

// discardPlayer drains the stream. Used when no audio device is wired
// up, which keeps TTS exercised end to end without playback.
type discardPlayer struct{}

func (discardPlayer) Play(_ context.Context, audio io.Reader) error {
	_, err := io.Copy(io.Discard, audio)
	return err
}

// Speaker speaks persona lines through the backend's TTS endpoint.
type Speaker struct {
	backend VoiceBackend
	player  Player
	logger  *logging.Logger
	tone    persona.Tone
	enabled bool
}

// NewSpeaker creates a speaker. A nil player discards the audio; a nil
// logger is replaced with a no-op one.
func NewSpeaker(backend VoiceBackend, player Player, tone persona.Tone, enabled bool, logger *logging.Logger) *Speaker {
	if player == nil {
		player = discardPlayer{}
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Speaker{
		backend: backend,
		player:  player,
		logger:  logger,
		tone:    tone,
		enabled: enabled,
	}
}

// Enabled reports whether voice output is on.
func (s *Speaker) Enabled() bool {
	return s.enabled
}

// SetEnabled toggles voice output.
func (s *Speaker) SetEnabled(on bool) {
	s.enabled = on
}

// Say synthesizes and plays a line. Failures are logged and swallowed;
// a session never stalls on audio.
func (s *Speaker) Say(ctx context.Context, text string) {
	if !s.enabled || s.backend == nil || text == "" {
		return
	}

	stream, err := s.backend.Say(ctx, api.SayRequest{
		Text:        text,
		ReferenceID: s.tone.VoiceModelID(),
	})
	if err != nil {
		s.logger.Warn("voice synthesis failed", "error", err)
		return
	}
	defer stream.Close()

	if err := s.player.Play(ctx, stream); err != nil {
		s.logger.Warn("voice playback failed", "error", err)
	}
}
