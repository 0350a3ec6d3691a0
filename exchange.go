package foodlink

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Fallback replies shown in place of a failed backend call.
const (
	RecipientFallback = "I apologize, but I encountered an error. Please try again or check that the backend server is running."
	DonorFallback     = "I apologize, but I encountered an error. Please try again or contact the organizations directly using the information on this page."
)

// Exchange owns the state of one chat surface: the transcript, the pending
// input, the latest auxiliary results, and whether a reply is outstanding.
//
// A send moves the exchange from idle to awaiting with Begin and back with
// Complete. Callers that can block use Send, which does both around a
// backend call. An Exchange must only be mutated from one goroutine; in the
// TUI that is the Bubble Tea update loop.
type Exchange struct {
	chat     Chatter
	session  Session
	logger   zerolog.Logger
	fallback string
	greeting string

	messages      []Message
	resources     []Resource
	organizations []Organization
	input         string
	awaiting      bool
	seeded        bool
}

// ExchangeOption configures an [Exchange].
type ExchangeOption func(*Exchange)

// WithFallback sets the assistant text appended when a backend call fails.
func WithFallback(text string) ExchangeOption {
	return func(e *Exchange) { e.fallback = text }
}

// WithGreeting sets a local assistant message that opens the transcript.
// It is never sent to the backend.
func WithGreeting(text string) ExchangeOption {
	return func(e *Exchange) { e.greeting = text }
}

// WithLogger sets the logger used to record failed backend calls.
func WithLogger(l zerolog.Logger) ExchangeOption {
	return func(e *Exchange) { e.logger = l }
}

// NewExchange creates an idle Exchange for session.
func NewExchange(chat Chatter, session Session, opts ...ExchangeOption) *Exchange {
	e := &Exchange{
		chat:     chat,
		session:  session,
		logger:   zerolog.Nop(),
		fallback: RecipientFallback,
	}
	for _, o := range opts {
		o(e)
	}
	if e.greeting != "" {
		e.messages = append(e.messages, AssistantMessage(e.greeting))
	}
	return e
}

// Session returns the session the exchange talks on behalf of.
func (e *Exchange) Session() Session { return e.session }

// Messages returns a copy of the transcript in display order.
func (e *Exchange) Messages() []Message { return slices.Clone(e.messages) }

// Awaiting reports whether a backend reply is outstanding.
func (e *Exchange) Awaiting() bool { return e.awaiting }

// Input returns the pending input buffer.
func (e *Exchange) Input() string { return e.input }

// SetInput replaces the pending input buffer.
func (e *Exchange) SetInput(s string) { e.input = s }

// Resources returns the most recent non-empty resource list.
func (e *Exchange) Resources() []Resource { return slices.Clone(e.resources) }

// Organizations returns the most recent non-empty organization list.
func (e *Exchange) Organizations() []Organization { return slices.Clone(e.organizations) }

// SetLocation replaces the session's free-text location hint.
func (e *Exchange) SetLocation(place string) { e.session.Location = strings.TrimSpace(place) }

// HasUserMessage reports whether the user has sent anything yet.
func (e *Exchange) HasUserMessage() bool {
	return slices.ContainsFunc(e.messages, func(m Message) bool { return m.Role == RoleUser })
}

// Begin moves the exchange from idle to awaiting. It appends text as a user
// message, clears the input buffer, and returns the request to send. It
// returns false, leaving all state untouched, when text is blank or a reply
// is already outstanding.
func (e *Exchange) Begin(text string) (ChatRequest, bool) {
	if e.awaiting {
		return ChatRequest{}, false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ChatRequest{}, false
	}
	e.messages = append(e.messages, UserMessage(text))
	e.input = ""
	e.awaiting = true
	return ChatRequest{
		SessionID: e.session.ID,
		Message:   text,
		Agent:     e.session.Agent,
		Location:  e.session.Location,
	}, true
}

// BeginInput is Begin with the pending input buffer.
func (e *Exchange) BeginInput() (ChatRequest, bool) {
	return e.Begin(e.input)
}

// BeginSeed begins an automatic first message. It fires at most once per
// Exchange, and only when when is true and the transcript is empty.
// Re-evaluating the same condition later never sends a second seed.
func (e *Exchange) BeginSeed(when bool, text string) (ChatRequest, bool) {
	if !when || e.seeded || len(e.messages) > 0 {
		return ChatRequest{}, false
	}
	req, ok := e.Begin(text)
	if ok {
		e.seeded = true
	}
	return req, ok
}

// BeginLocation records place as the session's location hint and begins an
// "I'm near <place>" message.
func (e *Exchange) BeginLocation(place string) (ChatRequest, bool) {
	place = strings.TrimSpace(place)
	if e.awaiting || place == "" {
		return ChatRequest{}, false
	}
	e.session.Location = place
	return e.Begin("I'm near " + place)
}

// Call performs the backend request for req. It does not touch exchange
// state and is safe to run off the update goroutine; pass its results to
// Complete.
func (e *Exchange) Call(ctx context.Context, req ChatRequest) (ChatReply, error) {
	return e.chat.SendChat(ctx, req)
}

// Complete moves the exchange from awaiting back to idle. On success the
// reply is appended and non-empty result lists replace the stored ones
// wholesale. On failure the error is logged and the fixed fallback text is
// appended instead. Complete is a no-op when nothing is outstanding.
func (e *Exchange) Complete(reply ChatReply, err error) {
	if !e.awaiting {
		return
	}
	e.awaiting = false
	if err != nil {
		e.logger.Error().Err(err).
			Str("session_id", e.session.ID).
			Str("agent_type", string(e.session.Agent)).
			Msg("chat message failed")
		e.messages = append(e.messages, AssistantMessage(e.fallback))
		return
	}
	e.messages = append(e.messages, AssistantMessage(reply.Response))
	if len(reply.Resources) > 0 {
		e.resources = reply.Resources
	}
	if len(reply.Organizations) > 0 {
		e.organizations = reply.Organizations
	}
}

// Send runs a full exchange for text and blocks until the backend answers.
// It returns false when the send was rejected by Begin.
func (e *Exchange) Send(ctx context.Context, text string) bool {
	req, ok := e.Begin(text)
	return e.finish(ctx, req, ok)
}

// Submit is Send with the pending input buffer.
func (e *Exchange) Submit(ctx context.Context) bool {
	req, ok := e.BeginInput()
	return e.finish(ctx, req, ok)
}

// Seed is the blocking form of BeginSeed.
func (e *Exchange) Seed(ctx context.Context, when bool, text string) bool {
	req, ok := e.BeginSeed(when, text)
	return e.finish(ctx, req, ok)
}

// ShareLocation is the blocking form of BeginLocation.
func (e *Exchange) ShareLocation(ctx context.Context, place string) bool {
	req, ok := e.BeginLocation(place)
	return e.finish(ctx, req, ok)
}

func (e *Exchange) finish(ctx context.Context, req ChatRequest, ok bool) bool {
	if !ok {
		return false
	}
	reply, err := e.Call(ctx, req)
	e.Complete(reply, err)
	return true
}
