package bubbletea

import (
	"fmt"

	"github.com/foodlink-la/foodlink"
)

// QuickReply is a canned message offered before the conversation starts.
// Label is what the user sees; Value is what gets sent.
type QuickReply struct {
	Label string
	Value string
}

// Surface describes one chat screen: who the backend talks as, the copy
// around the transcript, and the shortcuts offered to the user.
type Surface struct {
	Agent       foodlink.AgentType
	Title       string
	Subtitle    string
	Placeholder string
	Footer      string
	Fallback    string

	// Greeting is a local assistant message that opens the transcript.
	Greeting string
	// Welcome is shown while the transcript is empty.
	WelcomeTitle string
	WelcomeText  string

	QuickReplies      []QuickReply
	QuickReplyHeading string
	// LocationReplies makes a quick reply set the session location and send
	// "I'm near <value>" instead of sending its value verbatim.
	LocationReplies bool

	// SeedText is sent automatically on mount when the surface is opened
	// urgently.
	SeedText string

	ResultsTitle   string
	ResultsSummary func(n int) string
}

// Visitor returns the surface for people looking for food.
func Visitor() Surface {
	return Surface{
		Agent:        foodlink.AgentRecipient,
		Title:        "Food Assistant",
		Subtitle:     "AI-powered help",
		Placeholder:  "Type your message... (e.g., 'I need food near UCLA')",
		Footer:       "Your conversation is private",
		Fallback:     foodlink.RecipientFallback,
		WelcomeTitle: "Hi! I'm here to help you find food.",
		WelcomeText:  "Tell me where you are and what you need. I can help you find food pantries, meal services, and other resources nearby.",
		QuickReplies: []QuickReply{
			{Label: "Near UCLA", Value: "UCLA"},
			{Label: "Santa Monica", Value: "Santa Monica"},
			{Label: "Venice", Value: "Venice"},
		},
		LocationReplies: true,
		SeedText:        "I need food right now, it's urgent",
		ResultsTitle:    "Food Resources Near You",
		ResultsSummary: func(n int) string {
			if n == 1 {
				return "Found 1 resource that can help"
			}
			return fmt.Sprintf("Found %d resources that can help", n)
		},
	}
}

// Donor returns the surface for people offering food.
func Donor() Surface {
	return Surface{
		Agent:       foodlink.AgentDonor,
		Title:       "Donation Assistant",
		Subtitle:    "We'll help connect you with organizations",
		Placeholder: "Describe what you have to donate...",
		Footer:      "We'll connect you with organizations - you coordinate pickup/drop-off directly with them",
		Fallback:    foodlink.DonorFallback,
		Greeting:    "Hi! Thank you for wanting to donate. What do you have to donate? Even a little goes a long way!",
		QuickReplies: []QuickReply{
			{Label: "I have canned goods to donate", Value: "I have canned goods to donate"},
			{Label: "Fresh produce from my garden", Value: "Fresh produce from my garden"},
			{Label: "Unopened groceries", Value: "Unopened groceries"},
			{Label: "Business surplus food", Value: "Business surplus food"},
		},
		QuickReplyHeading: "Quick options:",
		ResultsTitle:      "Matched Organizations for Your Donation",
		ResultsSummary: func(int) string {
			return "These organizations can accept what you're offering. Contact them directly to coordinate pickup or drop-off."
		},
	}
}

// NewExchange starts a fresh session for the surface and returns the
// exchange that drives it. Each call generates a new session id.
func (s Surface) NewExchange(chat foodlink.Chatter, opts ...foodlink.ExchangeOption) *foodlink.Exchange {
	base := []foodlink.ExchangeOption{foodlink.WithFallback(s.Fallback)}
	if s.Greeting != "" {
		base = append(base, foodlink.WithGreeting(s.Greeting))
	}
	return foodlink.NewExchange(chat, foodlink.NewSession(s.Agent), append(base, opts...)...)
}
