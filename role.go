package foodlink

// Role represents the role of a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// AgentType selects the backend persona that handles a conversation.
type AgentType string

const (
	AgentRecipient AgentType = "recipient" // Someone looking for food.
	AgentDonor     AgentType = "donor"     // Someone offering food.
)

// Valid reports whether a is one of the known agent types.
func (a AgentType) Valid() bool {
	switch a {
	case AgentRecipient, AgentDonor:
		return true
	}
	return false
}
