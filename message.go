package foodlink

// Message is a single entry in a conversation transcript.
type Message struct {
	Role    Role
	Content string
}

// UserMessage returns a Message authored by the user.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage returns a Message authored by the assistant.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
