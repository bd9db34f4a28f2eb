package models

// Conversation roles. RoleModel is the assistant's side of the dialogue.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatTurn is one prior message of the conversation as sent by the frontend.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"; "assistant" is accepted as "model"
	Text string `json:"text"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

// ChatResponse is what the chat handler returns to the frontend, on success and failure alike.
type ChatResponse struct {
	Response string `json:"response"`
}
