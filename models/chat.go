package models

// ChatTurn is one prior (user, assistant) exchange. The assistant reply may
// be empty when the UI submits history for a turn that never completed.
type ChatTurn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// ChatRequest is the payload coming from the frontend into /api/assistant/chat.
type ChatRequest struct {
	Message string     `json:"message" binding:"required"`
	History []ChatTurn `json:"history"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// LoginRequest carries the Pega operator credentials for the login probe.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token the UI must present on later calls.
type LoginResponse struct {
	Token string `json:"token"`
}
