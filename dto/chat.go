package dto

// ChatTurnDTO is one history entry supplied by the caller. Content is
// deliberately untyped: malformed turns are dropped by the prompt builder
// instead of failing the request.
type ChatTurnDTO struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type ChatRequestDTO struct {
	Message string        `json:"message"`
	History []ChatTurnDTO `json:"history"`
}

type ChatResponseDTO struct {
	Reply string `json:"reply"`
}
