package dtos

// SearchRequest is the body of POST /api/v1/jobs/fetch.
type SearchRequest struct {
	Keywords string `json:"keywords" binding:"required"`
	Location string `json:"location"`
}

// ChatRequest is the body of POST /api/v1/assistant/chat.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=resume cover_letter"`
}
