package request

type ChatMessageRequest struct {
	SenderID string `json:"senderId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

type MarkReadRequest struct {
	ReaderID string `json:"readerId" binding:"required"`
}
