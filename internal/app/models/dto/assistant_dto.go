package dto

// AskRequest is a free-text question forwarded to the assistant webhook.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskResponse carries the webhook's free-text answer.
type AskResponse struct {
	Answer string `json:"answer"`
}
