package types

// KnowledgeRequest is the POST /knowledge body. Exactly one of the two
// shapes must be present: {url} or {title, content}.
type KnowledgeRequest struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type SpeechRequest struct {
	Text string `json:"text"`
}
