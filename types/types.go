package types

const (
	TypeWebsocketPing  = "ping"
	TypeWebsocketPong  = "pong"
	TypeWebsocketChat  = "chat"
	TypeWebsocketError = "error"
)

type WebsocketRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebsocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebsocketChatPayload struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type WebsocketChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type WebsocketErrorResponse struct {
	Error string `json:"error"`
}
