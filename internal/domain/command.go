package domain

import "encoding/json"

// InternalCommand - команда, прошедшая парсинг на границе транспорта.
// Дальше по движку ходит только она, сырой JSON остается в Payload.
type InternalCommand struct {
	Action    ActionType
	SessionID string
	Payload   json.RawMessage
}
