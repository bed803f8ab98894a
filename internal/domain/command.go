package domain

import (
	"encoding/json"

	"randroom/internal/core/types/enums"
)

// Command - одно действие игрока, прочитанное из ввода.
// Payload (api.DirectionPayload, api.InventoryPayload) разбирает
// соответствующий обработчик.
type Command struct {
	Action  enums.ActionType `json:"action"`
	Payload json.RawMessage  `json:"payload,omitempty"`
}

// NewCommand собирает команду с JSON-нагрузкой.
func NewCommand(action enums.ActionType, payload any) Command {
	cmd := Command{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			panic("domain: unmarshalable command payload: " + err.Error())
		}
		cmd.Payload = raw
	}
	return cmd
}
