package domain

import "strings"

// ActionType - внутренний числовой идентификатор команды клиента.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionScenario
	ActionStrategy
	ActionTarget
	ActionStart
	ActionPause
	ActionStep
	ActionReset
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":     ActionInit,
	"SCENARIO": ActionScenario,
	"STRATEGY": ActionStrategy,
	"TARGET":   ActionTarget,
	"START":    ActionStart,
	"PAUSE":    ActionPause,
	"STEP":     ActionStep,
	"RESET":    ActionReset,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:     "INIT",
	ActionScenario: "SCENARIO",
	ActionStrategy: "STRATEGY",
	ActionTarget:   "TARGET",
	ActionStart:    "START",
	ActionPause:    "PAUSE",
	ActionStep:     "STEP",
	ActionReset:    "RESET",
}

// ParseAction конвертирует строку из JSON в ActionType.
// Нечувствительна к регистру для надежности.
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf и логов).
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
