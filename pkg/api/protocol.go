package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - корневой объект, который сервер отправляет клиенту:
// полный снимок партии после очередного хода (или по запросу INIT).
// Дельт нет - состояние маленькое, шлем целиком.
type ServerResponse struct {
	// Type тип сообщения: "INIT", "UPDATE" или "ERROR".
	Type string `json:"type"`

	// SessionID ID сессии клиента (назначается при рукопожатии).
	SessionID string `json:"sessionId,omitempty"`

	// ScenarioID и ScenarioName - текущий выбранный уровень.
	ScenarioID   int    `json:"scenarioId"`
	ScenarioName string `json:"scenarioName,omitempty"`

	// Strategy - имя активной стратегии ("manual", если герой водится руками).
	Strategy string `json:"strategy,omitempty"`

	// Control - состояние интерактивного цикла: NOT_STARTED, RUNNING, PAUSED.
	// Ортогонально исходу партии в World.Outcome.
	Control string `json:"control,omitempty"`

	// World - снимок партии.
	World *WorldView `json:"world,omitempty"`

	// Error - описание сбоя стратегии или невалидной команды.
	// Партия при этом остается в последнем валидном состоянии.
	Error string `json:"error,omitempty"`

	// Справочники для UI (отправляются в INIT).
	Scenarios  []ScenarioInfo `json:"scenarios,omitempty"`
	Strategies []string       `json:"strategies,omitempty"`
}

// WorldView - DTO снимка партии.
type WorldView struct {
	Hero    PositionView `json:"hero"`
	Humans  []HumanView  `json:"humans"`
	Zombies []ZombieView `json:"zombies"`
	Score   int          `json:"score"`
	Turn    int          `json:"turn"`
	Outcome string       `json:"outcome"` // ONGOING, WON, LOST
	Summary string       `json:"summary,omitempty"`
}

type PositionView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type HumanView struct {
	ID    int          `json:"id"`
	Pos   PositionView `json:"pos"`
	Alive bool         `json:"alive"`
}

// ZombieView дополнительно несет NextPos - прогноз следующего шага,
// чтобы фронтенд мог рисовать стрелку намерения.
type ZombieView struct {
	ID      int          `json:"id"`
	Pos     PositionView `json:"pos"`
	NextPos PositionView `json:"nextPos"`
	Alive   bool         `json:"alive"`
}

// ScenarioInfo - краткая карточка уровня для меню выбора.
type ScenarioInfo struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Humans  int    `json:"humans"`
	Zombies int    `json:"zombies"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - корневой объект всех сообщений от клиента.
type ClientCommand struct {
	// Action название действия: INIT, SCENARIO, STRATEGY, TARGET,
	// START, PAUSE, STEP, RESET.
	Action string `json:"action"`

	// Payload - JSON с данными действия, структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// ScenarioPayload выбирает уровень (действие SCENARIO).
type ScenarioPayload struct {
	ID int `json:"id"`
}

// StrategyPayload выбирает стратегию по имени (действие STRATEGY).
// Пустое имя переводит партию в ручной режим.
type StrategyPayload struct {
	Name string `json:"name"`
}

// TargetPayload задает точку назначения героя в ручном режиме (действие TARGET).
// Координаты принимаются любые: симулятор не требует попадания в поле.
type TargetPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
