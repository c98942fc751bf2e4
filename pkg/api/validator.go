package api

import (
	"errors"
	"math"
)

// Validator - интерфейс, который реализуют DTO с проверяемыми полями.
type Validator interface {
	Validate() error
}

func (p TargetPayload) Validate() error {
	// Диапазон не проверяем (за поле выходить можно), но NaN и бесконечности
	// ломают геометрию и не должны попадать в симулятор.
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return errors.New("target coordinates must be numbers")
	}
	if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return errors.New("target coordinates must be finite")
	}
	return nil
}

func (p StrategyPayload) Validate() error {
	// Пустое имя валидно: это переход в ручной режим.
	return nil
}

func (p ScenarioPayload) Validate() error {
	if p.ID < 0 {
		return errors.New("scenario id must be non-negative")
	}
	return nil
}
