package domain

import "math"

// Position - точка на игровом поле.
// Координаты float64, но после каждого шага движения они приводятся
// к целым значениям (см. systems.MoveToward), так что в устоявшемся
// состоянии мир живет на целочисленной сетке.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo возвращает евклидово расстояние до другой точки.
func (p Position) DistanceTo(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}
