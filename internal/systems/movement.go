package systems

import (
	"math"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
)

// MoveToward вычисляет новую позицию при движении из from в to с шагом не более maxStep.
// Состояние мира не трогает - чистая функция.
//
// Правила:
//   - maxStep <= 0 означает "стоим на месте" (защитный кламп);
//   - если цель ближе maxStep, прилипаем к ней ТОЧНО (иначе сущность будет
//     вечно осциллировать вокруг цели);
//   - иначе идем по прямой ровно на maxStep, а координаты приводим через
//     math.Floor. Именно Floor (к минус бесконечности), не Round и не Trunc:
//     от этого зависит бит-в-бит воспроизводимость реплеев.
func MoveToward(from, to domain.Position, maxStep float64) domain.Position {
	if maxStep <= 0 {
		return from
	}

	dist := from.DistanceTo(to)
	if dist <= maxStep {
		// Сюда же попадает вырожденный случай from == to (dist == 0).
		return to
	}

	k := maxStep / dist
	return domain.Position{
		X: math.Floor(from.X + (to.X-from.X)*k),
		Y: math.Floor(from.Y + (to.Y-from.Y)*k),
	}
}
