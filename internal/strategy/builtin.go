package strategy

import (
	"math"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
)

// Имена встроенных стратегий.
const (
	NameHold  = "hold"
	NameChase = "chase"
	NameGuard = "guard"
)

// HoldPosition - герой стоит на месте. Базовая линия для сравнения
// и удобный "нулевой" противник в headless-прогонах.
func HoldPosition(w *domain.World) (domain.Position, error) {
	return w.Hero, nil
}

// ChaseNearestZombie гонится за ближайшим живым зомби.
// Целимся в NextPos (прогноз следующего шага), а не в текущую позицию:
// так герой срезает угол вместо того, чтобы бежать во вчерашний день.
func ChaseNearestZombie(w *domain.World) (domain.Position, error) {
	best := w.Hero
	bestDist := math.MaxFloat64

	for i := range w.Zombies {
		z := &w.Zombies[i]
		if !z.Alive {
			continue
		}
		d := w.Hero.DistanceTo(z.Pos)
		if d < bestDist {
			bestDist = d
			best = z.NextPos
		}
	}
	return best, nil
}

// GuardThreatenedHuman встает рядом с жителем, до которого зомби
// доберутся раньше всего.
func GuardThreatenedHuman(w *domain.World) (domain.Position, error) {
	best := w.Hero
	bestDist := math.MaxFloat64

	for i := range w.Humans {
		h := &w.Humans[i]
		if !h.Alive {
			continue
		}
		for j := range w.Zombies {
			z := &w.Zombies[j]
			if !z.Alive {
				continue
			}
			if d := z.Pos.DistanceTo(h.Pos); d < bestDist {
				bestDist = d
				best = h.Pos
			}
		}
	}

	if bestDist == math.MaxFloat64 {
		// Защищать некого (или не от кого) - добиваем ближайшего зомби.
		return ChaseNearestZombie(w)
	}
	return best, nil
}
