package systems

import (
	"github.com/cajubelt/2025-xmas-website/internal/domain"
)

// NearestTarget возвращает точку, к которой пойдет зомби на этом ходу.
//
// Базовая цель - герой: житель выбирается только если он СТРОГО ближе
// героя и строго ближе всех ранее рассмотренных жителей. Сравнение через
// строгое "<" дает политику "при равенстве побеждает первый встреченный",
// жители обходятся в порядке списка. Мертвые жители не рассматриваются.
// Функция тотальная: всегда возвращает координату, ошибок нет.
func NearestTarget(z domain.Zombie, humans []domain.Human, hero domain.Position) domain.Position {
	best := hero
	bestDist := z.Pos.DistanceTo(hero)

	for i := range humans {
		if !humans[i].Alive {
			continue
		}
		d := z.Pos.DistanceTo(humans[i].Pos)
		if d < bestDist {
			bestDist = d
			best = humans[i].Pos
		}
	}
	return best
}
