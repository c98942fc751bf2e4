package engine

import (
	"fmt"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
	"github.com/cajubelt/2025-xmas-website/internal/systems"
)

// Step продвигает мир ровно на один ход к точке назначения героя target.
//
// Чистая state-transition функция: вход не мутируется, возвращается полностью
// независимый новый снапшот. Порядок фаз ЖЕСТКИЙ, перестановка меняет исход:
//
//  1. инкремент счетчика хода;
//  2. зомби идут к ближайшей цели (позиции жителей и героя - на НАЧАЛО хода);
//  3. герой идет к target;
//  4. убийства: зомби в KillRadius от НОВОЙ позиции героя умирают, в порядке
//     списка, с комбо-очками;
//  5. потери: жители в EatRadius от НОВОЙ позиции зомби погибают;
//  6. пересчет прогноза NextPos по уже обновленному миру (информационное поле);
//  7. проверка исхода (победа проверяется первой - это осознанный тай-брейк).
//
// Ошибок нет ни для каких координат: выход за поле и отрицательные значения
// допустимы, функция тотальная.
func Step(w *domain.World, target domain.Position) *domain.World {
	next := w.Clone()

	// Завершенную партию не трогаем: исход выставляется один раз.
	if next.Outcome.Terminal() {
		return next
	}

	// 1. Время.
	next.Turn++

	// 2. Движение зомби. Жители не двигаются вообще, герой двигается только
	// в фазе 3, поэтому next здесь еще совпадает с состоянием начала хода.
	for i := range next.Zombies {
		z := &next.Zombies[i]
		if !z.Alive {
			continue
		}
		dest := systems.NearestTarget(*z, next.Humans, next.Hero)
		z.Pos = systems.MoveToward(z.Pos, dest, domain.ZombieSpeed)
	}

	// 3. Движение героя.
	next.Hero = systems.MoveToward(next.Hero, target, domain.HeroSpeed)

	// 4. Убийства. Квадрат числа живых жителей фиксируется ОДИН раз на ход,
	// до первого убийства, и между убийствами не пересчитывается.
	aliveHumans := next.AliveHumans()
	kills := 0
	for i := range next.Zombies {
		z := &next.Zombies[i]
		if !z.Alive {
			continue
		}
		if z.Pos.DistanceTo(next.Hero) <= domain.KillRadius {
			z.Alive = false
			kills++
			next.Score += systems.KillReward(aliveHumans, kills)
		}
	}

	// 5. Потери. Считаются по НОВЫМ позициям зомби, герой здесь ни при чем.
	for i := range next.Zombies {
		z := &next.Zombies[i]
		if !z.Alive {
			continue
		}
		for j := range next.Humans {
			h := &next.Humans[j]
			if !h.Alive {
				continue
			}
			if z.Pos.DistanceTo(h.Pos) <= domain.EatRadius {
				h.Alive = false
			}
		}
	}

	// 6. Прогноз следующего шага зомби по пост-фактум миру.
	// На механику не влияет, нужен фронтенду и стратегиям.
	for i := range next.Zombies {
		z := &next.Zombies[i]
		if !z.Alive {
			continue
		}
		dest := systems.NearestTarget(*z, next.Humans, next.Hero)
		z.NextPos = systems.MoveToward(z.Pos, dest, domain.ZombieSpeed)
	}

	// 7. Исход. Победа проверяется ПЕРВОЙ: если на одном ходу погибли
	// последний зомби и последний житель, партия считается выигранной.
	if next.AliveZombies() == 0 {
		next.Outcome = domain.OutcomeWon
		next.Summary = fmt.Sprintf("All zombies eliminated on turn %d. Score: %d", next.Turn, next.Score)
	} else if next.AliveHumans() == 0 {
		next.Outcome = domain.OutcomeLost
		next.Summary = fmt.Sprintf("All humans lost on turn %d", next.Turn)
	}

	return next
}
