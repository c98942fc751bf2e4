package engine

import (
	"fmt"
	"math/rand"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
)

// Пределы процедурной генерации уровней.
const (
	genMinHumans  = 1
	genMaxHumans  = 4
	genMinZombies = 2
	genMaxZombies = 8
)

// GenerateScenario создает случайный уровень. Раскладка полностью
// определяется сидом: один сид - один и тот же уровень на любой машине,
// поэтому сгенерированные прогоны воспроизводимы так же, как встроенные.
//
// Раскладка проходит две проверки честности:
//   - зомби не появляется так близко к герою, чтобы умереть на первом ходу;
//   - житель не появляется так близко к зомби, чтобы погибнуть на первом ходу.
func GenerateScenario(id int, seed int64) Scenario {
	rng := rand.New(rand.NewSource(seed))

	s := Scenario{
		ID:   id,
		Name: fmt.Sprintf("Generated #%d", seed),
		hero: domain.Position{
			X: float64(domain.FieldWidth/4 + rng.Intn(domain.FieldWidth/2+1)),
			Y: float64(domain.FieldHeight/4 + rng.Intn(domain.FieldHeight/2+1)),
		},
	}

	nHumans := genMinHumans + rng.Intn(genMaxHumans-genMinHumans+1)
	nZombies := genMinZombies + rng.Intn(genMaxZombies-genMinZombies+1)

	// Rejection sampling: перебрасываем точку, пока не ляжет честно.
	// Поле огромное относительно радиусов, так что цикл короткий.
	//
	// Запас учитывает ОБЕ скорости: за один ход зомби и герой могут
	// сблизиться на ZombieSpeed+HeroSpeed, и только дистанция больше
	// KillRadius плюс этот запас гарантирует выживание зомби при любом
	// выборе цели героем.
	for len(s.zombies) < nZombies {
		p := randomPoint(rng)
		if p.DistanceTo(s.hero) <= domain.KillRadius+domain.HeroSpeed+domain.ZombieSpeed {
			continue
		}
		s.zombies = append(s.zombies, p)
	}

	for len(s.humans) < nHumans {
		p := randomPoint(rng)
		if tooCloseToAny(p, s.zombies, domain.EatRadius+domain.ZombieSpeed) {
			continue
		}
		s.humans = append(s.humans, p)
	}

	return s
}

func randomPoint(rng *rand.Rand) domain.Position {
	return domain.Position{
		X: float64(rng.Intn(domain.FieldWidth + 1)),
		Y: float64(rng.Intn(domain.FieldHeight + 1)),
	}
}

func tooCloseToAny(p domain.Position, points []domain.Position, radius float64) bool {
	for _, q := range points {
		if p.DistanceTo(q) <= radius {
			return true
		}
	}
	return false
}
