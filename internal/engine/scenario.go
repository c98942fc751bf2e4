package engine

import (
	"fmt"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
	"github.com/cajubelt/2025-xmas-website/internal/systems"
)

// Scenario - именованная фабрика стартового состояния уровня.
// Каждый вызов NewWorld возвращает СВЕЖИЙ независимый снапшот:
// партии, начатые с одного сценария, не делят память.
type Scenario struct {
	ID   int
	Name string

	hero    domain.Position
	humans  []domain.Position
	zombies []domain.Position
}

// NewWorld создает начальное состояние партии.
// ID сущностей назначаются последовательно с нуля внутри каждого списка
// (пространства имен жителей и зомби независимы).
func (s Scenario) NewWorld() *domain.World {
	w := &domain.World{
		Hero:    s.hero,
		Humans:  make([]domain.Human, len(s.humans)),
		Zombies: make([]domain.Zombie, len(s.zombies)),
		Outcome: domain.OutcomeOngoing,
	}
	for i, pos := range s.humans {
		w.Humans[i] = domain.Human{ID: i, Pos: pos, Alive: true}
	}
	for i, pos := range s.zombies {
		w.Zombies[i] = domain.Zombie{ID: i, Pos: pos, Alive: true}
	}

	// Стартовый прогноз движения зомби, чтобы фронтенд и стратегии
	// видели NextPos уже на нулевом ходу.
	for i := range w.Zombies {
		z := &w.Zombies[i]
		dest := systems.NearestTarget(*z, w.Humans, w.Hero)
		z.NextPos = systems.MoveToward(z.Pos, dest, domain.ZombieSpeed)
	}
	return w
}

// scenarios - фиксированный набор уровней мини-игры.
// Данные вкомпилированы: невалидный сценарий - это баг программиста,
// а не ошибка времени выполнения (ловится тестами).
var scenarios = []Scenario{
	{
		ID:   0,
		Name: "First Contact",
		hero: domain.Position{X: 8000, Y: 4500},
		humans: []domain.Position{
			{X: 2000, Y: 4500},
		},
		zombies: []domain.Position{
			{X: 11000, Y: 4500},
		},
	},
	{
		ID:   1,
		Name: "Crossfire",
		hero: domain.Position{X: 8000, Y: 4500},
		humans: []domain.Position{
			{X: 4000, Y: 4500},
			{X: 12000, Y: 4500},
		},
		zombies: []domain.Position{
			{X: 2000, Y: 2000},
			{X: 14000, Y: 2000},
			{X: 2000, Y: 7000},
			{X: 14000, Y: 7000},
		},
	},
	{
		ID:   2,
		Name: "The Wall",
		hero: domain.Position{X: 8000, Y: 1000},
		humans: []domain.Position{
			{X: 7500, Y: 4500},
			{X: 8500, Y: 4500},
		},
		zombies: []domain.Position{
			{X: 500, Y: 8000},
			{X: 3500, Y: 8000},
			{X: 6500, Y: 8000},
			{X: 9500, Y: 8000},
			{X: 12500, Y: 8000},
			{X: 15500, Y: 8000},
		},
	},
	{
		ID:   3,
		Name: "Surrounded",
		hero: domain.Position{X: 8000, Y: 4500},
		humans: []domain.Position{
			{X: 8000, Y: 3500},
			{X: 8000, Y: 5500},
		},
		zombies: []domain.Position{
			{X: 1000, Y: 1000},
			{X: 15000, Y: 1000},
			{X: 1000, Y: 8000},
			{X: 15000, Y: 8000},
			{X: 8000, Y: 500},
			{X: 8000, Y: 8500},
		},
	},
}

// Scenarios возвращает весь набор уровней в порядке возрастания ID.
func Scenarios() []Scenario {
	return scenarios
}

// ScenarioByID ищет уровень по идентификатору.
func ScenarioByID(id int) (Scenario, error) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario id %d", id)
}
