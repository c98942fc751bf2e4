package engine

import (
	"reflect"
	"testing"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
	"github.com/cajubelt/2025-xmas-website/internal/systems"
)

// Helper: мир с одним жителем и одним зомби в заданных точках.
func worldWith(hero, human, zombie domain.Position) *domain.World {
	return &domain.World{
		Hero:    hero,
		Humans:  []domain.Human{{ID: 0, Pos: human, Alive: true}},
		Zombies: []domain.Zombie{{ID: 0, Pos: zombie, Alive: true}},
		Outcome: domain.OutcomeOngoing,
	}
}

func TestStep_Deterministic(t *testing.T) {
	w := ScenarioByIDOrDie(t, 1).NewWorld()
	target := domain.Position{X: 12345, Y: 678}

	a := Step(w, target)
	b := Step(w, target)

	// Два вызова с одним входом дают бит-в-бит одинаковый результат.
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same input produced different worlds:\n%+v\nvs\n%+v", a, b)
	}
}

func TestStep_DoesNotMutateInput(t *testing.T) {
	w := ScenarioByIDOrDie(t, 1).NewWorld()
	before := w.Clone()

	Step(w, domain.Position{X: 0, Y: 0})

	if !reflect.DeepEqual(w, before) {
		t.Error("Step mutated its input world")
	}
}

func TestStep_IncrementsTurn(t *testing.T) {
	w := ScenarioByIDOrDie(t, 1).NewWorld()

	next := Step(w, w.Hero)
	if next.Turn != w.Turn+1 {
		t.Errorf("turn: got %d, want %d", next.Turn, w.Turn+1)
	}
}

func TestStep_CoincidentZombieKilledFirstTick(t *testing.T) {
	// Зомби уже стоит на герое. Герой никуда не идет.
	// После одного хода зомби мертв, очки = humans^2 * 10 * fib(0).
	hero := domain.Position{X: 8000, Y: 4500}
	w := &domain.World{
		Hero: hero,
		Humans: []domain.Human{
			{ID: 0, Pos: domain.Position{X: 100, Y: 100}, Alive: true},
			{ID: 1, Pos: domain.Position{X: 15900, Y: 8900}, Alive: true},
		},
		Zombies: []domain.Zombie{{ID: 0, Pos: hero, Alive: true}},
		Outcome: domain.OutcomeOngoing,
	}

	next := Step(w, hero)

	if next.Zombies[0].Alive {
		t.Fatal("coincident zombie survived")
	}
	if want := 2 * 2 * 10 * 1; next.Score != want {
		t.Errorf("score: got %d, want %d", next.Score, want)
	}
	if next.Outcome != domain.OutcomeWon {
		t.Errorf("outcome: got %s, want WON", next.Outcome)
	}
}

func TestStep_KillHappensBeforePredation(t *testing.T) {
	// Зомби одним шагом доходит до жителя, но новая позиция зомби
	// в радиусе убийства героя: фаза убийств идет раньше, житель выживает.
	w := worldWith(
		domain.Position{X: 0, Y: 0},    // герой
		domain.Position{X: 1000, Y: 0}, // житель
		domain.Position{X: 1200, Y: 0}, // зомби (до жителя 200)
	)

	next := Step(w, w.Hero)

	if next.Zombies[0].Alive {
		t.Fatal("zombie in kill radius survived")
	}
	if !next.Humans[0].Alive {
		t.Error("human was eaten by a zombie that died this tick")
	}
	if next.Outcome != domain.OutcomeWon {
		t.Errorf("outcome: got %s, want WON", next.Outcome)
	}
}

func TestStep_PredationUsesNewZombiePosition(t *testing.T) {
	// Герой далеко и не успевает: зомби шагает на жителя и съедает его.
	w := worldWith(
		domain.Position{X: 15000, Y: 8000},
		domain.Position{X: 1000, Y: 0},
		domain.Position{X: 1200, Y: 0},
	)

	next := Step(w, w.Hero)

	if !next.Zombies[0].Alive {
		t.Fatal("zombie died unexpectedly")
	}
	if next.Humans[0].Alive {
		t.Error("human out of reach was not eaten after zombie moved")
	}
	if next.Outcome != domain.OutcomeLost {
		t.Errorf("outcome: got %s, want LOST", next.Outcome)
	}
}

func TestStep_ZombieTargetsStartOfTickHeroPosition(t *testing.T) {
	// Герой убегает перпендикулярно, но зомби целится в позицию героя
	// на НАЧАЛО хода, а не в новую.
	w := &domain.World{
		Hero: domain.Position{X: 10000, Y: 0},
		Humans: []domain.Human{
			{ID: 0, Pos: domain.Position{X: 15000, Y: 8999}, Alive: true}, // дальше героя
		},
		Zombies: []domain.Zombie{{ID: 0, Pos: domain.Position{X: 0, Y: 0}, Alive: true}},
		Outcome: domain.OutcomeOngoing,
	}

	next := Step(w, domain.Position{X: 10000, Y: 9000})

	// Движение к (10000,0) из (0,0) - чистый +X на ZombieSpeed.
	want := domain.Position{X: 400, Y: 0}
	if next.Zombies[0].Pos != want {
		t.Errorf("zombie pos: got %v, want %v", next.Zombies[0].Pos, want)
	}

	// Герой при этом ушел вертикально на свою скорость.
	if next.Hero != (domain.Position{X: 10000, Y: 1000}) {
		t.Errorf("hero pos: got %v", next.Hero)
	}
}

func TestStep_NextPosComputedAgainstMovedWorld(t *testing.T) {
	w := &domain.World{
		Hero: domain.Position{X: 10000, Y: 0},
		Humans: []domain.Human{
			{ID: 0, Pos: domain.Position{X: 15000, Y: 8999}, Alive: true},
		},
		Zombies: []domain.Zombie{{ID: 0, Pos: domain.Position{X: 0, Y: 0}, Alive: true}},
		Outcome: domain.OutcomeOngoing,
	}

	next := Step(w, domain.Position{X: 10000, Y: 9000})

	// Прогноз должен считаться от НОВЫХ позиций зомби и героя.
	z := next.Zombies[0]
	dest := systems.NearestTarget(z, next.Humans, next.Hero)
	want := systems.MoveToward(z.Pos, dest, domain.ZombieSpeed)
	if z.NextPos != want {
		t.Errorf("next pos: got %v, want %v", z.NextPos, want)
	}
}

func TestStep_ComboScoringInListOrder(t *testing.T) {
	// Оба зомби в радиусе убийства: первый дает fib(0)=1, второй fib(1)=2.
	hero := domain.Position{X: 8000, Y: 4500}
	w := &domain.World{
		Hero: hero,
		Humans: []domain.Human{
			{ID: 0, Pos: domain.Position{X: 0, Y: 0}, Alive: true},
			{ID: 1, Pos: domain.Position{X: 0, Y: 8999}, Alive: true},
			{ID: 2, Pos: domain.Position{X: 15999, Y: 0}, Alive: true},
		},
		Zombies: []domain.Zombie{
			{ID: 0, Pos: domain.Position{X: 8500, Y: 4500}, Alive: true},
			{ID: 1, Pos: domain.Position{X: 7500, Y: 4500}, Alive: true},
		},
		Outcome: domain.OutcomeOngoing,
	}

	next := Step(w, hero)

	// 3 живых жителя: 3^2*10*1 + 3^2*10*2 = 90 + 180.
	if want := 270; next.Score != want {
		t.Errorf("score: got %d, want %d", next.Score, want)
	}
	if next.AliveZombies() != 0 {
		t.Error("expected both zombies dead")
	}
}

func TestStep_WonTakesPriorityWhenNobodyLeft(t *testing.T) {
	// Сценарий вообще без жителей: убийство последнего зомби дает победу,
	// хотя живых жителей тоже ноль. Порядок проверки исхода - осознанный тай-брейк.
	hero := domain.Position{X: 8000, Y: 4500}
	w := &domain.World{
		Hero:    hero,
		Zombies: []domain.Zombie{{ID: 0, Pos: domain.Position{X: 8500, Y: 4500}, Alive: true}},
		Outcome: domain.OutcomeOngoing,
	}

	next := Step(w, hero)

	if next.Outcome != domain.OutcomeWon {
		t.Errorf("outcome: got %s, want WON (priority rule)", next.Outcome)
	}
}

func TestStep_TerminalWorldIsNoOp(t *testing.T) {
	w := worldWith(
		domain.Position{X: 0, Y: 0},
		domain.Position{X: 8000, Y: 8000},
		domain.Position{X: 15000, Y: 0},
	)
	w.Outcome = domain.OutcomeWon
	w.Turn = 7

	next := Step(w, domain.Position{X: 100, Y: 100})

	if !reflect.DeepEqual(next, w) {
		t.Errorf("terminal world changed: %+v", next)
	}
}

func TestStep_InvariantsOverFullRun(t *testing.T) {
	// Гоняем партию и проверяем сквозные инварианты:
	// очки не убывают, мертвые не воскресают, ход растет ровно на 1.
	w := ScenarioByIDOrDie(t, 3).NewWorld()

	deadHumans := make(map[int]bool)
	deadZombies := make(map[int]bool)

	for i := 0; i < domain.MaxBatchTurns && !w.Outcome.Terminal(); i++ {
		next := Step(w, domain.Position{X: 8000, Y: 4500})

		if next.Score < w.Score {
			t.Fatalf("score decreased: %d -> %d", w.Score, next.Score)
		}
		if next.Turn != w.Turn+1 {
			t.Fatalf("turn jumped: %d -> %d", w.Turn, next.Turn)
		}
		for _, h := range next.Humans {
			if deadHumans[h.ID] && h.Alive {
				t.Fatalf("human %d resurrected on turn %d", h.ID, next.Turn)
			}
			if !h.Alive {
				deadHumans[h.ID] = true
			}
		}
		for _, z := range next.Zombies {
			if deadZombies[z.ID] && z.Alive {
				t.Fatalf("zombie %d resurrected on turn %d", z.ID, next.Turn)
			}
			if !z.Alive {
				deadZombies[z.ID] = true
			}
		}
		w = next
	}
}

// ScenarioByIDOrDie - хелпер для тестов.
func ScenarioByIDOrDie(t *testing.T, id int) Scenario {
	t.Helper()
	s, err := ScenarioByID(id)
	if err != nil {
		t.Fatalf("scenario %d: %v", id, err)
	}
	return s
}
