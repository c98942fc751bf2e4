package engine

import (
	"github.com/cajubelt/2025-xmas-website/internal/domain"
	"github.com/cajubelt/2025-xmas-website/internal/strategy"
)

// BatchResult - вердикт одного headless-прогона "стратегия против сценария".
type BatchResult struct {
	ScenarioID   int
	ScenarioName string
	Strategy     string

	Won     bool
	Outcome domain.Outcome
	Turns   int
	Score   int

	// Fault непустой, если стратегия упала (ошибка или паника).
	// Прогон при этом останавливается и считается не выигранным.
	Fault string
}

// EvaluateScenario гоняет стратегию против сценария до терминального исхода
// или до предохранителя MaxBatchTurns. Достижение предохранителя - это
// штатный вердикт "не выиграно", а не ошибка: так отсекаются стратегии,
// которые никогда не заканчивают партию.
func EvaluateScenario(s Scenario, name string, f strategy.Func) BatchResult {
	res := BatchResult{
		ScenarioID:   s.ID,
		ScenarioName: s.Name,
		Strategy:     name,
	}

	w := s.NewWorld()
	for !w.Outcome.Terminal() && w.Turn < domain.MaxBatchTurns {
		target, err := strategy.SafeCall(f, w)
		if err != nil {
			res.Fault = err.Error()
			break
		}
		w = Step(w, target)
	}

	res.Outcome = w.Outcome
	res.Won = w.Outcome == domain.OutcomeWon
	res.Turns = w.Turn
	res.Score = w.Score
	return res
}

// EvaluateSuite прогоняет каждую зарегистрированную стратегию
// против каждого сценария из набора. Выполняется синхронно до конца.
func EvaluateSuite(reg *strategy.Registry, suite []Scenario) []BatchResult {
	var results []BatchResult
	for _, name := range reg.Names() {
		f, err := reg.Get(name)
		if err != nil {
			continue
		}
		for _, s := range suite {
			results = append(results, EvaluateScenario(s, name, f))
		}
	}
	return results
}
