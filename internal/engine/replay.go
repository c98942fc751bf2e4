package engine

import (
	"fmt"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
)

// ReplayRecord детерминированно пересобирает партию из записи ходов.
//
// Записанные точки назначения скармливаются симулятору в том же порядке,
// что и в живой партии; благодаря целочисленному движению итоговый мир
// совпадает с оригиналом бит в бит. Лишние ходы после терминального
// исхода игнорируются (Step на терминальном мире - no-op).
func ReplayRecord(rec *domain.RunRecord) (*domain.World, error) {
	s, err := ScenarioByID(rec.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	w := s.NewWorld()
	for _, tick := range rec.Ticks {
		if w.Outcome.Terminal() {
			break
		}
		w = Step(w, tick.Target)
	}
	return w, nil
}
