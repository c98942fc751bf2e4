package main

import (
	"testing"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
	"github.com/cajubelt/2025-xmas-website/internal/strategy"
)

func TestReplayToRun(t *testing.T) {
	rec := &domain.RunRecord{ScenarioID: 0, Strategy: strategy.NameChase}
	w := &domain.World{Turn: 1, Score: 10, Outcome: domain.OutcomeWon}

	run := replayToRun(rec, w)

	if run.Mode != "replay" {
		t.Errorf("mode: got %q, want replay", run.Mode)
	}
	if !run.Won || run.Outcome != "WON" {
		t.Errorf("outcome mangled: won=%v outcome=%s", run.Won, run.Outcome)
	}
	if run.ScenarioName != "First Contact" {
		t.Errorf("scenario name: got %q", run.ScenarioName)
	}
	if run.Turns != 1 || run.Score != 10 {
		t.Errorf("turns/score: got %d/%d", run.Turns, run.Score)
	}
}

func TestReplayToRun_UnknownScenario(t *testing.T) {
	// Запись может ссылаться на уровень, которого больше нет в каталоге:
	// строка результатов сохраняется без имени, а не падает.
	rec := &domain.RunRecord{ScenarioID: 99, Strategy: "manual"}
	w := &domain.World{Turn: 5, Outcome: domain.OutcomeLost}

	run := replayToRun(rec, w)

	if run.ScenarioName != "" {
		t.Errorf("expected empty name for unknown scenario, got %q", run.ScenarioName)
	}
	if run.Won || run.Outcome != "LOST" {
		t.Errorf("outcome mangled: won=%v outcome=%s", run.Won, run.Outcome)
	}
}
