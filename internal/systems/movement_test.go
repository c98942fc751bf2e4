package systems

import (
	"testing"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
)

func TestMoveToward_AlreadyAtTarget(t *testing.T) {
	p := domain.Position{X: 500, Y: 700}

	// Неподвижная точка: движение в себя не должно менять позицию
	// при любом неотрицательном шаге.
	for _, step := range []float64{0, 1, 1000} {
		got := MoveToward(p, p, step)
		if got != p {
			t.Errorf("MoveToward(p, p, %v) = %v, want %v", step, got, p)
		}
	}
}

func TestMoveToward_NonPositiveStep(t *testing.T) {
	from := domain.Position{X: 100, Y: 100}
	to := domain.Position{X: 900, Y: 900}

	// Нулевой или отрицательный шаг - стоим на месте.
	if got := MoveToward(from, to, 0); got != from {
		t.Errorf("zero step moved entity: %v", got)
	}
	if got := MoveToward(from, to, -50); got != from {
		t.Errorf("negative step moved entity: %v", got)
	}
}

func TestMoveToward_SnapsToCloseTarget(t *testing.T) {
	from := domain.Position{X: 0, Y: 0}
	to := domain.Position{X: 300, Y: 400} // дистанция ровно 500

	// Цель в пределах шага: прилипаем ТОЧНО к цели, без перелета.
	got := MoveToward(from, to, 500)
	if got != to {
		t.Errorf("expected snap to target %v, got %v", to, got)
	}

	got = MoveToward(from, to, 1000)
	if got != to {
		t.Errorf("expected snap to target %v, got %v", to, got)
	}
}

func TestMoveToward_PartialStepFloorsCoordinates(t *testing.T) {
	from := domain.Position{X: 0, Y: 0}
	to := domain.Position{X: 1000, Y: 1000}

	// Дистанция ~1414.21, шаг 1000: сырые координаты (707.10.., 707.10..)
	// должны быть приведены через Floor.
	got := MoveToward(from, to, 1000)
	want := domain.Position{X: 707, Y: 707}
	if got != want {
		t.Errorf("MoveToward = %v, want %v", got, want)
	}
}

func TestMoveToward_AxisAlignedStep(t *testing.T) {
	from := domain.Position{X: 8000, Y: 4500}
	to := domain.Position{X: 0, Y: 4500}

	got := MoveToward(from, to, 1000)
	want := domain.Position{X: 7000, Y: 4500}
	if got != want {
		t.Errorf("MoveToward = %v, want %v", got, want)
	}
}

func TestMoveToward_NeverOvershoots(t *testing.T) {
	from := domain.Position{X: 0, Y: 0}
	to := domain.Position{X: 5000, Y: 2000}
	step := 400.0

	// Шагаем до цели: каждый шаг не длиннее step, и в итоге мы оказываемся
	// ровно в цели, а не пролетаем мимо.
	pos := from
	for i := 0; i < 100; i++ {
		next := MoveToward(pos, to, step)
		if d := pos.DistanceTo(next); d > step {
			t.Fatalf("step %d longer than max: %v > %v", i, d, step)
		}
		pos = next
		if pos == to {
			break
		}
	}
	if pos != to {
		t.Errorf("never reached target, stuck at %v", pos)
	}
}

func TestMoveToward_Deterministic(t *testing.T) {
	from := domain.Position{X: 123, Y: 456}
	to := domain.Position{X: 15999, Y: 8999}

	a := MoveToward(from, to, 1000)
	b := MoveToward(from, to, 1000)
	if a != b {
		t.Errorf("same inputs produced different outputs: %v vs %v", a, b)
	}
}
