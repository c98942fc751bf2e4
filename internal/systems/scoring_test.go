package systems

import "testing"

func TestComboMultiplier(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 5},
		{14, 987},
		{15, 987},  // за пределами таблицы - последний элемент
		{100, 987}, // далеко за пределами
		{-1, 1},    // отрицательный индекс прижимается к нулю
	}

	for _, c := range cases {
		if got := ComboMultiplier(c.n); got != c.want {
			t.Errorf("ComboMultiplier(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestKillReward(t *testing.T) {
	// Первое убийство хода: humans^2 * 10 * fib(0).
	if got := KillReward(3, 1); got != 90 {
		t.Errorf("KillReward(3, 1) = %d, want 90", got)
	}

	// Третье убийство хода: 2^2 * 10 * fib(2) = 4 * 10 * 3.
	if got := KillReward(2, 3); got != 120 {
		t.Errorf("KillReward(2, 3) = %d, want 120", got)
	}

	// Ноль живых жителей - ноль очков, комбо не спасает.
	if got := KillReward(0, 5); got != 0 {
		t.Errorf("KillReward(0, 5) = %d, want 0", got)
	}
}
