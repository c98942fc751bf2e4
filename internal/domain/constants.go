package domain

// Размеры игрового поля в абстрактных единицах.
// Симулятор НЕ ограничивает координаты этим прямоугольником:
// выход за границы допустим и ошибкой не считается.
const (
	FieldWidth  = 16000
	FieldHeight = 9000
)

// Скорости и радиусы (единиц за ход).
const (
	HeroSpeed   = 1000 // шаг героя за один ход
	ZombieSpeed = 400  // шаг зомби за один ход

	KillRadius = 2000 // зомби в этом радиусе от героя уничтожается
	EatRadius  = 400  // житель в этом радиусе от зомби погибает
)

// MaxBatchTurns - предохранитель для headless-прогонов.
// Если стратегия не довела партию до конца за столько ходов,
// сценарий считается НЕ выигранным (это не ошибка, а консервативный вердикт).
const MaxBatchTurns = 200
