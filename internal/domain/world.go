package domain

// Human - мирный житель. Не двигается, его можно только потерять.
// ID назначается последовательно от нуля при создании сценария и не переиспользуется.
type Human struct {
	ID    int      `json:"id"`
	Pos   Position `json:"pos"`
	Alive bool     `json:"alive"`
}

// Zombie - враждебная сущность. Каждый ход идет к ближайшей живой цели.
// NextPos - спрогнозированная позиция на следующий ход. Поле чисто информационное
// (подсказка для стратегий и фронтенда), на механику текущего хода не влияет.
type Zombie struct {
	ID      int      `json:"id"`
	Pos     Position `json:"pos"`
	NextPos Position `json:"nextPos"`
	Alive   bool     `json:"alive"`
}

// World - полное состояние партии на момент конца хода.
// Владелец - игровой цикл (Runner). Между ходами состояние не мутируется:
// симулятор каждый ход возвращает НОВЫЙ снапшот, старый остается нетронутым.
type World struct {
	Hero    Position `json:"hero"`
	Humans  []Human  `json:"humans"`
	Zombies []Zombie `json:"zombies"`

	// Score растет только при убийстве зомби. Никогда не уменьшается.
	Score int `json:"score"`

	// Turn увеличивается ровно на единицу за каждый завершенный ход.
	Turn int `json:"turn"`

	// Outcome и Summary выставляются один раз и обратно не откатываются.
	Outcome Outcome `json:"outcome"`
	Summary string  `json:"summary"`
}

// Clone возвращает полностью независимую копию мира.
// Слайсы копируются, поэтому изменения копии не видны оригиналу.
func (w *World) Clone() *World {
	next := *w
	next.Humans = make([]Human, len(w.Humans))
	copy(next.Humans, w.Humans)
	next.Zombies = make([]Zombie, len(w.Zombies))
	copy(next.Zombies, w.Zombies)
	return &next
}

// AliveHumans возвращает число живых жителей.
func (w *World) AliveHumans() int {
	n := 0
	for i := range w.Humans {
		if w.Humans[i].Alive {
			n++
		}
	}
	return n
}

// AliveZombies возвращает число живых зомби.
func (w *World) AliveZombies() int {
	n := 0
	for i := range w.Zombies {
		if w.Zombies[i].Alive {
			n++
		}
	}
	return n
}
