package domain

// RunTick - одна запись прогона: какую точку назначения выбрала стратегия
// (или человек) на данном ходу. Больше ничего хранить не нужно:
// симуляция детерминированная, мир восстанавливается повторным прогоном.
type RunTick struct {
	Turn   int      `json:"turn"`
	Target Position `json:"target"`
}

// RunRecord - полная запись партии для реплея и анализа.
type RunRecord struct {
	ScenarioID int       `json:"scenarioId"`
	Strategy   string    `json:"strategy"` // имя стратегии или "manual"
	Timestamp  int64     `json:"timestamp"`
	Ticks      []RunTick `json:"ticks"`
}
