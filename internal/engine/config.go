package engine

import "time"

// Config хранит параметры запуска движка.
type Config struct {
	// TickInterval - период планировщика интерактивной партии.
	TickInterval time.Duration

	// RunDir - каталог для бинарных записей партий (.xrun).
	RunDir string

	// ResultsPath - путь к SQLite-базе с результатами прогонов.
	ResultsPath string
}

// NewConfig создает конфиг по умолчанию.
func NewConfig() Config {
	return Config{
		TickInterval: 500 * time.Millisecond,
		RunDir:       "runs",
		ResultsPath:  "results.db",
	}
}
