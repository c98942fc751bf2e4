// Package version ведет нумерацию сборок бэкенда сайта.
// Номер сборки - число полных дней от старта работы над сайтом:
// такой номер удобно произносить вслух ("выкати сборку 240")
// и сравнивать на глаз без таблицы релизов.
package version

import (
	"fmt"
	"time"
)

// Заполняются при сборке через -ldflags "-X ...".
var (
	BuildDate    string // YYYY-MM-DD (UTC)
	BuildCommit  string
	BuildChannel string // "staging" или "prod"; пусто = локальная сборка
)

// Старт работы над сайтом.
var siteEpoch = time.Date(
	2025, time.January, 1,
	0, 0, 0, 0,
	time.UTC,
)

// BuildInfo - метаданные сборки для эндпоинта /version.
type BuildInfo struct {
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate,omitempty"`
	Commit     string `json:"commit,omitempty"`
	Channel    string `json:"channel"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// BuildNumber возвращает номер сборки - полных дней между эпохой и BuildDate.
func BuildNumber() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(siteEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before site epoch", BuildDate)
	}

	// Разница в часах: обе даты в UTC, переходов на летнее время нет.
	return int(t.Sub(siteEpoch).Hours() / 24), nil
}

// Info собирает метаданные сборки. Безопасна в любой момент: при пустом
// или кривом BuildDate номер не считается, диагностика уходит в Error.
func Info() BuildInfo {
	info := BuildInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Channel:   channel(),
	}

	id, err := BuildNumber()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

func channel() string {
	if BuildChannel == "" {
		return "local"
	}
	return BuildChannel
}

// String - человекочитаемая строка для стартового лога.
func String() string {
	info := Info()

	if !info.Calculated {
		return fmt.Sprintf("xmas-backend build unknown (%s)", info.Error)
	}

	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("xmas-backend build %d (%s) commit[%s] channel[%s]",
		info.BuildID, info.BuildDate, commit, info.Channel)
}
