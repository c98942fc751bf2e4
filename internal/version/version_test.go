package version

import (
	"strings"
	"testing"
)

func TestBuildNumber(t *testing.T) {
	defer func(orig string) { BuildDate = orig }(BuildDate)

	// Пустая дата - ошибка, номер не считается.
	BuildDate = ""
	if _, err := BuildNumber(); err == nil {
		t.Error("expected error for empty BuildDate")
	}

	// День эпохи - нулевая сборка.
	BuildDate = "2025-01-01"
	id, err := BuildNumber()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 0 {
		t.Errorf("epoch day: got %d, want 0", id)
	}

	// Через месяц после эпохи.
	BuildDate = "2025-02-01"
	id, err = BuildNumber()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 31 {
		t.Errorf("got %d, want 31", id)
	}

	// До эпохи - ошибка.
	BuildDate = "2024-12-31"
	if _, err := BuildNumber(); err == nil {
		t.Error("expected error for pre-epoch date")
	}

	// Мусор вместо даты.
	BuildDate = "not-a-date"
	if _, err := BuildNumber(); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestInfo(t *testing.T) {
	defer func(orig string) { BuildDate = orig }(BuildDate)
	defer func(orig string) { BuildChannel = orig }(BuildChannel)

	BuildDate = "2025-03-01"
	BuildChannel = ""
	info := Info()
	if !info.Calculated {
		t.Fatalf("expected calculated info, got error %q", info.Error)
	}
	if info.BuildDate != "2025-03-01" {
		t.Errorf("BuildDate mismatch: %s", info.BuildDate)
	}
	// Незаполненный канал означает локальную сборку.
	if info.Channel != "local" {
		t.Errorf("channel: got %q, want local", info.Channel)
	}

	BuildChannel = "prod"
	if got := Info().Channel; got != "prod" {
		t.Errorf("channel: got %q, want prod", got)
	}

	BuildDate = ""
	info = Info()
	if info.Calculated {
		t.Error("expected uncalculated info for empty BuildDate")
	}
	if info.Error == "" {
		t.Error("expected error message in info")
	}
}

func TestString(t *testing.T) {
	defer func(orig string) { BuildDate = orig }(BuildDate)

	BuildDate = "2025-01-02"
	if s := String(); !strings.Contains(s, "build 1") {
		t.Errorf("build number missing from %q", s)
	}

	BuildDate = ""
	if s := String(); !strings.Contains(s, "unknown") {
		t.Errorf("expected unknown-build string, got %q", s)
	}
}
