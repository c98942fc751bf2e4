package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
)

const (
	MagicHeader string = `XRUN` // 4 байта
	Version1    uint32 = 1
)

// RunFileHeader - точное представление заголовка файла в памяти.
// Только числа и массивы фиксированного размера, поэтому binary.Write
// пишет структуру целиком одним вызовом.
type RunFileHeader struct {
	Magic       [4]byte
	Version     uint32
	ScenarioID  int32
	Timestamp   int64
	TickCount   int32
	StrategyLen uint8
	_           [3]byte // выравнивание до кратности 8
}

// TickRecord - одна запись хода: выбранная точка назначения героя.
// Мир не сохраняем: симуляция детерминированная, реплей его восстановит.
type TickRecord struct {
	Turn int32
	X    float64
	Y    float64
}

// RunService сохраняет и загружает бинарные записи партий.
type RunService struct {
	SaveDir string
}

func NewRunService(dir string) *RunService {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &RunService{SaveDir: dir}
}

// Save пишет запись партии в каталог сервиса и возвращает путь к файлу.
func (s *RunService) Save(rec *domain.RunRecord) (string, error) {
	filename := fmt.Sprintf("run_s%d_%s_%d.xrun", rec.ScenarioID, rec.Strategy, rec.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, rec); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, rec *domain.RunRecord) error {
	strategyBytes := []byte(rec.Strategy)
	if len(strategyBytes) > 255 {
		return fmt.Errorf("strategy name too long: %d", len(strategyBytes))
	}

	header := RunFileHeader{
		Version:     Version1,
		ScenarioID:  int32(rec.ScenarioID),
		Timestamp:   rec.Timestamp,
		TickCount:   int32(len(rec.Ticks)),
		StrategyLen: uint8(len(strategyBytes)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(strategyBytes); err != nil {
		return fmt.Errorf("failed to write strategy name: %w", err)
	}

	for _, tick := range rec.Ticks {
		tr := TickRecord{
			Turn: int32(tick.Turn),
			X:    tick.Target.X,
			Y:    tick.Target.Y,
		}
		if err := binary.Write(w, binary.LittleEndian, &tr); err != nil {
			return fmt.Errorf("failed to write tick %d: %w", tick.Turn, err)
		}
	}
	return nil
}
