package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cajubelt/2025-xmas-website/internal/domain"
)

// Load читает запись партии из файла.
func (s *RunService) Load(path string) (*domain.RunRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*domain.RunRecord, error) {
	var header RunFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	strategyBuf := make([]byte, header.StrategyLen)
	if _, err := io.ReadFull(r, strategyBuf); err != nil {
		return nil, fmt.Errorf("failed to read strategy name: %w", err)
	}

	rec := &domain.RunRecord{
		ScenarioID: int(header.ScenarioID),
		Strategy:   string(strategyBuf),
		Timestamp:  header.Timestamp,
		Ticks:      make([]domain.RunTick, header.TickCount),
	}

	for i := 0; i < int(header.TickCount); i++ {
		var tr TickRecord
		if err := binary.Read(r, binary.LittleEndian, &tr); err != nil {
			return nil, fmt.Errorf("failed to read tick %d: %w", i, err)
		}
		rec.Ticks[i] = domain.RunTick{
			Turn:   int(tr.Turn),
			Target: domain.Position{X: tr.X, Y: tr.Y},
		}
	}

	return rec, nil
}
