package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

func (s *SaveService) Load() (*Snapshot, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*Snapshot, error) {
	// 1. Читаем заголовок целиком
	var header SaveFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	// 2. Читаем JSON-часть
	raw := make([]byte, header.PayloadLen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	var payload snapshotPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	snap := &Snapshot{
		Seed:       header.Seed,
		Depth:      int(header.Depth),
		Turn:       int(header.Turn),
		PlayerDead: header.PlayerDead != 0,
		Floors:     payload.Floors,
		Log:        payload.Log,
	}

	// Индексы (SpatialHash, реестр) в файл не пишутся, строим заново.
	for _, floor := range snap.Floors {
		floor.RebuildIndexes()
	}

	return snap, nil
}
