package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"delve-server/internal/domain"
)

const (
	MagicHeader string = `DLVS` // 4 байта
	Version1    uint32 = 1
)

// SaveFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: тут нет слайсов и строк, только
// массивы и числа.
type SaveFileHeader struct {
	Magic      [4]byte // 4 байта
	Version    uint32  // 4 байта
	Seed       int64   // 8 байт
	Timestamp  int64   // 8 байт
	Depth      int32   // 4 байта
	Turn       int32   // 4 байта
	PlayerDead uint8   // 1 байт
	PayloadLen uint32  // 4 байта
}

// Snapshot - полное состояние забега: все посещенные этажи со всем
// содержимым плюс история сообщений.
type Snapshot struct {
	Seed       int64                   `json:"seed"`
	Depth      int                     `json:"depth"`
	Turn       int                     `json:"turn"`
	PlayerDead bool                    `json:"playerDead"`
	Floors     map[int]*domain.GameMap `json:"floors"`
	Log        *domain.MessageLog      `json:"log"`
}

// snapshotPayload - JSON-часть файла (все, что не влезает в
// фиксированный заголовок).
type snapshotPayload struct {
	Floors map[int]*domain.GameMap `json:"floors"`
	Log    *domain.MessageLog      `json:"log"`
}

// SaveService пишет и читает сохранения по фиксированному пути.
type SaveService struct {
	Path string
}

func NewSaveService(path string) *SaveService {
	// Создаем папку если нет
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &SaveService{Path: path}
}

func (s *SaveService) Save(snap *Snapshot) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeBinary(f, snap)
}

func writeBinary(w io.Writer, snap *Snapshot) error {
	payload, err := json.Marshal(snapshotPayload{
		Floors: snap.Floors,
		Log:    snap.Log,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	header := SaveFileHeader{
		Version:    Version1,
		Seed:       snap.Seed,
		Timestamp:  time.Now().Unix(),
		Depth:      int32(snap.Depth),
		Turn:       int32(snap.Turn),
		PayloadLen: uint32(len(payload)),
	}
	copy(header.Magic[:], MagicHeader)
	if snap.PlayerDead {
		header.PlayerDead = 1
	}

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	return nil
}
