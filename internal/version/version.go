package version

import (
	"fmt"
	"time"
)

// Заполняются линкером через -ldflags "-X ...".
var (
	BuildDate   string // YYYY-MM-DD, UTC
	BuildCommit string
)

var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// VersionInfo - метаданные сборки для /version и CLI.
type VersionInfo struct {
	BuildID   int    `json:"buildId"`
	BuildDate string `json:"buildDate,omitempty"`
	Commit    string `json:"commit,omitempty"`
	Error     string `json:"error,omitempty"`
}

// CalculateBuildID переводит дату сборки в порядковый номер:
// число полных дней от эпохи проекта.
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	// Часы вместо суток: эпоха и дата сборки обе в UTC, DST не мешает.
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info безопасен в любой момент: сборка без даты (go run, тесты)
// получает диагностику вместо номера.
func Info() VersionInfo {
	info := VersionInfo{BuildDate: BuildDate, Commit: BuildCommit}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	return info
}

// String возвращает строку сборки для лога и команды version.
func String() string {
	info := Info()
	if info.Error != "" {
		return fmt.Sprintf("delve-server dev build (%s)", info.Error)
	}

	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("delve-server build %d (%s) commit %s", info.BuildID, info.BuildDate, commit)
}
