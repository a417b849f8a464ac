package version

import (
	"fmt"
	"time"
)

// Заполняются линковщиком через -ldflags -X.
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

var buildEpoch = time.Date(
	2026, time.January, 1,
	0, 0, 0, 0,
	time.UTC,
)

// CalculateBuildID возвращает порядковый номер сборки:
// количество дней от эпохи проекта до BuildDate.
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

	// Часы вместо суток — чтобы не спотыкаться о DST; обе даты в UTC.
	days := int(t.Sub(buildEpoch).Hours() / 24)
	return days, nil
}

// String возвращает человекочитаемую строку сборки.
func String() string {
	id, err := CalculateBuildID()
	if err != nil {
		return fmt.Sprintf("Build unknown (%s)", err)
	}

	commit := BuildCommit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("Build %d (%s) commit[%s]", id, BuildDate, commit)
}
