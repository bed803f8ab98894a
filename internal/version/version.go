package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// SaveFormat - версия формата сохранения и реплея.
// Повышается при любом несовместимом изменении структуры.
const SaveFormat = 1

var (
	BuildDate   string // YYYY-MM-DD (UTC), задается через -ldflags
	BuildCommit string
)

var buildEpoch = time.Date(
	2026, time.January, 1,
	0, 0, 0, 0,
	time.UTC,
)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	BuildID    int
	BuildDate  string
	Commit     string
	SaveFormat int
	Calculated bool
	Error      string
}

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

	days := int(t.Sub(buildEpoch).Hours() / 24)
	return days, nil
}

// Info returns structured version information.
// Safe to call at any time.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate:  BuildDate,
		Commit:     coalesce(BuildCommit, vcsRevision()),
		SaveFormat: SaveFormat,
	}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String returns a human-readable build string.
func String() string {
	info := Info()

	if !info.Calculated {
		return fmt.Sprintf("randroom build unknown (%s) commit[%s] save[v%d]",
			info.Error, coalesce(info.Commit, "unknown"), info.SaveFormat)
	}

	return fmt.Sprintf(
		"randroom build %d (%s) commit[%s] save[v%d]",
		info.BuildID,
		info.BuildDate,
		coalesce(info.Commit, "unknown"),
		info.SaveFormat,
	)
}

// vcsRevision достает коммит из метаданных сборки Go, если ldflags не заданы.
func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return ""
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
