package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Duration is a recipe time span in whole seconds. The wire format is an
// integer number of seconds; the edit-time formats are whole minutes or a
// colon-delimited H:MM:SS clock string. Conversions are lossless for values
// expressible as whole minutes.
type Duration int64

// ParseClock parses a colon-delimited H:MM:SS string such as "0:15:00".
func ParseClock(s string) (Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("parse duration %q: want H:MM:SS", s)
	}
	var fields [3]int64
	for i, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("parse duration %q: want H:MM:SS", s)
		}
		fields[i] = n
	}
	return Duration(fields[0]*3600 + fields[1]*60 + fields[2]), nil
}

// FromMinutes converts whole minutes to a Duration.
func FromMinutes(m int64) Duration {
	return Duration(m * 60)
}

// ParseDurationInput parses an edit-time duration value: a clock string when
// it contains a colon, otherwise a whole number of minutes.
func ParseDurationInput(s string) (Duration, error) {
	trimmed := strings.TrimSpace(s)
	if strings.Contains(trimmed, ":") {
		return ParseClock(trimmed)
	}
	m, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || m < 0 {
		return 0, fmt.Errorf("parse duration %q: want minutes or H:MM:SS", s)
	}
	return FromMinutes(m), nil
}

// Seconds returns the span as whole seconds.
func (d Duration) Seconds() int64 {
	return int64(d)
}

// Minutes returns the span as whole minutes, truncating leftover seconds.
func (d Duration) Minutes() int64 {
	return int64(d) / 60
}

// Clock renders the span as H:MM:SS.
func (d Duration) Clock() string {
	s := int64(d)
	return fmt.Sprintf("%d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

// MarshalJSON emits whole seconds.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(d), 10)), nil
}

// UnmarshalJSON accepts integer seconds, a quoted H:MM:SS string, or null.
func (d *Duration) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*d = 0
		return nil
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseClock(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fmt.Errorf("parse duration %s: %w", text, err)
	}
	*d = Duration(n)
	return nil
}
