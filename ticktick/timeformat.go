package ticktick

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// timeLayout is TickTick's datetime wire format, "yyyy-MM-dd'T'HH:mm:ssZ"
// with a colon-less numeric zone, e.g. "2019-11-13T03:00:00+0000".
const timeLayout = "2006-01-02T15:04:05-0700"

// Time wraps time.Time with TickTick's wire format. The zero value marshals
// as null and fields tagged omitzero are dropped entirely.
type Time struct {
	time.Time
}

// NewTime converts a time.Time to the wire representation.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(timeLayout) + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return errors.Wrapf(err, "parsing ticktick datetime %q", s)
	}
	t.Time = parsed
	return nil
}
