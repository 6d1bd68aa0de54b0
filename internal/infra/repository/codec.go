package repository

import (
	"bytes"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// timestamp decodes either an RFC 3339 string or epoch milliseconds, the
// latter being how older records stored their times.
type timestamp time.Time

func (t timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t))
}

func (t *timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = timestamp{}
		return nil
	}

	if data[0] == '"' {
		var parsed time.Time
		if bytes.Equal(data, []byte(`""`)) {
			*t = timestamp{}
			return nil
		}
		if err := json.Unmarshal(data, &parsed); err != nil {
			return err
		}
		*t = timestamp(parsed)
		return nil
	}

	ms, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*t = timestamp(time.UnixMilli(int64(ms)).UTC())
	return nil
}

// amount decodes a decimal from a JSON number or string, treating an empty
// string as zero.
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return decimal.Decimal(a).MarshalJSON()
}

func (a *amount) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*a = amount(decimal.Zero)
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*a = amount(d)
	return nil
}
