// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDuration     = errors.New("invalid ISO-8601 duration")
	ErrUnsupportedDuration = errors.New("ISO-8601 years and months have no fixed length")
)

// Duration is a time.Duration carried on the wire as an ISO-8601 duration
// string such as "PT10.848957S".
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return FormatDuration(time.Duration(d))
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatDuration(time.Duration(d)))
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// ParseDuration parses the week, day and time designators of an ISO-8601
// duration. Fractions are applied with integer arithmetic, so nanosecond
// precision is kept.
func ParseDuration(s string) (time.Duration, error) {
	orig := s
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	if len(s) < 2 || s[0] != 'P' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, orig)
	}
	s = s[1:]

	var (
		total    time.Duration
		inTime   bool
		hasValue bool
	)
	for len(s) > 0 {
		if s[0] == 'T' {
			if inTime || len(s) == 1 {
				return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, orig)
			}
			inTime = true
			s = s[1:]
			continue
		}

		i := 0
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		whole := s[:i]
		frac := ""
		if i < len(s) && (s[i] == '.' || s[i] == ',') {
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			frac = s[i+1 : j]
			i = j
		}
		if (whole == "" && frac == "") || i >= len(s) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, orig)
		}

		unit, err := designator(s[i], inTime)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", err, orig)
		}
		v, err := component(whole, frac, unit)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", err, orig)
		}
		if total > math.MaxInt64-v {
			return 0, fmt.Errorf("%w: %q overflows", ErrInvalidDuration, orig)
		}
		total += v
		hasValue = true
		s = s[i+1:]
	}

	if !hasValue {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, orig)
	}
	if negative {
		total = -total
	}
	return total, nil
}

func designator(c byte, inTime bool) (time.Duration, error) {
	switch {
	case !inTime && c == 'W':
		return 7 * 24 * time.Hour, nil
	case !inTime && c == 'D':
		return 24 * time.Hour, nil
	case !inTime && (c == 'Y' || c == 'M'):
		return 0, ErrUnsupportedDuration
	case inTime && c == 'H':
		return time.Hour, nil
	case inTime && c == 'M':
		return time.Minute, nil
	case inTime && c == 'S':
		return time.Second, nil
	}
	return 0, ErrInvalidDuration
}

// component computes whole.frac * unit. Every unit is a whole number of
// seconds, so dividing it by a power of ten up to 1e9 is exact.
func component(whole, frac string, unit time.Duration) (time.Duration, error) {
	var d time.Duration
	if whole != "" {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil || n > int64(math.MaxInt64/unit) {
			return 0, ErrInvalidDuration
		}
		d = time.Duration(n) * unit
	}
	if frac != "" {
		if len(frac) > 9 {
			frac = frac[:9]
		}
		n, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidDuration
		}
		pow := time.Duration(1)
		for range len(frac) {
			pow *= 10
		}
		f := time.Duration(n) * (unit / pow)
		if d > math.MaxInt64-f {
			return 0, ErrInvalidDuration
		}
		d += f
	}
	return d, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FormatDuration renders d using hours, minutes and fractional seconds.
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "PT0S"
	}
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	b.WriteString("PT")
	if h := d / time.Hour; h > 0 {
		b.WriteString(strconv.FormatInt(int64(h), 10))
		b.WriteByte('H')
		d -= h * time.Hour
	}
	if m := d / time.Minute; m > 0 {
		b.WriteString(strconv.FormatInt(int64(m), 10))
		b.WriteByte('M')
		d -= m * time.Minute
	}
	if d > 0 {
		sec := d / time.Second
		nanos := d % time.Second
		b.WriteString(strconv.FormatInt(int64(sec), 10))
		if nanos > 0 {
			b.WriteByte('.')
			b.WriteString(strings.TrimRight(fmt.Sprintf("%09d", int64(nanos)), "0"))
		}
		b.WriteByte('S')
	}
	return b.String()
}
