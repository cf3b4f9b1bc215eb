// Copyright (C) 2026 The Podhost Authors.
//
// This file is part of Podhost.
//
// Podhost is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Podhost is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Podhost.  If not, see <https://www.gnu.org/licenses/>.

package date

import (
	"fmt"
	"time"
)

const (
	// ISO8601 is fixed width so timestamps compare lexicographically.
	ISO8601 = "2006-01-02T15:04:05.000000"

	// RFC 2822 date with numeric zone, as used by RSS pubDate.
	RFC1123Z = time.RFC1123Z
)

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Format a time as a UTC ISO 8601 timestamp.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISO8601)
}

// ParseISO accepts timestamps with or without fractional seconds and zone.
// Times without a zone are UTC.
func ParseISO(s string) (t time.Time, ok bool) {
	if s == "" {
		return t, false
	}
	for _, layout := range isoLayouts {
		v, err := time.Parse(layout, s)
		if err == nil {
			return v, true
		}
	}
	return t, false
}

// Mon, 02 Jan 2006 15:04:05 -0700
func FormatRFC1123(t time.Time) string {
	return t.Format(RFC1123Z)
}

// PubDate converts a stored ISO timestamp for use in a feed. Values that
// don't parse are returned as is.
func PubDate(iso string) string {
	t, ok := ParseISO(iso)
	if !ok {
		return iso
	}
	return FormatRFC1123(t)
}

// Day returns the yyyy-mm-dd prefix of an ISO timestamp.
func Day(iso string) string {
	if len(iso) > 10 {
		return iso[:10]
	}
	return iso
}

// FormatDuration renders seconds as HH:MM:SS, hours are not wrapped.
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
