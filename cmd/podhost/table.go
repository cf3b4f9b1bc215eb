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

package main

import (
	"fmt"

	"github.com/defsub/podhost/lib/date"
	"github.com/defsub/podhost/podcast"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(headers ...interface{}) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if len(headers) > 0 {
		tw.AppendHeader(table.Row(headers))
	}
	return tw
}

func published(e podcast.Episode) string {
	if !e.Published() {
		return "unpublished"
	}
	return date.Day(*e.PublishedAt)
}

func episodeRow(e podcast.Episode) table.Row {
	return table.Row{
		fmt.Sprintf("S%02dE%02d", e.Season, e.EpisodeNum),
		e.Title,
		date.FormatDuration(e.DurationS),
		published(e),
	}
}

func episodeTable(episodes []podcast.Episode) string {
	tw := newTable("Episode", "Title", "Duration", "Published")
	for _, e := range episodes {
		tw.AppendRow(episodeRow(e))
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Colors: text.Colors{text.FgCyan}},
		{Number: 3, Align: text.AlignRight},
	})
	return tw.Render()
}

func statusTable(s podcast.Status) string {
	tw := newTable()
	tw.AppendRow(table.Row{"Podcasts", s.Podcasts})
	tw.AppendRow(table.Row{"Episodes", s.Episodes})
	tw.AppendRow(table.Row{"Total Runtime", date.FormatDuration(s.TotalDuration)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	return tw.Render()
}
