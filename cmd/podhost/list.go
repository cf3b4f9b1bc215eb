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
	"io"

	"github.com/defsub/podhost/podcast"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [podcast]",
	Short: "list episodes",
	Long:  `List episodes by season and episode number, optionally for a single podcast title.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return list(cmd.OutOrStdout(), args)
	},
}

func list(w io.Writer, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	return podcast.With(cfg, func(h *podcast.Host) error {
		var filter podcast.EpisodeFilter
		if len(args) > 0 {
			filter.PodcastTitle = args[0]
		}
		episodes, err := h.ListEpisodes(filter)
		if err != nil {
			return err
		}
		if len(episodes) == 0 {
			warning(w, "No episodes found.")
			return nil
		}
		fmt.Fprintln(w, text.FgCyan.Sprintf("=== Episodes (%d) ===", len(episodes)))
		fmt.Fprintln(w, episodeTable(episodes))
		return nil
	})
}

func init() {
	rootCmd.AddCommand(listCmd)
}
