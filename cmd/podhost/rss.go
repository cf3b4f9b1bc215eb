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
	"io"

	"github.com/defsub/podhost/podcast"
	"github.com/spf13/cobra"
)

var rssCmd = &cobra.Command{
	Use:   "rss <podcast> [output]",
	Short: "generate a podcast RSS feed",
	Long:  `Write the RSS feed for a podcast title, to the feed directory unless an output path is given.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return feed(cmd.OutOrStdout(), args)
	},
}

func feed(w io.Writer, args []string) error {
	title := args[0]
	output := ""
	if len(args) > 1 {
		output = args[1]
	}
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	return podcast.With(cfg, func(h *podcast.Host) error {
		path, err := h.GenerateFeed(title, output)
		if err != nil {
			return err
		}
		if path == "" {
			failure(w, "Podcast not found: %s", title)
			return nil
		}
		success(w, "RSS feed generated: %s", path)
		return nil
	})
}

func init() {
	rootCmd.AddCommand(rssCmd)
}
