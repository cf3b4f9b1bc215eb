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

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "catalog totals",
	Long:  `Show the number of podcasts and episodes and the total runtime.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return status(cmd.OutOrStdout())
	},
}

func status(w io.Writer) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	return podcast.With(cfg, func(h *podcast.Host) error {
		s, err := h.Status()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, text.FgCyan.Sprint("=== Podcast Status ==="))
		fmt.Fprintln(w, statusTable(s))
		return nil
	})
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
