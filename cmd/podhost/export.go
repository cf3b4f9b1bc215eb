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

var exportCmd = &cobra.Command{
	Use:   "export [output]",
	Short: "export catalog stats as JSON",
	Long:  `Write per podcast stats for the whole catalog as JSON.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return export(cmd.OutOrStdout(), args)
	},
}

func export(w io.Writer, args []string) error {
	output := ""
	if len(args) > 0 {
		output = args[0]
	}
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	return podcast.With(cfg, func(h *podcast.Host) error {
		path, err := h.ExportStats(output)
		if err != nil {
			return err
		}
		success(w, "Stats exported to %s", path)
		return nil
	})
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
