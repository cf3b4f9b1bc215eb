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
	"os"

	"github.com/defsub/podhost"
	"github.com/defsub/podhost/config"
	"github.com/defsub/podhost/log"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   podhost.AppName,
	Short: "Podhost manages podcasts, episodes and their RSS feeds",
	Long:  `Podhost keeps a catalog of podcasts and episodes and generates RSS feeds and stats from it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetOutput(os.Stderr)
		} else {
			log.SetOutput(io.Discard)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		banner(cmd.OutOrStdout())
	},
}

var configFile string
var verbose bool

func banner(w io.Writer) {
	fmt.Fprintln(w, text.FgCyan.Sprint("Podhost"))
	fmt.Fprintln(w, "Commands: list [podcast], add-podcast, add-episode, rss, status, export")
}

func getConfig() (*config.Config, error) {
	configPath := os.Getenv("PODHOST_HOME")
	configName := os.Getenv("PODHOST_CONFIG")
	if configFile != "" {
		config.SetConfigFile(configFile)
	} else {
		if configPath == "" {
			configPath = "."
		}
		if configName == "" {
			configName = podhost.AppName
		}
		config.AddConfigPath(configPath)
		config.SetConfigName(configName)
	}
	return config.GetConfig()
}

func success(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, text.FgGreen.Sprint("✓ "+fmt.Sprintf(format, a...)))
}

func warning(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, text.FgYellow.Sprint("⚠ "+fmt.Sprintf(format, a...)))
}

func failure(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, text.FgRed.Sprint("✗ "+fmt.Sprintf(format, a...)))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log catalog activity")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
