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
	"strconv"
	"strings"

	"github.com/defsub/podhost/podcast"
	"github.com/spf13/cobra"
)

var addPodcastCmd = &cobra.Command{
	Use:   "add-podcast <title> <description> <author> [email]",
	Short: "add a podcast",
	Long:  `Add a podcast. Titles are unique, adding an existing title changes nothing.`,
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return addPodcast(cmd.OutOrStdout(), args)
	},
}

var addEpisodeCmd = &cobra.Command{
	Use:   "add-episode <podcastId> <title> <audioFile> <durationSeconds> [description] [season] [episodeNum]",
	Short: "add an episode",
	Long:  `Add an episode to a podcast. The description defaults to the title.`,
	Args:  cobra.RangeArgs(4, 7),
	RunE: func(cmd *cobra.Command, args []string) error {
		return addEpisode(cmd.OutOrStdout(), args)
	},
}

var podcastOptions struct {
	language string
	category string
	website  string
	image    string
	explicit bool
}

var episodeOptions struct {
	tags      []string
	published string
}

func newPodcast(args []string) podcast.Podcast {
	p := podcast.NewPodcast(args[0], args[1], args[2])
	if len(args) > 3 {
		p.Email = args[3]
	}
	if podcastOptions.language != "" {
		p.Language = podcastOptions.language
	}
	if podcastOptions.category != "" {
		p.Category = podcastOptions.category
	}
	p.WebsiteURL = podcastOptions.website
	p.ImageURL = podcastOptions.image
	p.Explicit = podcastOptions.explicit
	return p
}

func addPodcast(w io.Writer, args []string) error {
	p := newPodcast(args)
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	return podcast.With(cfg, func(h *podcast.Host) error {
		result, err := h.CreatePodcast(p)
		if err != nil {
			return err
		}
		if result.Status == podcast.Conflict {
			warning(w, "Podcast '%s' already exists", p.Title)
			return nil
		}
		success(w, "Created podcast: %s (id %d)", result.Podcast.Title, result.Podcast.ID)
		return nil
	})
}

func parseInt(name, value string) (int64, error) {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a whole number", name, value)
	}
	return v, nil
}

func newEpisode(args []string) (podcast.Episode, error) {
	var e podcast.Episode
	id, err := parseInt("podcast id", args[0])
	if err != nil {
		return e, err
	}
	duration, err := parseInt("duration", args[3])
	if err != nil {
		return e, err
	}
	e = podcast.NewEpisode(id, args[1], args[2])
	e.DurationS = duration
	e.Description = e.Title
	if len(args) > 4 {
		e.Description = args[4]
	}
	if len(args) > 5 {
		season, err := parseInt("season", args[5])
		if err != nil {
			return e, err
		}
		e.Season = int(season)
	}
	if len(args) > 6 {
		num, err := parseInt("episode number", args[6])
		if err != nil {
			return e, err
		}
		e.EpisodeNum = int(num)
	}
	e.Tags = strings.Join(episodeOptions.tags, ",")
	if episodeOptions.published != "" {
		published := episodeOptions.published
		e.PublishedAt = &published
	}
	return e, nil
}

func addEpisode(w io.Writer, args []string) error {
	e, err := newEpisode(args)
	if err != nil {
		return err
	}
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	return podcast.With(cfg, func(h *podcast.Host) error {
		e, err := h.AddEpisode(e)
		if err != nil {
			return err
		}
		success(w, "Added episode S%02dE%02d: %s", e.Season, e.EpisodeNum, e.Title)
		return nil
	})
}

func init() {
	addPodcastCmd.Flags().StringVar(&podcastOptions.language, "language", podcast.DefaultLanguage, "feed language")
	addPodcastCmd.Flags().StringVar(&podcastOptions.category, "category", podcast.DefaultCategory, "itunes category")
	addPodcastCmd.Flags().StringVar(&podcastOptions.website, "website", "", "website url")
	addPodcastCmd.Flags().StringVar(&podcastOptions.image, "image", "", "cover image url")
	addPodcastCmd.Flags().BoolVar(&podcastOptions.explicit, "explicit", false, "explicit content")
	rootCmd.AddCommand(addPodcastCmd)

	addEpisodeCmd.Flags().StringSliceVar(&episodeOptions.tags, "tags", nil, "comma separated keywords")
	addEpisodeCmd.Flags().StringVar(&episodeOptions.published, "published", "", "publish time (ISO 8601)")
	rootCmd.AddCommand(addEpisodeCmd)
}
