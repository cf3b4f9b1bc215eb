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

package podcast

import (
	"encoding/json"
	"math"
	"os"
	"sort"

	"github.com/defsub/podhost/log"
)

type PodcastStats struct {
	Podcast          Podcast `json:"podcast"`
	EpisodeCount     int     `json:"episode_count"`
	TotalDurationS   int64   `json:"total_duration_s"`
	TotalDurationHrs float64 `json:"total_duration_hrs"`
	Seasons          []int   `json:"seasons"`
	LatestEpisode    *string `json:"latest_episode"`
}

type Snapshot struct {
	Podcasts   []PodcastStats `json:"podcasts"`
	ExportedAt string         `json:"exported_at"`
}

// Aggregate summarizes each podcast with its episodes, keyed by podcast id.
func Aggregate(podcasts []Podcast, episodes map[int64][]Episode, exportedAt string) Snapshot {
	snapshot := Snapshot{
		Podcasts:   make([]PodcastStats, 0, len(podcasts)),
		ExportedAt: exportedAt,
	}
	for _, p := range podcasts {
		snapshot.Podcasts = append(snapshot.Podcasts, podcastStats(p, episodes[p.ID]))
	}
	return snapshot
}

func podcastStats(p Podcast, episodes []Episode) PodcastStats {
	var total int64
	var latest *string
	seen := make(map[int]bool)
	seasons := make([]int, 0)

	for i := range episodes {
		e := episodes[i]
		total += e.DurationS
		if !seen[e.Season] {
			seen[e.Season] = true
			seasons = append(seasons, e.Season)
		}
		// fixed width timestamps, string order is time order
		if e.PublishedAt != nil && (latest == nil || *e.PublishedAt > *latest) {
			v := *e.PublishedAt
			latest = &v
		}
	}
	sort.Ints(seasons)

	return PodcastStats{
		Podcast:          p,
		EpisodeCount:     len(episodes),
		TotalDurationS:   total,
		TotalDurationHrs: hours(total),
		Seasons:          seasons,
		LatestEpisode:    latest,
	}
}

// hours rounded to two decimal places
func hours(seconds int64) float64 {
	return math.Round(float64(seconds)/3600*100) / 100
}

// ExportStats writes a stats snapshot of the whole catalog as indented JSON
// and returns the path written.
func (h *Host) ExportStats(outputPath string) (string, error) {
	podcasts, err := h.podcasts()
	if err != nil {
		return "", err
	}
	episodes := make(map[int64][]Episode, len(podcasts))
	for _, p := range podcasts {
		list, err := h.podcastEpisodes(p.ID)
		if err != nil {
			return "", err
		}
		episodes[p.ID] = list
	}

	snapshot := Aggregate(podcasts, episodes, h.timestamp())
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", err
	}

	if outputPath == "" {
		outputPath = h.config.Stats.File
	}
	err = os.WriteFile(outputPath, append(data, '\n'), 0644)
	if err != nil {
		return "", err
	}
	log.Printf("exported stats to %s\n", outputPath)
	return outputPath, nil
}
