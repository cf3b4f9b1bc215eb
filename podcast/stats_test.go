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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func exportSnapshot(t *testing.T, h *Host) Snapshot {
	t.Helper()
	path, err := h.ExportStats(filepath.Join(t.TempDir(), "stats.json"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatal(err)
	}
	return snapshot
}

func TestAggregate(t *testing.T) {
	early := "2024-01-01T00:00:00.000000"
	late := "2024-02-01T00:00:00.000000"
	podcasts := []Podcast{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}
	episodes := map[int64][]Episode{
		1: {
			{PodcastID: 1, Season: 2, DurationS: 1800, PublishedAt: &late},
			{PodcastID: 1, Season: 1, DurationS: 1800, PublishedAt: &early},
			{PodcastID: 1, Season: 2, DurationS: 100},
		},
	}
	s := Aggregate(podcasts, episodes, "now")
	if s.ExportedAt != "now" || len(s.Podcasts) != 2 {
		t.Fatalf("wrong snapshot %+v", s)
	}

	a := s.Podcasts[0]
	if a.Podcast.Title != "A" || a.EpisodeCount != 3 || a.TotalDurationS != 3700 {
		t.Errorf("wrong totals %+v", a)
	}
	if a.TotalDurationHrs != 1.03 {
		t.Errorf("expected 1.03 hours got %v", a.TotalDurationHrs)
	}
	if len(a.Seasons) != 2 || a.Seasons[0] != 1 || a.Seasons[1] != 2 {
		t.Errorf("wrong seasons %v", a.Seasons)
	}
	if a.LatestEpisode == nil || *a.LatestEpisode != late {
		t.Errorf("wrong latest episode %v", a.LatestEpisode)
	}

	b := s.Podcasts[1]
	if b.EpisodeCount != 0 || b.TotalDurationS != 0 || b.LatestEpisode != nil || len(b.Seasons) != 0 {
		t.Errorf("expected empty stats %+v", b)
	}
}

func TestExportStats(t *testing.T) {
	h := testHost(t)
	p := mustCreate(t, h, testPodcast("Stats Show"))
	mustAdd(t, h, testEpisode(p.ID, 1, 1))
	mustCreate(t, h, testPodcast("Empty Show"))

	path := filepath.Join(t.TempDir(), "stats.json")
	result, err := h.ExportStats(path)
	if err != nil {
		t.Fatal(err)
	}
	if result != path {
		t.Errorf("expected %s got %s", path, result)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  \"podcasts\": [") {
		t.Errorf("expected two space indent")
	}
	if !strings.Contains(string(data), `"latest_episode": null`) {
		t.Errorf("expected null latest episode for empty podcast")
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc["exported_at"].(string); !ok {
		t.Errorf("missing exported_at")
	}
	list := doc["podcasts"].([]interface{})
	if len(list) != 2 {
		t.Fatalf("expected 2 podcasts got %d", len(list))
	}
	first := list[0].(map[string]interface{})
	if first["episode_count"].(float64) != 1 {
		t.Errorf("wrong episode count %v", first["episode_count"])
	}
	if first["total_duration_s"].(float64) != 3600 {
		t.Errorf("wrong duration %v", first["total_duration_s"])
	}
	if first["total_duration_hrs"].(float64) != 1.0 {
		t.Errorf("wrong hours %v", first["total_duration_hrs"])
	}
	podcast := first["podcast"].(map[string]interface{})
	if podcast["title"] != "Stats Show" || podcast["website_url"] != "https://techtalk.io" {
		t.Errorf("wrong podcast record %v", podcast)
	}
}

func TestExportStatsDefaultPath(t *testing.T) {
	h := testHost(t)
	result, err := h.ExportStats("")
	if err != nil {
		t.Fatal(err)
	}
	if result != h.config.Stats.File {
		t.Errorf("expected %s got %s", h.config.Stats.File, result)
	}
}
