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
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/defsub/podhost/lib/rss"
	"github.com/mmcdole/gofeed"
	"github.com/sebdah/goldie/v2"
)

func goldenPodcast() (Podcast, []Episode) {
	published := "2024-01-01T10:00:00.000000"
	p := Podcast{
		ID:          1,
		Title:       "Tech Talks",
		Description: "All about tech",
		Author:      "Bob",
		Email:       "bob@example.com",
		Language:    "en",
		Category:    "Technology",
		WebsiteURL:  "https://techtalk.io",
		ImageURL:    "https://techtalk.io/art.jpg",
		CreatedAt:   "2024-01-01T09:00:00.000000",
	}
	episodes := []Episode{
		{
			ID:          1,
			PodcastID:   1,
			Title:       "Episode 1",
			Description: "Great stuff",
			AudioFile:   "https://cdn.io/ep1.mp3",
			DurationS:   3600,
			PublishedAt: &published,
			Season:      1,
			EpisodeNum:  1,
			Tags:        "tech,talk",
		},
		{
			ID:         2,
			PodcastID:  1,
			Title:      "Episode 2",
			AudioFile:  "https://cdn.io/ep2.mp3",
			DurationS:  1800,
			Season:     1,
			EpisodeNum: 2,
		},
	}
	return p, episodes
}

func encodeFeed(t *testing.T, doc *rss.Rss) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := rss.Encode(&buf, doc); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// countElements parses the document and returns the root name and the
// number of elements with the given local name.
func countElements(t *testing.T, data []byte, local string) (string, int) {
	t.Helper()
	d := xml.NewDecoder(bytes.NewReader(data))
	root := ""
	count := 0
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("malformed xml: %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			if root == "" {
				root = se.Name.Local
			}
			if se.Name.Local == local {
				count++
			}
		}
	}
	return root, count
}

func TestBuildFeedGolden(t *testing.T) {
	p, episodes := goldenPodcast()
	data := encodeFeed(t, BuildFeed(p, episodes, "https://example.com"))
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "tech_talks_feed", data)
}

func TestBuildFeedDeterministic(t *testing.T) {
	p, episodes := goldenPodcast()
	a := encodeFeed(t, BuildFeed(p, episodes, ""))
	b := encodeFeed(t, BuildFeed(p, episodes, ""))
	if !bytes.Equal(a, b) {
		t.Errorf("feed output differs between runs")
	}
}

func TestBuildFeedDefaults(t *testing.T) {
	p, episodes := goldenPodcast()
	p.WebsiteURL = ""
	p.ImageURL = ""
	p.Explicit = true
	doc := BuildFeed(p, episodes, "https://blackroad.io")
	c := doc.Channel
	if c.Link != "https://blackroad.io" {
		t.Errorf("expected default link got %s", c.Link)
	}
	if c.Image != nil {
		t.Errorf("expected no image")
	}
	if c.Explicit != "yes" {
		t.Errorf("expected explicit yes got %s", c.Explicit)
	}
	if c.Items[0].GUID.Value != "/episodes/s01e01" {
		t.Errorf("wrong guid %s", c.Items[0].GUID.Value)
	}
	if c.Items[1].Keywords != "" || c.Items[1].PubDate != "" {
		t.Errorf("unexpected optional values %+v", c.Items[1])
	}
}

func TestEpisodeGUID(t *testing.T) {
	p := Podcast{WebsiteURL: "https://show.fm"}
	e := Episode{Season: 3, EpisodeNum: 12}
	if got := EpisodeGUID(p, e); got != "https://show.fm/episodes/s03e12" {
		t.Errorf("got %s", got)
	}
}

func TestBuildFeedParse(t *testing.T) {
	p, episodes := goldenPodcast()
	data := encodeFeed(t, BuildFeed(p, episodes, ""))

	root, items := countElements(t, data, "item")
	if root != "rss" {
		t.Errorf("expected rss root got %s", root)
	}
	if items != len(episodes) {
		t.Errorf("expected %d items got %d", len(episodes), items)
	}

	feed, err := gofeed.NewParser().ParseString(string(data))
	if err != nil {
		t.Fatal(err)
	}
	if feed.FeedType != "rss" {
		t.Errorf("expected rss feed got %s", feed.FeedType)
	}
	if feed.Title != "Tech Talks" {
		t.Errorf("wrong title %s", feed.Title)
	}
	if len(feed.Items) != len(episodes) {
		t.Errorf("expected %d items got %d", len(episodes), len(feed.Items))
	}
	if feed.ITunesExt == nil || feed.ITunesExt.Owner == nil || feed.ITunesExt.Owner.Name != "Bob" {
		t.Errorf("missing itunes owner")
	}
	if feed.Items[0].PublishedParsed == nil || feed.Items[0].PublishedParsed.Year() != 2024 {
		t.Errorf("pubDate not parsed")
	}
	if feed.Items[1].ITunesExt == nil || feed.Items[1].ITunesExt.Episode != "2" {
		t.Errorf("wrong episode number")
	}
}

func TestGenerateFeed(t *testing.T) {
	h := testHost(t)
	p := mustCreate(t, h, testPodcast("RSS Show"))
	mustAdd(t, h, testEpisode(p.ID, 1, 1))
	mustAdd(t, h, testEpisode(p.ID, 1, 2))
	mustAdd(t, h, testEpisode(p.ID, 2, 1))

	path := filepath.Join(t.TempDir(), "feed.xml")
	result, err := h.GenerateFeed("RSS Show", path)
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
	root, items := countElements(t, data, "item")
	if root != "rss" || items != 3 {
		t.Errorf("got root %s with %d items", root, items)
	}
}

func TestGenerateFeedDefaultPath(t *testing.T) {
	h := testHost(t)
	mustCreate(t, h, testPodcast("Default Path Show"))
	result, err := h.GenerateFeed("Default Path Show", "")
	if err != nil {
		t.Fatal(err)
	}
	expect := filepath.Join(h.config.Feed.Dir, "default_path_show_rss.xml")
	if result != expect {
		t.Errorf("expected %s got %s", expect, result)
	}
	if _, err := os.Stat(result); err != nil {
		t.Error(err)
	}
}

func TestGenerateFeedNotFound(t *testing.T) {
	h := testHost(t)
	path := filepath.Join(t.TempDir(), "missing.xml")
	result, err := h.GenerateFeed("Nonexistent", path)
	if err != nil {
		t.Fatal(err)
	}
	if result != "" {
		t.Errorf("expected empty result got %s", result)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file should not be written")
	}
}

func TestScenario(t *testing.T) {
	h := testHost(t)
	p := mustCreate(t, h, NewPodcast("Tech Talks", "All about tech", "Bob"))
	e1 := testEpisode(p.ID, 1, 1)
	e1.Title = "E1"
	e2 := testEpisode(p.ID, 1, 2)
	e2.Title = "E2"
	mustAdd(t, h, e2)
	mustAdd(t, h, e1)

	list, err := h.ListEpisodes(EpisodeFilter{PodcastTitle: "Tech Talks"})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Title != "E1" || list[1].Title != "E2" {
		t.Fatalf("wrong listing %+v", list)
	}

	path, err := h.GenerateFeed("Tech Talks", filepath.Join(t.TempDir(), "tech.xml"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, items := countElements(t, data, "item"); items != 2 {
		t.Errorf("expected 2 items got %d", items)
	}
	if _, owners := countElements(t, data, "owner"); owners != 1 {
		t.Errorf("expected 1 owner got %d", owners)
	}
	if !strings.Contains(string(data), "<itunes:name>Bob</itunes:name>") {
		t.Errorf("owner name missing")
	}

	snapshot := exportSnapshot(t, h)
	if len(snapshot.Podcasts) != 1 || snapshot.Podcasts[0].TotalDurationHrs != 2.0 {
		t.Errorf("wrong stats %+v", snapshot)
	}
}
