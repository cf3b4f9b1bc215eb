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
	"bufio"
	"fmt"
	"os"

	"github.com/defsub/podhost/lib/date"
	"github.com/defsub/podhost/lib/rss"
	"github.com/defsub/podhost/log"
)

const (
	EnclosureType   = "audio/mpeg"
	EnclosureLength = "0"
)

// EpisodeGUID is stable for a podcast site, season and episode number.
func EpisodeGUID(p Podcast, e Episode) string {
	return fmt.Sprintf("%s/episodes/s%02de%02d", p.WebsiteURL, e.Season, e.EpisodeNum)
}

// BuildFeed renders a podcast and its episodes, already in season and
// episode order, as an RSS document. The output depends only on the inputs.
func BuildFeed(p Podcast, episodes []Episode, defaultLink string) *rss.Rss {
	link := p.WebsiteURL
	if link == "" {
		link = defaultLink
	}

	channel := rss.Channel{
		Title:       p.Title,
		Description: p.Description,
		Language:    p.Language,
		Link:        link,
		Author:      p.Author,
		Explicit:    rss.Explicit(p.Explicit),
		Owner:       rss.Owner{Name: p.Author, Email: p.Email},
		Category:    rss.Category{Text: p.Category},
	}
	if p.ImageURL != "" {
		channel.Image = &rss.Image{Href: p.ImageURL}
	}

	channel.Items = make([]rss.Item, 0, len(episodes))
	for _, e := range episodes {
		pubDate := ""
		if e.PublishedAt != nil {
			pubDate = date.PubDate(*e.PublishedAt)
		}
		channel.Items = append(channel.Items, rss.Item{
			Title:       e.Title,
			Description: e.Description,
			PubDate:     pubDate,
			Duration:    e.DurationS,
			Season:      e.Season,
			Episode:     e.EpisodeNum,
			Keywords:    e.Tags,
			Enclosure: rss.Enclosure{
				URL:    e.AudioFile,
				Type:   EnclosureType,
				Length: EnclosureLength,
			},
			GUID: rss.GUID{
				IsPermaLink: "false",
				Value:       EpisodeGUID(p, e),
			},
		})
	}

	return rss.NewRss(channel)
}

// GenerateFeed writes the feed for the titled podcast and returns the path
// written. An unknown title returns an empty path and writes nothing. The
// feed directory from the config is used when outputPath is empty.
func (h *Host) GenerateFeed(title, outputPath string) (string, error) {
	p, err := h.findPodcast(title)
	if err != nil {
		return "", err
	}
	if p == nil {
		log.Printf("podcast not found: %q\n", title)
		return "", nil
	}

	episodes, err := h.podcastEpisodes(p.ID)
	if err != nil {
		return "", err
	}
	doc := BuildFeed(*p, episodes, h.config.Feed.DefaultLink)

	if outputPath == "" {
		outputPath = h.config.FeedFile(p.Title)
	}
	err = writeFeed(outputPath, doc)
	if err != nil {
		return "", err
	}
	log.Printf("generated feed %s (%d episodes)\n", outputPath, len(episodes))
	return outputPath, nil
}

func writeFeed(path string, doc *rss.Rss) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	err = rss.Encode(w, doc)
	if err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}
	return w.Flush()
}
