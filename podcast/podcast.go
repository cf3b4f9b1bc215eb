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
	"fmt"
	"time"

	"github.com/defsub/podhost/config"
	"github.com/defsub/podhost/lib/date"
	"github.com/defsub/podhost/log"
	"gorm.io/gorm"
)

// Host manages the podcast catalog. It holds one database connection
// between Open and Close and is not safe for concurrent use.
type Host struct {
	config *config.Config
	db     *gorm.DB
	now    func() time.Time
}

func NewHost(config *config.Config) *Host {
	return &Host{
		config: config,
		now:    time.Now,
	}
}

func (h *Host) Open() error {
	return h.openDB()
}

// Close releases the connection, calling it more than once is fine.
func (h *Host) Close() {
	h.closeDB()
}

// With opens a host, runs fn and always closes the host afterwards.
func With(config *config.Config, fn func(h *Host) error) error {
	h := NewHost(config)
	err := h.Open()
	if err != nil {
		return err
	}
	defer h.Close()
	return fn(h)
}

func (h *Host) timestamp() string {
	return date.FormatISO(h.now())
}

// CreatePodcast stores a new podcast. A podcast with the same title results
// in Conflict and the input is returned unchanged.
func (h *Host) CreatePodcast(p Podcast) (CreateResult, error) {
	if !p.Valid() {
		return CreateResult{}, ErrInvalidPodcast
	}

	existing, err := h.findPodcast(p.Title)
	if err != nil {
		return CreateResult{}, err
	}
	if existing != nil {
		log.Printf("podcast %q already exists (%d)\n", p.Title, existing.ID)
		return CreateResult{Status: Conflict, Podcast: p}, nil
	}

	record := p
	if record.Language == "" {
		record.Language = DefaultLanguage
	}
	if record.Category == "" {
		record.Category = DefaultCategory
	}
	record.ID = 0
	record.CreatedAt = h.timestamp()

	err = h.createPodcast(&record)
	if err != nil {
		// lost a race on the unique title
		if existing, _ := h.findPodcast(p.Title); existing != nil {
			log.Printf("podcast %q already exists (%d)\n", p.Title, existing.ID)
			return CreateResult{Status: Conflict, Podcast: p}, nil
		}
		return CreateResult{}, fmt.Errorf("create podcast: %w", err)
	}
	log.Printf("created podcast %q (%d)\n", record.Title, record.ID)
	return CreateResult{Status: Created, Podcast: record}, nil
}

// AddEpisode stores a new episode for an existing podcast. Without a
// publish time the episode is published at creation. Zero season and
// episode numbers default to 1.
func (h *Host) AddEpisode(e Episode) (Episode, error) {
	if !e.Valid() {
		return Episode{}, ErrInvalidEpisode
	}
	_, err := h.lookupPodcast(e.PodcastID)
	if err != nil {
		return Episode{}, fmt.Errorf("podcast %d: %w", e.PodcastID, err)
	}

	e.ID = 0
	if e.Season == 0 {
		e.Season = DefaultSeason
	}
	if e.EpisodeNum == 0 {
		e.EpisodeNum = DefaultEpisodeNum
	}
	e.CreatedAt = h.timestamp()
	if !e.Published() {
		published := e.CreatedAt
		e.PublishedAt = &published
	}

	err = h.createEpisode(&e)
	if err != nil {
		return Episode{}, fmt.Errorf("add episode: %w", err)
	}
	log.Printf("added episode S%02dE%02d %q (%d)\n", e.Season, e.EpisodeNum, e.Title, e.ID)
	return e, nil
}

type EpisodeFilter struct {
	PodcastID    int64
	PodcastTitle string
}

// ListEpisodes returns episodes in season and episode order. Without a
// filter all episodes are returned, grouped by podcast. A title that matches
// no podcast yields no episodes.
func (h *Host) ListEpisodes(filter EpisodeFilter) ([]Episode, error) {
	id := filter.PodcastID
	if id == 0 && filter.PodcastTitle != "" {
		p, err := h.findPodcast(filter.PodcastTitle)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return []Episode{}, nil
		}
		id = p.ID
	}
	if id != 0 {
		return h.podcastEpisodes(id)
	}
	return h.allEpisodes()
}

func (h *Host) ListPodcasts() ([]Podcast, error) {
	return h.podcasts()
}

// GetPodcastByTitle returns nil when no podcast has the title.
func (h *Host) GetPodcastByTitle(title string) (*Podcast, error) {
	return h.findPodcast(title)
}

type Status struct {
	Podcasts      int64
	Episodes      int64
	TotalDuration int64 // seconds
}

func (h *Host) Status() (Status, error) {
	var s Status
	var err error
	if s.Podcasts, err = h.podcastCount(); err != nil {
		return s, err
	}
	if s.Episodes, err = h.episodeCount(); err != nil {
		return s, err
	}
	if s.TotalDuration, err = h.totalDuration(); err != nil {
		return s, err
	}
	return s, nil
}
