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
	"errors"
)

const (
	DefaultLanguage   = "en"
	DefaultCategory   = "Technology"
	DefaultSeason     = 1
	DefaultEpisodeNum = 1
)

var (
	ErrInvalidPodcast = errors.New("podcast requires title, description and author")
	ErrInvalidEpisode = errors.New("episode requires podcast id, title and audio file")
	ErrUnknownPodcast = errors.New("podcast not found")
)

type Podcast struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"column:title;size:255;unique;not null" json:"title"`
	Description string `gorm:"column:description" json:"description"`
	Author      string `gorm:"column:author;not null" json:"author"`
	Email       string `gorm:"column:email" json:"email"`
	Language    string `gorm:"column:language" json:"language"`
	Category    string `gorm:"column:category" json:"category"`
	WebsiteURL  string `gorm:"column:website_url" json:"website_url"`
	ImageURL    string `gorm:"column:image_url" json:"image_url"`
	Explicit    bool   `gorm:"column:explicit" json:"explicit"`
	CreatedAt   string `gorm:"column:created_at;not null" json:"created_at"`
}

func (Podcast) TableName() string {
	return "podcasts"
}

// NewPodcast returns an unsaved podcast with default language and category.
func NewPodcast(title, description, author string) Podcast {
	return Podcast{
		Title:       title,
		Description: description,
		Author:      author,
		Language:    DefaultLanguage,
		Category:    DefaultCategory,
	}
}

func (p Podcast) Valid() bool {
	return len(p.Title) > 0 && len(p.Description) > 0 && len(p.Author) > 0
}

type Episode struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PodcastID   int64   `gorm:"column:podcast_id;index;not null" json:"podcast_id"`
	Title       string  `gorm:"column:title;not null" json:"title"`
	Description string  `gorm:"column:description" json:"description"`
	AudioFile   string  `gorm:"column:audio_file;not null" json:"audio_file"`
	DurationS   int64   `gorm:"column:duration_s" json:"duration_s"`
	PublishedAt *string `gorm:"column:published_at" json:"published_at"`
	Season      int     `gorm:"column:season" json:"season"`
	EpisodeNum  int     `gorm:"column:episode_num" json:"episode_num"`
	Tags        string  `gorm:"column:tags" json:"tags"`
	CreatedAt   string  `gorm:"column:created_at;not null" json:"created_at"`
}

func (Episode) TableName() string {
	return "episodes"
}

// NewEpisode returns an unsaved episode for season 1 episode 1.
func NewEpisode(podcastID int64, title, audioFile string) Episode {
	return Episode{
		PodcastID:  podcastID,
		Title:      title,
		AudioFile:  audioFile,
		Season:     DefaultSeason,
		EpisodeNum: DefaultEpisodeNum,
	}
}

func (e Episode) Valid() bool {
	return e.PodcastID > 0 && len(e.Title) > 0 && len(e.AudioFile) > 0
}

func (e Episode) Published() bool {
	return e.PublishedAt != nil && *e.PublishedAt != ""
}

type CreateStatus int

const (
	Created CreateStatus = iota
	Conflict
)

func (s CreateStatus) String() string {
	switch s {
	case Created:
		return "created"
	case Conflict:
		return "conflict"
	}
	return "unknown"
}

// CreateResult is the outcome of CreatePodcast. On Conflict the podcast is
// the caller's input, unsaved.
type CreateResult struct {
	Status  CreateStatus
	Podcast Podcast
}

func (r CreateResult) Created() bool {
	return r.Status == Created
}
