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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/defsub/podhost/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS podcasts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT UNIQUE NOT NULL,
    description TEXT,
    author TEXT NOT NULL,
    email TEXT DEFAULT '',
    language TEXT DEFAULT 'en',
    category TEXT DEFAULT 'Technology',
    website_url TEXT DEFAULT '',
    image_url TEXT DEFAULT '',
    explicit INTEGER DEFAULT 0,
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS episodes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    podcast_id INTEGER NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    audio_file TEXT NOT NULL,
    duration_s INTEGER DEFAULT 0,
    published_at TEXT,
    season INTEGER DEFAULT 1,
    episode_num INTEGER DEFAULT 1,
    tags TEXT DEFAULT '',
    created_at TEXT NOT NULL,
    FOREIGN KEY (podcast_id) REFERENCES podcasts(id)
);
`

func (h *Host) openDB() (err error) {
	cfg := h.config.Catalog.DB.GormConfig()
	source := h.config.Catalog.DB.Source

	switch h.config.Catalog.DB.Driver {
	case config.DriverSqlite:
		err = makeParentDir(source)
		if err != nil {
			return
		}
		h.db, err = gorm.Open(sqlite.Open(source), cfg)
	case config.DriverMySQL:
		h.db, err = gorm.Open(mysql.Open(source), cfg)
	case config.DriverPostgres:
		h.db, err = gorm.Open(postgres.Open(source), cfg)
	default:
		err = errors.New("driver not supported")
	}

	if err != nil {
		return
	}

	err = h.initDB()
	if err != nil {
		h.closeDB()
	}
	return
}

// initDB creates the tables if needed and is safe to repeat.
func (h *Host) initDB() error {
	if h.db.Dialector.Name() == "sqlite" {
		return h.db.Exec(sqliteSchema).Error
	}
	return h.db.AutoMigrate(&Podcast{}, &Episode{})
}

func makeParentDir(source string) error {
	if source == "" || strings.HasPrefix(source, ":") || strings.HasPrefix(source, "file:") {
		return nil
	}
	dir := filepath.Dir(source)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

func (h *Host) closeDB() {
	if h.db == nil {
		return
	}
	conn, err := h.db.DB()
	h.db = nil
	if err != nil {
		return
	}
	conn.Close()
}

func (h *Host) createPodcast(p *Podcast) error {
	return h.db.Create(p).Error
}

func (h *Host) createEpisode(e *Episode) error {
	return h.db.Create(e).Error
}

func (h *Host) findPodcast(title string) (*Podcast, error) {
	var list []Podcast
	err := h.db.Where("title = ?", title).Limit(1).Find(&list).Error
	if err != nil {
		return nil, err
	}
	if len(list) > 0 {
		return &list[0], nil
	}
	return nil, nil
}

func (h *Host) lookupPodcast(id int64) (Podcast, error) {
	var podcast Podcast
	err := h.db.First(&podcast, id).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return Podcast{}, ErrUnknownPodcast
	}
	return podcast, err
}

func (h *Host) podcasts() ([]Podcast, error) {
	var podcasts []Podcast
	err := h.db.Order("id").Find(&podcasts).Error
	return podcasts, err
}

func (h *Host) allEpisodes() ([]Episode, error) {
	var episodes []Episode
	err := h.db.Order("podcast_id, season, episode_num, id").Find(&episodes).Error
	return episodes, err
}

func (h *Host) podcastEpisodes(podcastID int64) ([]Episode, error) {
	var episodes []Episode
	err := h.db.Where("podcast_id = ?", podcastID).
		Order("season, episode_num, id").Find(&episodes).Error
	return episodes, err
}

func (h *Host) podcastCount() (int64, error) {
	var count int64
	err := h.db.Model(&Podcast{}).Count(&count).Error
	return count, err
}

func (h *Host) episodeCount() (int64, error) {
	var count int64
	err := h.db.Model(&Episode{}).Count(&count).Error
	return count, err
}

func (h *Host) totalDuration() (int64, error) {
	var total int64
	err := h.db.Model(&Episode{}).
		Select("coalesce(sum(duration_s), 0)").Row().Scan(&total)
	return total, err
}
