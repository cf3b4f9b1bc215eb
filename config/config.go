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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/defsub/podhost"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSqlite   = "sqlite3"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type DatabaseConfig struct {
	Driver  string
	Source  string
	LogMode bool
}

func (c DatabaseConfig) GormConfig() *gorm.Config {
	var glog logger.Interface
	if c.LogMode == false {
		glog = logger.Discard
	} else {
		glog = logger.Default
	}
	return &gorm.Config{
		Logger: glog,
	}
}

type CatalogConfig struct {
	DB DatabaseConfig
}

type FeedConfig struct {
	Dir         string
	DefaultLink string
}

type StatsConfig struct {
	File string
}

type Config struct {
	Catalog CatalogConfig
	Feed    FeedConfig
	Stats   StatsConfig
}

// FeedFile is the default feed location for a podcast title.
func (c *Config) FeedFile(title string) string {
	name := strings.ReplaceAll(strings.ToLower(title), " ", "_")
	return filepath.Join(c.Feed.Dir, name+"_rss.xml")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func configDefaults(v *viper.Viper) {
	v.SetDefault("Catalog.DB.Driver", DriverSqlite)
	v.SetDefault("Catalog.DB.Source",
		filepath.Join(homeDir(), "."+podhost.AppName, "podcast_host.db"))
	v.SetDefault("Catalog.DB.LogMode", "false")

	v.SetDefault("Feed.Dir", os.TempDir())
	v.SetDefault("Feed.DefaultLink", "https://blackroad.io")

	v.SetDefault("Stats.File", filepath.Join(os.TempDir(), "podcast_stats.json"))
}

func envKey(key string) string {
	return strings.ToUpper(podhost.AppName + "_" + strings.ReplaceAll(key, ".", "_"))
}

func readConfig(v *viper.Viper) (*Config, error) {
	var config Config
	var pathRegexp = regexp.MustCompile(`(file|dir|source)$`)

	v.SetEnvPrefix(podhost.AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// defaults only
		err = nil
	}

	if used := v.ConfigFileUsed(); used != "" {
		dir := filepath.Dir(used)
		for _, k := range v.AllKeys() {
			if !pathRegexp.MatchString(k) {
				continue
			}
			if k == "catalog.db.source" && v.GetString("catalog.db.driver") != DriverSqlite {
				// mysql and postgres sources are DSNs
				continue
			}
			if _, env := os.LookupEnv(envKey(k)); env {
				continue
			}
			val, ok := v.Get(k).(string)
			if !ok || val == "" || filepath.IsAbs(val) || strings.HasPrefix(val, ":") ||
				strings.HasPrefix(val, "file:") {
				continue
			}
			v.Set(k, filepath.Join(dir, val))
		}
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &config, nil
}

// TestConfig returns a config with every path rooted in dir.
func TestConfig(dir string) (*Config, error) {
	v := viper.New()
	configDefaults(v)
	v.SetConfigName("test")
	v.AddConfigPath(dir)
	v.SetDefault("Catalog.DB.Source", filepath.Join(dir, "podcast_host.db"))
	v.SetDefault("Feed.Dir", dir)
	v.SetDefault("Stats.File", filepath.Join(dir, "podcast_stats.json"))
	return readConfig(v)
}

var configFile, configPath, configName string

func SetConfigFile(path string) {
	configFile = path
}

func AddConfigPath(path string) {
	configPath = path
}

func SetConfigName(name string) {
	configName = name
}

func GetConfig() (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName != "" {
		v.SetConfigName(configName)
	}
	configDefaults(v)
	return readConfig(v)
}

func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(podhost.AppName)
	v.AddConfigPath(dir)
	configDefaults(v)
	return readConfig(v)
}
