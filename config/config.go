package config

import (
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

type (
	CinelogConfig struct {
		Tmdb       TmdbConfig       `yaml:"tmdb"`
		FileSystem FilesystemConfig `yaml:"fileSystem"`
		Server     ServerConfig     `yaml:"server"`
		Database   DatabaseConfig   `yaml:"database"`
		Auth       AuthConfig       `yaml:"auth"`
		Limiter    LimiterConfig    `yaml:"limiter"`
	}

	TmdbConfig struct {
		ApiUrl   string `yaml:"apiUrl"`
		ImageUrl string `yaml:"imageUrl"`
	}

	FilesystemConfig struct {
		Library string `yaml:"library"`
		Backup  string `yaml:"backup"`
	}

	ServerConfig struct {
		Host string `yaml:"host"`
		Port uint   `yaml:"port"`
	}

	AuthConfig struct {
		EnableNativeAdmin  bool     `yaml:"enableNativeAdmin"`
		OpenIdIssuer       string   `yaml:"openIdIssuer"`
		OpenIdClientId     string   `yaml:"openIdClientId"`
		OpenIdRedirectHost string   `yaml:"openIdRedirectHost"`
		OpenIdAdminGroups  []string `yaml:"openIdAdminGroups"`
	}

	DatabaseConfig struct {
		Host      string `yaml:"host"`
		User      string `yaml:"user"`
		Database  string `yaml:"database"`
		Port      uint   `yaml:"port"`
		LocalFile string `yaml:"localFile"`
	}

	LimiterConfig struct {
		Enabled           bool    `yaml:"enabled"`
		RequestsPerSecond float64 `yaml:"requestsPerSecond"`
		Burst             int     `yaml:"burst"`
	}
)

func Load(fileName string) *CinelogConfig {
	config := defaultConfig()

	if configData, err := os.ReadFile(fileName); err != nil {
		log.Warn("Failed to load configuration file.", "path", fileName)
		if data, err := yaml.Marshal(&config); err != nil {
			log.Error("Failed to serialize default configuration.", "error", err.Error())
		} else if err := os.WriteFile(fileName, data, 0755); err != nil {
			log.Error("Failed to write default configuration file.", "path", fileName)
		}
	} else if err := yaml.Unmarshal(configData, &config); err != nil {
		log.Error("Failed to parse configuration file.", "error", err.Error())
	}

	return config
}

func defaultConfig() *CinelogConfig {
	return &CinelogConfig{
		Tmdb: TmdbConfig{
			ApiUrl:   "https://api.themoviedb.org/3",
			ImageUrl: "https://image.tmdb.org/t/p",
		},
		FileSystem: FilesystemConfig{
			Library: "./library/",
			Backup:  "./library-backup/",
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 3000,
		},
		Database: DatabaseConfig{
			Host:      "127.0.0.1",
			User:      "cinelog",
			Database:  "cinelog",
			Port:      5432,
			LocalFile: "./cinelog.db",
		},
		Auth: AuthConfig{
			EnableNativeAdmin:  true,
			OpenIdIssuer:       "",
			OpenIdClientId:     "",
			OpenIdRedirectHost: "http://localhost:3000",
			OpenIdAdminGroups:  make([]string, 0),
		},
		Limiter: LimiterConfig{
			Enabled:           true,
			RequestsPerSecond: 25,
			Burst:             50,
		},
	}
}
