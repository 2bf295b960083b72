package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Settings struct {
	MultipleStrokes  bool    `json:"multiple_strokes"`
	StrokeTimeoutMs  int     `json:"stroke_timeout_ms"`
	MinPoints        int     `json:"min_points"`
	MinPointDistance float64 `json:"min_point_distance"`
	MaxPoints        int     `json:"max_points"`
	MinSimilarity    float64 `json:"min_similarity"`
	Workers          int     `json:"workers"`
}

func Defaults() *Settings {
	return &Settings{
		MultipleStrokes:  true,
		StrokeTimeoutMs:  200,
		MinPoints:        5,
		MinPointDistance: 2,
		MaxPoints:        2048,
		MinSimilarity:    0,
		Workers:          4,
	}
}

func (s *Settings) StrokeTimeout() time.Duration {
	return time.Duration(s.StrokeTimeoutMs) * time.Millisecond
}

func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home directory")
	}
	configDir := filepath.Join(homeDir, ".config", "pincher")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", errors.Wrap(err, "create config directory")
	}
	return configDir, nil
}

func GetPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gestures.json"), nil
}

func GetSettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}

	defaultSettings := Defaults()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, errors.Wrapf(err, "read %s", settingsPath)
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	// Keys missing from the file keep their defaults.
	settings := Defaults()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	settings.validate(defaultSettings)
	return settings, nil
}

func (s *Settings) validate(def *Settings) {
	if s.StrokeTimeoutMs < 1 || s.StrokeTimeoutMs > 10000 {
		log.Printf("Invalid stroke_timeout_ms value %d, must be between 1 and 10000, using default %d",
			s.StrokeTimeoutMs, def.StrokeTimeoutMs)
		s.StrokeTimeoutMs = def.StrokeTimeoutMs
	}
	if s.MinPoints < 1 {
		log.Printf("Invalid min_points value %d, must be at least 1, using default %d",
			s.MinPoints, def.MinPoints)
		s.MinPoints = def.MinPoints
	}
	if s.MinPointDistance < 0 {
		log.Printf("Invalid min_point_distance value %.2f, must not be negative, using default %.2f",
			s.MinPointDistance, def.MinPointDistance)
		s.MinPointDistance = def.MinPointDistance
	}
	if s.MaxPoints < 2 {
		log.Printf("Invalid max_points value %d, must be at least 2, using default %d",
			s.MaxPoints, def.MaxPoints)
		s.MaxPoints = def.MaxPoints
	}
	if s.MinSimilarity < 0 {
		log.Printf("Invalid min_similarity value %.2f, must not be negative, using default %.2f",
			s.MinSimilarity, def.MinSimilarity)
		s.MinSimilarity = def.MinSimilarity
	}
	if s.Workers < 1 || s.Workers > 64 {
		log.Printf("Invalid workers value %d, must be between 1 and 64, using default %d",
			s.Workers, def.Workers)
		s.Workers = def.Workers
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode default settings")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "write %s", path)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			// Handle json tags like "field,omitempty"
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
