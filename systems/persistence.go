package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Engine string `json:"engine"`
	Simple bool   `json:"simple"`
	Angle  int    `json:"angle"`
	Debug  bool   `json:"debug"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings snapshots the live configuration.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Engine: cfg.Collision.Engine,
		Simple: cfg.Collision.Simple,
		Angle:  cfg.Collision.Angle,
		Debug:  cfg.Debug.Enabled,
	}
}

// ApplySavedSettings copies saved settings over the configuration. Values
// that no longer validate are dropped as a whole.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	next := cfg.Collision
	next.Engine = saved.Engine
	next.Simple = saved.Simple
	next.Angle = saved.Angle
	if err := next.Validate(); err != nil {
		log.Printf("Warning: Ignoring saved settings: %v", err)
		return
	}
	cfg.Collision = next
	cfg.Debug.Enabled = saved.Debug
}
