package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
	ShowBoxes  bool `json:"showBoxes"`
}

// SavedRun records the last dungeon run so the menu can offer a replay of the
// same layout.
type SavedRun struct {
	Seed  int64 `json:"seed"`
	Rooms int   `json:"rooms"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "stonedelve",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
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
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveLastRun records the seed and room count of the run just generated.
func SaveLastRun(seed int64, rooms int) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(&SavedRun{Seed: seed, Rooms: rooms})
	if err != nil {
		log.Printf("Warning: Could not serialize run record: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("lastrun", data); err != nil {
		log.Printf("Warning: Could not save run record: %v", err)
		return err
	}
	return nil
}

// LoadLastRun returns the previous run record, or nil if none exists.
func LoadLastRun() (*SavedRun, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("lastrun")
	if err != nil {
		log.Printf("Warning: Could not load run record: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var run SavedRun
	if err := json.Unmarshal(data, &run); err != nil {
		log.Printf("Warning: Could not parse run record: %v", err)
		return nil, err
	}

	return &run, nil
}
