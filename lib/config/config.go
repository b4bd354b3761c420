package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

const DefaultSettingsFile = "catbounce-config.json"

const (
	defaultImageDir       = "cats"
	defaultScaleFactor    = 0.5
	defaultDecorationFile = "rickroll_qr.png"
	defaultLogLevel       = "info"
)

type Settings struct {
	ImageDir       string  `json:"imageDir"`
	ScaleFactor    float64 `json:"scaleFactor"`
	DecorationFile string  `json:"decorationFile"`
	LogLevel       string  `json:"logLevel"`
}

func Defaults() Settings {
	return Settings{
		ImageDir:       defaultImageDir,
		ScaleFactor:    defaultScaleFactor,
		DecorationFile: defaultDecorationFile,
		LogLevel:       defaultLogLevel,
	}
}

// GetPath returns the settings file next to the executable, or in the
// working directory when the executable path is unknown.
func GetPath() string {
	binPath, err := os.Executable()
	if err != nil {
		return DefaultSettingsFile
	}
	return filepath.Join(filepath.Dir(binPath), DefaultSettingsFile)
}

// Load reads the settings at path. A missing file gives the defaults and no
// error. A broken file gives the defaults and the error. Unknown keys are
// returned as warnings.
func Load(path string) (Settings, []string, error) {
	settings := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil, nil
		}
		return settings, nil, err
	}

	var rawSettings map[string]any
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		return Defaults(), nil, fmt.Errorf("invalid settings file %v: %w", path, err)
	}

	var warnings []string
	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			warnings = append(warnings, fmt.Sprintf("unrecognised setting key '%v'", key))
		}
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return Defaults(), warnings, fmt.Errorf("invalid settings file %v: %w", path, err)
	}

	if settings.ScaleFactor <= 0 {
		warnings = append(warnings, fmt.Sprintf("invalid scaleFactor %v, using %v", settings.ScaleFactor, defaultScaleFactor))
		settings.ScaleFactor = defaultScaleFactor
	}
	if strings.TrimSpace(settings.ImageDir) == "" {
		settings.ImageDir = defaultImageDir
	}
	if settings.LogLevel == "" {
		settings.LogLevel = defaultLogLevel
	}

	return settings, warnings, nil
}

func getKnownKeys(v any) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		if jsonTag := t.Field(i).Tag.Get("json"); jsonTag != "" {
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
