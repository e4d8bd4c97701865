package config

import (
	"fmt"

	play "github.com/go-playground/validator/v10"
	"github.com/wzugang/timeup"
)

// Settings configure a notification pass.
type Settings struct {
	Name        string `path:"name"          validate:"required"`
	CurTime     int    `path:"cur_time"      validate:"gte=0"`
	StopOnError bool   `path:"stop_on_error"`
	Verbosity   int    `path:"verbosity"     validate:"gte=0,lte=10"`
	Metrics     bool   `path:"metrics"`
}

// Defaults are the Settings used when no source overrides them.
var Defaults = map[string]any{
	"name":          "timeup",
	"cur_time":      0,
	"stop_on_error": false,
	"verbosity":     0,
	"metrics":       false,
}

var validate = play.New()

// Load unmarshals and validates the Settings at path.
func Load(provider Provider, path string) (Settings, error) {
	if provider == nil {
		panic("provider cannot be nil")
	}
	var settings Settings
	if err := provider.Unmarshal(path, false, &settings); err != nil {
		return settings, fmt.Errorf("config: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Payload returns the payload to notify with.
func (s Settings) Payload() timeup.Notify {
	return timeup.Notify{CurTime: s.CurTime}
}

// Options returns the timeup.Options described by the Settings.
func (s Settings) Options() timeup.Options {
	options := timeup.Options{Name: s.Name, StopOnError: timeup.OptionFalse}
	if s.StopOnError {
		options.StopOnError = timeup.OptionTrue
	}
	return options
}
