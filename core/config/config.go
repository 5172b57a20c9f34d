// Package config holds the boot-time configuration shared by the
// supervisor and the shell.
package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultPath is where the supervisor looks for its configuration inside
// the initramfs.
const DefaultPath = "/etc/tinybox.yaml"

type Configuration struct {
	// Banner is printed by the supervisor after clearing the console.
	Banner string `json:"banner"`

	// Prompt is the shell prompt string.
	Prompt string `json:"prompt" validate:"required"`

	// Shell is the argv used to launch the shell child, first element is
	// the executable path.
	Shell []string `json:"shell" validate:"required,min=1"`

	// RespawnShell relaunches the shell if it exits. The stock behavior is
	// a single shell session per boot.
	RespawnShell bool `json:"respawn_shell"`

	// PowerOffPath is the utility the shell execs for the poweroff builtin.
	PowerOffPath string `json:"poweroff_path" validate:"required"`

	// SearchPath is the PATH value exported to the shell and its children.
	SearchPath string `json:"search_path" validate:"required"`
}

// Default returns the configuration used when no config file is present.
func Default() *Configuration {
	return &Configuration{
		Banner:       "Welcome to tinybox!",
		Prompt:       "> ",
		Shell:        []string{"/bin/tinybox", "sh"},
		RespawnShell: false,
		PowerOffPath: "/sbin/poweroff",
		SearchPath:   "/bin:/usr/bin:/sbin:/usr/sbin",
	}
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}
