package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"configmaker/internal/logging"
	"configmaker/internal/settings"
)

type commandContext struct {
	settingsFlag  *string
	logLevelFlag  *string
	logFormatFlag *string
	quietFlag     *bool

	settingsOnce   sync.Once
	settings       *settings.Settings
	settingsPath   string
	settingsExists bool
	settingsErr    error
}

func newCommandContext(settingsFlag, logLevelFlag, logFormatFlag *string, quietFlag *bool) *commandContext {
	return &commandContext{
		settingsFlag:  settingsFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
		quietFlag:     quietFlag,
	}
}

func (c *commandContext) ensureSettings() (*settings.Settings, error) {
	c.settingsOnce.Do(func() {
		var path string
		if c.settingsFlag != nil {
			path = strings.TrimSpace(*c.settingsFlag)
		}
		cfg, resolvedPath, exists, err := settings.Load(path)
		if err != nil {
			c.settingsErr = err
			return
		}
		c.settings = cfg
		c.settingsPath = resolvedPath
		c.settingsExists = exists
	})
	return c.settings, c.settingsErr
}

// newLogger builds the run logger from the loaded settings, with the
// persistent flags taking precedence. Output goes to w, never stdout, so a
// document streamed with --output - stays clean.
func (c *commandContext) newLogger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureSettings()
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		level = *c.logLevelFlag
	}
	format := cfg.Logging.Format
	if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
		format = *c.logFormatFlag
	}
	return logging.New(logging.Options{Level: level, Format: format, Writer: w})
}

func (c *commandContext) quiet() bool {
	return c.quietFlag != nil && *c.quietFlag
}

func shouldSkipSettings(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipSettingsLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
