package auraconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/auralite/aura/configs"
	"github.com/auralite/aura/logs"
)

//go:embed schema.cue
var schema string

// Config files are named aura.cue or .aura.cue and may live in the
// working directory, the user config dir, or /etc, in that precedence.
// AURA_CONFIG prepends an explicit file.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	if path := os.Getenv("AURA_CONFIG"); path != "" {
		paths = append(paths, path)
	}
	for _, dir := range dirs {
		for _, filename := range []string{"aura.cue", ".aura.cue"} {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
