package config

const (
	defaultConfigPath    = "~/.config/desksort/config.toml"
	defaultAppDirName    = "desksort"
	defaultSortedDirName = "Sorted"
	defaultLogDirName    = "logs"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"

	databaseFileName = "settings.db"
	lockFileName     = "desksort.lock"
	logFileName      = "desksort.log"
)

var defaultIgnorePatterns = []string{
	"desktop.ini",
	"Thumbs.db",
	"*.crdownload",
	"*.part",
}

// Default returns a Config populated with repository defaults. Paths left
// empty are resolved from the environment during Load.
func Default() Config {
	ignore := make([]string, len(defaultIgnorePatterns))
	copy(ignore, defaultIgnorePatterns)
	return Config{
		Sort: Sort{
			Ignore:         ignore,
			SkipSortedRoot: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
