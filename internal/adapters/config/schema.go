package config

// Configfile represents the structure of the piprun config.yaml file.
// Pointer and empty fields fall back to the defaults.
type Configfile struct {
	CacheDir    string      `yaml:"cache_dir"`
	Creator     *CreatorDTO `yaml:"creator"`
	Installer   string      `yaml:"installer"`
	Interpreter string      `yaml:"interpreter"`
	LockTimeout string      `yaml:"lock_timeout"`
	Handoff     string      `yaml:"handoff"`
	Log         *LogDTO     `yaml:"log"`
}

// CreatorDTO configures the environment-builder tool.
type CreatorDTO struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// LogDTO configures logging.
type LogDTO struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
