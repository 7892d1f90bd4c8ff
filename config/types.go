package config

// Config the agenda generator configuration
type Config struct {
	Mode          string `json:"mode,omitempty" env:"AGENDA_ENV" envDefault:"production"`          // production/development
	Root          string `json:"root,omitempty" env:"AGENDA_ROOT" envDefault:"."`                  // working root, relative paths are resolved against it
	Lang          string `json:"lang,omitempty" env:"AGENDA_LANG"`                                 // command line language
	Output        string `json:"output,omitempty" env:"AGENDA_OUTPUT" envDefault:"agenda_out.pdf"` // the generated document
	Layout        string `json:"layout,omitempty" env:"AGENDA_LAYOUT"`                             // layout YAML file
	Background    string `json:"background,omitempty" env:"AGENDA_BACKGROUND"`                     // background PDF, overrides the layout
	Strict        bool   `json:"strict,omitempty" env:"AGENDA_STRICT" envDefault:"false"`          // malformed rows abort the run
	Log           string `json:"log,omitempty" env:"AGENDA_LOG"`                                   // log file, stderr when empty
	LogMode       string `json:"log_mode,omitempty" env:"AGENDA_LOG_MODE" envDefault:"TEXT"`       // JSON|TEXT
	LogMaxSize    int    `json:"log_max_size,omitempty" env:"AGENDA_LOG_MAX_SIZE" envDefault:"20"` // megabytes
	LogMaxBackups int    `json:"log_max_backups,omitempty" env:"AGENDA_LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `json:"log_max_age,omitempty" env:"AGENDA_LOG_MAX_AGE" envDefault:"28"` // days
	LogLocalTime  bool   `json:"log_local_time,omitempty" env:"AGENDA_LOG_LOCAL_TIME" envDefault:"true"`
}
