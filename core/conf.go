package core

type Conf struct {
	Version            string `long:"version" description:"version of the fidelity engine" env:"FIDELITY_VERSION"`
	DevMode            bool   `long:"dev-mode" description:"run in dev mode" env:"FIDELITY_DEV_MODE"`
	DisableStdoutLog   bool   `long:"disable-stdout-log" description:"do not log in standard output" env:"FIDELITY_DISABLE_STDOUT_LOG"`
	EnableFileLog      bool   `long:"enable-file-log" description:"enable log in file" env:"FIDELITY_ENABLE_FILE_LOG"`
	LogDir             string `long:"log-dir" description:"rotating log file dir" default:"./shares/logs" env:"FIDELITY_LOG_DIR"`
	LogLevel           string `long:"log-level" description:"log level" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" env:"FIDELITY_LOG_LEVEL"`
	LogRotationMaxDays int    `long:"log-rotation-max-days" description:"max days of log rotation" default:"7" env:"FIDELITY_LOG_ROTATION_MAX_DAYS"`
	SettingPath        string `long:"setting-path" description:"experiment setting file path, defaults are used when empty" env:"FIDELITY_SETTING_PATH"`
	Output             string `long:"output" short:"o" description:"report output file, '-' for stdout" default:"-" env:"FIDELITY_OUTPUT"`
	Indent             bool   `long:"indent" description:"indent the report JSON" env:"FIDELITY_INDENT"`
	ResultsDir         string `long:"results-dir" description:"directory of the daily results journal, disabled when empty" env:"FIDELITY_RESULTS_DIR"`
	Workers            int    `long:"workers" description:"parallel sweep workers, overrides the setting file when positive" env:"FIDELITY_WORKERS"`
	QueueMaxSize       int    `long:"queue-max-size" description:"max experiments waiting in the run queue" default:"16" env:"FIDELITY_QUEUE_MAX_SIZE"`
}
