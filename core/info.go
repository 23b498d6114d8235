package core

import (
	jsoniter "github.com/json-iterator/go"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

type NonSecretConf struct {
	DevMode            bool   `json:"dev_mode"`
	DisableStdoutLog   bool   `json:"disable_stdout_log"`
	EnableFileLog      bool   `json:"enable_file_log"`
	LogDir             string `json:"log_dir"`
	LogLevel           string `json:"log_level"`
	LogRotationMaxDays int    `json:"log_rotation_max_days"`
	SettingPath        string `json:"setting_path"`
	Output             string `json:"output"`
	Indent             bool   `json:"indent"`
	ResultsDir         string `json:"results_dir"`
	Workers            int    `json:"workers"`
	QueueMaxSize       int    `json:"queue_max_size"`
}

type Info struct {
	Version string         `json:"version"`
	Conf    *NonSecretConf `json:"conf"`
}

var CurrentInfo *Info

func SetInfo(c *Conf) {
	conf := &NonSecretConf{
		DevMode:            c.DevMode,
		DisableStdoutLog:   c.DisableStdoutLog,
		EnableFileLog:      c.EnableFileLog,
		LogDir:             c.LogDir,
		LogLevel:           c.LogLevel,
		LogRotationMaxDays: c.LogRotationMaxDays,
		SettingPath:        c.SettingPath,
		Output:             c.Output,
		Indent:             c.Indent,
		ResultsDir:         c.ResultsDir,
		Workers:            c.Workers,
		QueueMaxSize:       c.QueueMaxSize,
	}

	CurrentInfo = &Info{
		Version: Version,
		Conf:    conf,
	}
}

func (i *Info) String() string {
	b, err := jsonIter.Marshal(i)
	if err != nil {
		return err.Error()
	}
	return string(b)
}
