//go:build unit
// +build unit

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVersion(t *testing.T) {
	tests := []struct {
		name               string
		conf               *Conf
		versionByBuildFlag string
		wantVersion        string
	}{
		{name: "build flag", conf: &Conf{}, versionByBuildFlag: "v0.2.0", wantVersion: "v0.2.0"},
		{name: "config", conf: &Conf{Version: "v0.2.0"}, wantVersion: "v0.2.0"},
		{name: "none", conf: &Conf{}, wantVersion: NoVersion},
		{name: "build flag wins", conf: &Conf{Version: "v0.2.0"}, versionByBuildFlag: "v0.2.1", wantVersion: "v0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.conf, tt.versionByBuildFlag)
			assert.Equal(t, tt.wantVersion, Version)
		})
	}
}

func TestSetInfo(t *testing.T) {
	Version = "v0.2.0"
	SetInfo(&Conf{LogLevel: "debug", Output: "-", Workers: 4, QueueMaxSize: 16})
	assert.Equal(t, "v0.2.0", CurrentInfo.Version)
	assert.Equal(t, 4, CurrentInfo.Conf.Workers)
	assert.Contains(t, CurrentInfo.String(), `"log_level":"debug"`)
	assert.Contains(t, CurrentInfo.String(), `"version":"v0.2.0"`)
}
