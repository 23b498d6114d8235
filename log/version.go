package log

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
)

// LogVersion writes the running version and the non-secret configuration.
func LogVersion() {
	zap.L().Debug("Fidelity engine version:" + core.Version)
	if core.CurrentInfo != nil {
		zap.L().Debug(fmt.Sprintf("Info:%s", core.CurrentInfo))
	}
}
