package log

import (
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// printfAdapter exposes a leveled logger through core.Logger. Messages are emitted at Info level.
type printfAdapter struct {
	logger Logger
}

// Printf returns a core.Logger view of logger.
func Printf(logger Logger) core.Logger {
	return &printfAdapter{logger: logger}
}

func (p *printfAdapter) Printf(format string, args ...interface{}) {
	p.logger.Infof(strings.TrimRight(format, "\n"), args...)
}
