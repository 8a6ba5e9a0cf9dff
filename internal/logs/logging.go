package logs

import (
	"io"

	"github.com/juju/errors"
	"github.com/op/go-logging"
)

const format = "%{level:.1s}%{time:0102 15:04:05.999999} %{pid} %{shortfile}] %{module}: %{message}"

// Configure sends every module logger to w at the given level
// (CRITICAL, ERROR, WARNING, NOTICE, INFO or DEBUG)
func Configure(w io.Writer, level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return errors.Annotatef(err, "invalid log level %q", level)
	}
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(format))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}
