package logger

import (
	"os"

	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var L = &logger.Logger{
	Out:      os.Stderr,
	Level:    logger.InfoLevel,
	Hooks:    make(logger.LevelHooks),
	ExitFunc: os.Exit,
	Formatter: &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	},
}

// SetLevel switches L to the named logrus level ("debug", "info", ...).
func SetLevel(level string) error {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	L.SetLevel(lvl)
	return nil
}

// WithPrefix returns an entry tagged for the prefixed formatter.
func WithPrefix(prefix string) *logger.Entry {
	return L.WithField("prefix", prefix)
}
