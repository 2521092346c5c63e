package logger

import (
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process-wide Logrus logger. Output goes to stdout;
// rotation is left to the deployment environment.
func Setup(level string) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	parsed, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}
