package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide structured logger. Init switches it to JSON
// output for prod-like environments; until then it logs text to stderr.
var Log = logrus.New()

func Init(appEnv string) {
	Log.SetOutput(os.Stderr)

	if appEnv == "prod" || appEnv == "production" || appEnv == "release" {
		Log.SetFormatter(&logrus.JSONFormatter{})
		Log.SetLevel(logrus.InfoLevel)
		return
	}

	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Log.SetLevel(logrus.DebugLevel)
}
