package envvar

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// String returns the value of the environment variable n, or the optional default when it is unset.
// The second return value reports whether the variable is set.
func String(n string, args ...string) (string, bool) {
	defaultValue := ""
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	return str, true
}

// Int parses the environment variable n as an int.
// A malformed value is logged and the default is returned.
func Int(n string, args ...int) (int, bool) {
	defaultValue := 0
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	num, err := strconv.Atoi(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %s=%q as int, incorrect format", n, str)
		return defaultValue, false
	}

	return num, true
}
