package util

import (
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// LogErr logs the error with the message and arguments if the error is not nil.
// It returns true if the error is not nil.
// Examples:
// LogErr(err)
// LogErr(err, "error message")
// LogErr(err, "error message %s", "with argument")
func LogErr(err error, msgAndArgs ...interface{}) bool {
	if err == nil {
		return false
	}

	if len(msgAndArgs) == 0 {
		log.WithError(err).Error(err.Error())
	} else if len(msgAndArgs) == 1 {
		msg := msgAndArgs[0].(string)
		log.WithError(err).Error(msg)
	} else if len(msgAndArgs) > 1 {
		msg := msgAndArgs[0].(string)
		log.WithError(err).Errorf(msg, msgAndArgs[1:]...)
	}

	return true
}

// LogErrors logs every error combined in err on its own line through LogErr,
// which has no other caller.
// It returns the number of logged errors.
func LogErrors(err error, msgAndArgs ...interface{}) int {
	errs := multierr.Errors(err)
	for _, e := range errs {
		LogErr(e, msgAndArgs...)
	}
	return len(errs)
}
