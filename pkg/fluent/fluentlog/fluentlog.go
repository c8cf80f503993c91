// Package fluentlog adapts apex/log loggers into Outcome.OnError callbacks.
package fluentlog

import "github.com/apex/log"

// Error returns a callback that logs the error at error level.
func Error(logger log.Interface, msg string) func(error) {
	return func(err error) {
		logger.WithError(err).Error(msg)
	}
}

func Warn(logger log.Interface, msg string) func(error) {
	return func(err error) {
		logger.WithError(err).Warn(msg)
	}
}

func Debug(logger log.Interface, msg string) func(error) {
	return func(err error) {
		logger.WithError(err).Debug(msg)
	}
}
