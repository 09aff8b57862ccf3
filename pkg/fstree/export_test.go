package fstree

import (
	"io"

	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "fstree")
}
