// Package logging builds the logrus loggers used by the binaries.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Options struct {
	Development bool
	// Verbose forces debug level outside development.
	Verbose bool
	// File, when set, receives a JSON copy of every entry, rotated by size.
	File string
	Out  io.Writer
}

func New(opts Options) (*logrus.Logger, error) {
	logger := logrus.New()
	if err := Configure(logger, opts); err != nil {
		return nil, err
	}
	return logger, nil
}

func Configure(logger *logrus.Logger, opts Options) error {
	logLevel := logrus.InfoLevel
	if opts.Development || opts.Verbose {
		logLevel = logrus.DebugLevel
	}
	logger.SetLevel(logLevel)

	if opts.Development {
		logger.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	if opts.Out != nil {
		logger.SetOutput(opts.Out)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if opts.File == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   opts.File,
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	logger.AddHook(hook)

	return nil
}
