// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"
	"path"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ava-labs/counter/consts"
)

const (
	logsFolder  = "logs"
	maxLogSize  = 8 // megabytes
	maxLogAge   = 7 // days
	maxLogFiles = 4
)

// newLogger writes JSON logs to a rotating file under [dataDir]. With
// [verbose] the same entries are also written in colour to stderr; stdout is
// reserved for command output.
func newLogger(level logging.Level, dataDir string, verbose bool) logging.Logger {
	file := &lumberjack.Logger{
		Filename:   path.Join(dataDir, logsFolder, consts.Name+".log"),
		MaxSize:    maxLogSize,
		MaxAge:     maxLogAge,
		MaxBackups: maxLogFiles,
		Compress:   true,
	}
	cores := []logging.WrappedCore{
		logging.NewWrappedCore(level, file, logging.JSON.FileEncoder()),
	}
	if verbose {
		cores = append(cores, logging.NewWrappedCore(level, os.Stderr, logging.Colors.ConsoleEncoder()))
	}
	return logging.NewLogger("", cores...)
}
