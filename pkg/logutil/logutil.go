// Package logutil provides logging utilities.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	out = io.Discard
	// If out is set by SetOutputFile, outFile is set and keeps the same value
	// as out. Otherwise, outFile is nil.
	outFile *os.File
	loggers []*log.Logger
	// Protects the state above.
	mu sync.Mutex
)

// GetLogger gets a logger with a prefix. The prefix is placed right before the
// message, after the timestamp. Loggers write to io.Discard until SetOutput or
// SetOutputFile is called.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags|log.Lmsgprefix)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to the
// new io.Writer. If the old output was a file opened by SetOutputFile, it is
// closed.
func SetOutput(newout io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
	setOutput(newout)
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file. If the old output was a file opened by SetOutputFile, it is
// closed. The new file is truncated. SetOutputFile("") is equivalent to
// SetOutput(io.Discard).
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	if outFile != nil {
		outFile.Close()
	}
	outFile = file
	setOutput(file)
	return nil
}

func setOutput(newout io.Writer) {
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}
