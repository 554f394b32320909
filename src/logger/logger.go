package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const TimeFormat = "15:04:05"

var once sync.Once
var Log zerolog.Logger

var output = &switchWriter{}

// switchWriter is the destination of Log. A log file can be attached to it after
// packages have taken their reference to Log.
type switchWriter struct {
	mu   sync.Mutex
	out  io.Writer
	file *os.File
}

func (w *switchWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

func (w *switchWriter) attach(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file != nil {
		w.file.Close()
	}
	w.file = file
	w.out = io.MultiWriter(consoleWriter(), zerolog.ConsoleWriter{Out: file, TimeFormat: TimeFormat, NoColor: true})
	return nil
}

func (w *switchWriter) detach() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	w.out = consoleWriter()
	return err
}

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: TimeFormat,
	}
}

func configureLogger() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
			file = file[lastSlash+1:]
		}
		return fmt.Sprintf("%s:%d", file, line)
	}

	output.out = consoleWriter()
	Log = zerolog.New(output).With().Timestamp().Caller().Logger()
}

// GetLoggerConfigured sets the global level and, when logFile is not empty, tees output into that file.
// It may be called after GetLogger; loggers handed out earlier pick up both settings.
func GetLoggerConfigured(level zerolog.Level, logFile string) (*zerolog.Logger, error) {
	once.Do(configureLogger)
	zerolog.SetGlobalLevel(level)
	if logFile != "" {
		if err := output.attach(logFile); err != nil {
			return &Log, err
		}
	}
	return &Log, nil
}

func GetLogger() *zerolog.Logger {
	once.Do(configureLogger)
	return &Log
}

// Close detaches and closes the log file, if any. Logging continues on stdout.
func Close() error {
	return output.detach()
}
