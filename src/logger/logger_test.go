package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

var waitGroup sync.WaitGroup

func loopGetLogger(t *testing.T, routineNum int) {
	defer waitGroup.Done()
	for i := 0; i < 1000; i++ {
		if GetLogger() == nil {
			t.Errorf("GetLogger() = nil in goroutine %d, expected a non-nil logger", routineNum)
		}
	}
}

func TestGetLogger(t *testing.T) {
	if GetLogger() == nil {
		t.Errorf("GetLogger() = nil, expected a non-nil logger")
	}

	waitGroup.Add(2)
	go loopGetLogger(t, 1)
	go loopGetLogger(t, 2)
	waitGroup.Wait()
}

func TestGetLoggerConfiguredSetsLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	log, err := GetLoggerConfigured(zerolog.WarnLevel, "")
	if err != nil {
		t.Fatalf("GetLoggerConfigured() returned %v", err)
	}
	if log != GetLogger() {
		t.Errorf("GetLoggerConfigured() and GetLogger() returned different loggers")
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("global level = %v, expected %v", zerolog.GlobalLevel(), zerolog.WarnLevel)
	}
}

func TestLogFileAttachedAfterGetLogger(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	early := GetLogger()
	path := filepath.Join(t.TempDir(), "lift.log")
	if _, err := GetLoggerConfigured(zerolog.InfoLevel, path); err != nil {
		t.Fatalf("GetLoggerConfigured() returned %v", err)
	}
	early.Info().Msg("written to file")
	if err := Close(); err != nil {
		t.Fatalf("Close() returned %v", err)
	}
	early.Info().Msg("after close")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "written to file") {
		t.Errorf("log file = %q, expected it to contain the message", content)
	}
	if strings.Contains(string(content), "after close") {
		t.Errorf("log file = %q, expected nothing after Close", content)
	}
	if err := Close(); err != nil {
		t.Errorf("second Close() returned %v", err)
	}
}

func TestLogFileOpenError(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	if _, err := GetLoggerConfigured(zerolog.InfoLevel, t.TempDir()); err == nil {
		t.Errorf("GetLoggerConfigured() with a directory as log file returned nil error")
	}
}
