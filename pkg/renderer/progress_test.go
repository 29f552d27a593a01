package renderer

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// captureLogger records formatted log lines
type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *captureLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *captureLogger) output() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "")
}

func TestProgress_Counting(t *testing.T) {
	progress := NewProgress(100)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				progress.Add(1)
			}
		}()
	}
	wg.Wait()

	if progress.Done() != 100 {
		t.Errorf("Expected 100 done, got %d", progress.Done())
	}
	if progress.Fraction() != 1 {
		t.Errorf("Expected fraction 1, got %f", progress.Fraction())
	}
}

func TestProgress_ReporterLogsAndStops(t *testing.T) {
	logger := &captureLogger{}
	progress := NewProgress(10)
	progress.Add(5)

	progress.Start(5*time.Millisecond, logger)
	deadline := time.Now().Add(2 * time.Second)
	for logger.output() == "" && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	progress.Stop()
	progress.Stop() // idempotent

	if !strings.Contains(logger.output(), "[5/10]") {
		t.Errorf("Expected progress line, got %q", logger.output())
	}

	// No lines after Stop returns
	before := logger.output()
	time.Sleep(20 * time.Millisecond)
	if logger.output() != before {
		t.Error("Reporter kept logging after Stop")
	}
}

func TestProgress_StopWithoutStart(t *testing.T) {
	progress := NewProgress(1)
	progress.Stop()
}
