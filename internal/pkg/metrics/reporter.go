package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Reporter appends timestamped JSON lines to a metrics log. One line per
// record, flushed immediately, so a crash loses at most the current write.
type Reporter struct {
	mu      sync.Mutex
	logFile *os.File
}

func NewReporter(logPath string) (*Reporter, error) {
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open metrics log: %w", err)
	}
	return &Reporter{logFile: file}, nil
}

func (r *Reporter) Record(category string, data interface{}) error {
	entry := map[string]interface{}{
		"timestamp": time.Now(),
		"category":  category,
		"data":      data,
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, err = r.logFile.Write(append(line, '\n'))
	return err
}

func (r *Reporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logFile.Close()
}
