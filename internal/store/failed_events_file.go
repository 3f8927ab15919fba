package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/capi-relay/models"
)

// failedEventFile is the file-backed implementation of
// [FailedEventStorage]. Each entry is one Write of a full line on an
// O_APPEND file, serialized by mu, so concurrent appends never interleave.
type failedEventFile struct {
	mu   sync.Mutex
	file *os.File
	now  func() time.Time
}

// NewFailedEventFile opens (creating if needed) the JSON lines file at path
// for appending. Missing parent directories are created.
func NewFailedEventFile(path string) (FailedEventStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOpeningFailedEventLog, err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpeningFailedEventLog, err)
	}

	return &failedEventFile{
		file: file,
		now:  time.Now,
	}, nil
}

// Append implements [FailedEventStorage]. It stops at the first event that
// cannot be written.
func (f *failedEventFile) Append(ctx context.Context, events []models.Event, cause error) error {
	if len(events) == 0 {
		return nil
	}

	message := ""
	if cause != nil {
		message = cause.Error()
	}
	timestamp := f.now().UTC().Truncate(time.Second)

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, event := range events {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: stopped after %d of %d events: %v", ErrWritingFailedEvent, i, len(events), err)
		}

		line, err := json.Marshal(models.FailedEvent{
			Timestamp:  timestamp,
			Event:      event,
			Error:      message,
			RetryCount: 0,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWritingFailedEvent, err)
		}

		if _, err = f.file.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("%w: stopped after %d of %d events: %v", ErrWritingFailedEvent, i, len(events), err)
		}
	}

	return nil
}

// Close implements [FailedEventStorage].
func (f *failedEventFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.file.Close()
}
