package seed

import (
	"database/sql"
	"fmt"
	"sync"
)

// WriteFunc performs database writes inside a transaction.
type WriteFunc func(tx *sql.Tx) error

// BatchWriter buffers write callbacks and commits them in transactions of
// a fixed size. Flushing happens inline on the submitting goroutine, which
// keeps SQLite to a single writer.
type BatchWriter struct {
	mu  sync.Mutex
	db  *sql.DB
	buf []WriteFunc
	cap int
}

// NewBatchWriter creates a writer flushing every batchSize submissions.
func NewBatchWriter(db *sql.DB, batchSize int) *BatchWriter {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &BatchWriter{db: db, cap: batchSize, buf: make([]WriteFunc, 0, batchSize)}
}

// Submit enqueues a write, flushing when the batch is full.
func (bw *BatchWriter) Submit(w WriteFunc) error {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.buf = append(bw.buf, w)
	if len(bw.buf) >= bw.cap {
		return bw.flushLocked()
	}
	return nil
}

// Flush commits any buffered writes.
func (bw *BatchWriter) Flush() error {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.flushLocked()
}

func (bw *BatchWriter) flushLocked() error {
	if len(bw.buf) == 0 {
		return nil
	}
	batch := bw.buf
	bw.buf = make([]WriteFunc, 0, bw.cap)

	tx, err := bw.db.Begin()
	if err != nil {
		return fmt.Errorf("begin batch tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, w := range batch {
		if err := w(tx); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch of %d writes: %w", len(batch), err)
	}
	return nil
}
