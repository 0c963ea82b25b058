// Package seed bulk-imports strict homophone groups from the pronunciation
// dictionary into the persistent link store, so later runs resolve
// entirely from cache without touching the dictionary or the network.
package seed

import (
	"context"
	"database/sql"
	"log"

	"github.com/rgilles/homofo/pkg/db"
	"github.com/rgilles/homofo/pkg/phonetic"
	"github.com/rgilles/homofo/pkg/respell"
)

// Seeder walks every homophone group of a dictionary and persists the
// pairwise links with strict provenance.
type Seeder struct {
	DB        *sql.DB
	BatchSize int
	Workers   int
	// Logger is used for informational messages. nil means no logging.
	Logger *log.Logger
	// OnProgress is called after each group with groups done and total.
	OnProgress func(done, total int)
}

// NewSeeder creates a Seeder with default batching and concurrency.
func NewSeeder(conn *sql.DB) *Seeder {
	return &Seeder{DB: conn, BatchSize: 200, Workers: 4}
}

// link is one directed homophone fact prepared for writing.
type link struct {
	word      string
	homophone string
}

// Seed writes every pairwise link of every homophone group in dict.
// It is idempotent: links already present are left untouched. Returns the
// number of links submitted.
func (s *Seeder) Seed(ctx context.Context, dict *phonetic.Dictionary) (int, error) {
	groups := dict.HomophoneGroups()
	total := len(groups)
	if s.Logger != nil {
		s.Logger.Printf("seeding %d homophone groups", total)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wp := NewWorkerPool(s.Workers, s.Workers*2)
	linkCh := make(chan []link, s.Workers*2)
	wp.Start(ctx)

	// Producer: expand groups into link batches on the pool, then close
	// the channel once every job has finished.
	go func() {
		for _, group := range groups {
			g := group
			if err := wp.Submit(func(ctx context.Context) error {
				select {
				case linkCh <- expandGroup(g):
				case <-ctx.Done():
				}
				return nil
			}); err != nil {
				break
			}
		}
		wp.Close()
		close(linkCh)
	}()

	bw := NewBatchWriter(s.DB, s.BatchSize)
	count := 0
	done := 0
	for links := range linkCh {
		for _, l := range links {
			l := l
			if err := bw.Submit(func(tx *sql.Tx) error {
				wordID, err := db.CreateOrGetWord(tx, l.word)
				if err != nil {
					return err
				}
				candID, err := db.CreateOrGetWord(tx, l.homophone)
				if err != nil {
					return err
				}
				return db.AddLink(tx, wordID, candID, respell.SourceStrict)
			}); err != nil {
				return count, err
			}
			count++
		}
		done++
		if s.OnProgress != nil {
			s.OnProgress(done, total)
		}
		if ctx.Err() != nil {
			return count, ctx.Err()
		}
	}

	if err := bw.Flush(); err != nil {
		return count, err
	}
	return count, nil
}

// expandGroup turns one homophone group into directed links between every
// ordered pair.
func expandGroup(group []string) []link {
	links := make([]link, 0, len(group)*(len(group)-1))
	for _, w := range group {
		for _, h := range group {
			if w != h {
				links = append(links, link{word: w, homophone: h})
			}
		}
	}
	return links
}
