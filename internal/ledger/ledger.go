package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/store"
)

var ErrTransactionNotFound = errors.New("ledger: transaction not found")

// Filter untuk layar riwayat: substring ID (case-insensitive) dan prefix
// tanggal "YYYY-MM-DD".
type Filter struct {
	ID   string
	Date string
}

// Ledger is the append-only sales history, most-recent-first. Entries are
// never mutated or removed; every read hands out deep copies.
type Ledger struct {
	mu      sync.RWMutex
	entries []model.Transaction
	store   store.Store
}

// Load membaca dokumen "transactions"; kalau belum ada, mulai kosong.
func Load(ctx context.Context, st store.Store) (*Ledger, error) {
	l := &Ledger{store: st}

	data, err := st.Load(ctx, store.KeyTransactions)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// Fresh till, riwayat kosong.
	case err != nil:
		return nil, fmt.Errorf("load transactions: %w", err)
	default:
		if err := json.Unmarshal(data, &l.entries); err != nil {
			return nil, fmt.Errorf("decode transactions: %w", err)
		}
	}
	return l, nil
}

// Append prepends a deep copy of tx and flushes. Validation of payment
// correctness happens upstream, before a Transaction is ever constructed.
func (l *Ledger) Append(ctx context.Context, tx model.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]model.Transaction{tx.Clone()}, l.entries...)
	l.flush(ctx)
}

// All returns the full history, most-recent-first, as copies.
func (l *Ledger) All() []model.Transaction {
	return l.Query(Filter{})
}

// Query returns matching copies ordered by date descending. Calling it twice
// with the same filter and no intervening Append yields equal results.
func (l *Ledger) Query(f Filter) []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	needle := strings.ToLower(f.ID)
	out := make([]model.Transaction, 0, len(l.entries))
	for _, tx := range l.entries {
		if needle != "" && !strings.Contains(strings.ToLower(tx.ID), needle) {
			continue
		}
		if f.Date != "" && !strings.HasPrefix(tx.Date.Format("2006-01-02"), f.Date) {
			continue
		}
		out = append(out, tx.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// Get returns one transaction by exact id.
func (l *Ledger) Get(id string) (model.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, tx := range l.entries {
		if tx.ID == id {
			return tx.Clone(), nil
		}
	}
	return model.Transaction{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
}

// Len is the number of recorded sales.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// RevenueSince menjumlahkan total penjualan sejak cutoff (inklusif).
func (l *Ledger) RevenueSince(cutoff time.Time) (int64, int) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var revenue int64
	var count int
	for _, tx := range l.entries {
		if tx.Date.Before(cutoff) {
			continue
		}
		revenue += tx.Total
		count++
	}
	return revenue, count
}

// flush persists the whole document; in-memory stays authoritative on error.
// Caller harus pegang l.mu.
func (l *Ledger) flush(ctx context.Context) {
	data, err := json.Marshal(l.entries)
	if err != nil {
		log.Printf("ledger: encode transactions failed: %v", err)
		return
	}
	if err := l.store.Save(ctx, store.KeyTransactions, data); err != nil {
		log.Printf("ledger: persist transactions failed: %v", err)
	}
}
