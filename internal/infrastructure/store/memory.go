package store

import (
	"context"
	"strings"
	"sync"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
)

// MemoryStore is a thread-safe in-memory phone catalog. Insertion order is
// preserved so listings and resolver tie-breaks are deterministic.
type MemoryStore struct {
	mu     sync.RWMutex
	phones []domain.PhoneRecord
	index  map[string]int // lowercased model name -> position in phones
}

// NewMemoryStore creates an empty in-memory catalog
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{index: make(map[string]int)}
}

// NewSeededMemoryStore creates an in-memory catalog pre-populated with the
// sample catalog.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	for _, p := range SampleCatalog() {
		s.Put(p)
	}
	return s
}

// Put inserts a record, replacing any existing record with the same model name.
func (s *MemoryStore) Put(record domain.PhoneRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(record.ModelName)
	if pos, ok := s.index[key]; ok {
		s.phones[pos] = record
		return
	}
	s.index[key] = len(s.phones)
	s.phones = append(s.phones, record)
}

// ListModelNames returns every model name in insertion order.
func (s *MemoryStore) ListModelNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.phones))
	for _, p := range s.phones {
		names = append(names, p.ModelName)
	}
	return names, nil
}

// GetByName looks a record up case-insensitively: exact name first, then
// substring, then substring with "samsung"/"galaxy" tokens stripped from the
// search term.
func (s *MemoryStore) GetByName(ctx context.Context, name string) (*domain.PhoneRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil, domain.ErrPhoneNotFound
	}

	if pos, ok := s.index[lower]; ok {
		record := s.phones[pos]
		return &record, nil
	}

	for _, p := range s.phones {
		if strings.Contains(strings.ToLower(p.ModelName), lower) {
			record := p
			return &record, nil
		}
	}

	stripped := stripBrandTokens(lower)
	if stripped != "" && stripped != lower {
		for _, p := range s.phones {
			if strings.Contains(strings.ToLower(p.ModelName), stripped) {
				record := p
				return &record, nil
			}
		}
	}

	return nil, domain.ErrPhoneNotFound
}

// ListUnderPrice returns up to limit records whose parsed price does not
// exceed maxPrice. Records without a parseable price are excluded.
func (s *MemoryStore) ListUnderPrice(ctx context.Context, maxPrice float64, limit int) ([]domain.PhoneRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []domain.PhoneRecord
	for _, p := range s.phones {
		price, ok := domain.ParsePrice(p.Price)
		if !ok || price > maxPrice {
			continue
		}
		matched = append(matched, p)
		if limit > 0 && len(matched) >= limit {
			break
		}
	}
	return matched, nil
}

// ListAll returns a copy of every record in insertion order.
func (s *MemoryStore) ListAll(ctx context.Context) ([]domain.PhoneRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PhoneRecord, len(s.phones))
	copy(out, s.phones)
	return out, nil
}

// Count returns the number of records in the catalog.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.phones), nil
}

// stripBrandTokens removes the "samsung" and "galaxy" tokens from a search
// term, for the secondary lookup pass.
func stripBrandTokens(s string) string {
	s = strings.ReplaceAll(s, "samsung", "")
	s = strings.ReplaceAll(s, "galaxy", "")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
