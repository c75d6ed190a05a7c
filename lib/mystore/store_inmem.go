package mystore

import (
	"context"
	"reflect"
	"sync"
)

type InMemoryStore[T any] struct {
	sync.Mutex
	Items map[string]T
}

func NewInMemoryStore[T any](c context.Context) (*InMemoryStore[T], func(), error) {
	return &InMemoryStore[T]{
		Items: make(map[string]T),
	}, func() {}, nil
}

func (s *InMemoryStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	// Start transaction
	s.Lock()

	// The marker carries this store, so another store touched inside the
	// transaction still takes its own lock.
	ctx := context.WithValue(c, ctxTransactionKey{}, s)

	// Within this block everything is transactional
	err := f(ctx)
	if err != nil {
		// Rollback
		s.Unlock()

		return err
	}

	// Commit
	s.Unlock()

	return nil
}

func (s *InMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	nonTransactional := c.Value(ctxTransactionKey{}) != any(s)

	if nonTransactional {
		s.Lock()
	}

	s.Items[uid] = value

	if nonTransactional {
		s.Unlock()
	}

	return nil
}

func (s *InMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	nonTransactional := c.Value(ctxTransactionKey{}) != any(s)

	if nonTransactional {
		s.Lock()
	}

	result, exists := s.Items[uid]

	if nonTransactional {
		s.Unlock()
	}

	return result, exists, nil
}

func (s *InMemoryStore[T]) List(c context.Context) ([]T, error) {
	nonTransactional := c.Value(ctxTransactionKey{}) != any(s)

	if nonTransactional {
		s.Lock()
	}

	result := make([]T, 0, len(s.Items))
	for _, v := range s.Items {
		result = append(result, v)
	}

	if nonTransactional {
		s.Unlock()
	}

	return result, nil
}

func (s *InMemoryStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	all, err := s.List(c)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(all))
	for _, v := range all {
		if matchesFilters(v, filters) {
			result = append(result, v)
		}
	}

	return result, nil
}

func (s *InMemoryStore[T]) ReplaceAll(c context.Context, items map[string]T) error {
	nonTransactional := c.Value(ctxTransactionKey{}) != any(s)

	if nonTransactional {
		s.Lock()
	}

	replacement := make(map[string]T, len(items))
	for uid, v := range items {
		replacement[uid] = v
	}
	s.Items = replacement

	if nonTransactional {
		s.Unlock()
	}

	return nil
}

// Only equality filters are supported, which is all local development needs.
func matchesFilters[T any](value T, filters []Filter) bool {
	for _, f := range filters {
		rv := reflect.ValueOf(value).FieldByName(f.Field)
		if !rv.IsValid() {
			return false
		}
		if !reflect.DeepEqual(rv.Interface(), f.Value) {
			return false
		}
	}

	return true
}
