package mystore

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"
)

// inmemTxKey marks a context as holding the lock of one specific store.
type inmemTxKey struct{ store any }

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
	s.Lock()
	defer s.Unlock()

	// No rollback: writes done before an error remain visible.
	return f(context.WithValue(c, inmemTxKey{store: s}, true))
}

func (s *InMemoryStore[T]) withLock(c context.Context, f func()) {
	if c.Value(inmemTxKey{store: s}) == nil {
		s.Lock()
		defer s.Unlock()
	}
	f()
}

func (s *InMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	s.withLock(c, func() {
		s.Items[uid] = value
	})
	return nil
}

func (s *InMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	var result T
	var exists bool
	s.withLock(c, func() {
		result, exists = s.Items[uid]
	})
	return result, exists, nil
}

func (s *InMemoryStore[T]) Delete(c context.Context, uid string) error {
	s.withLock(c, func() {
		delete(s.Items, uid)
	})
	return nil
}

func (s *InMemoryStore[T]) List(c context.Context) ([]T, error) {
	var result []T
	s.withLock(c, func() {
		result = make([]T, 0, len(s.Items))
		for _, v := range s.Items {
			result = append(result, v)
		}
	})
	return result, nil
}

func (s *InMemoryStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	all, err := s.List(c)
	if err != nil {
		return nil, err
	}

	result := []T{}
	for _, item := range all {
		ok, err := matches(item, filters)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, item)
		}
	}

	if orderByField != "" {
		descending := strings.HasPrefix(orderByField, "-")
		field := strings.TrimPrefix(orderByField, "-")
		sort.SliceStable(result, func(i, j int) bool {
			if descending {
				return less(fieldOf(result[j], field), fieldOf(result[i], field))
			}
			return less(fieldOf(result[i], field), fieldOf(result[j], field))
		})
	}

	return result, nil
}

func matches(item any, filters []Filter) (bool, error) {
	for _, f := range filters {
		if f.Compare != "=" {
			return false, fmt.Errorf("unsupported comparison %q on field %s", f.Compare, f.Field)
		}
		v := fieldOf(item, f.Field)
		if !v.IsValid() {
			return false, fmt.Errorf("unknown field %s", f.Field)
		}
		if !reflect.DeepEqual(v.Interface(), f.Value) {
			return false, nil
		}
	}
	return true, nil
}

func fieldOf(item any, name string) reflect.Value {
	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}
	}
	return v.FieldByName(name)
}

func less(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return false
	}
	if ta, ok := a.Interface().(time.Time); ok {
		return ta.Before(b.Interface().(time.Time))
	}
	switch a.Kind() {
	case reflect.String:
		return a.String() < b.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	default:
		return false
	}
}
