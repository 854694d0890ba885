// Package attributes provides the instance-level attribute store of the transform.
package attributes

import (
	"context"
	"fmt"
	"image"
	"sort"

	"github.com/xaionaro-go/xsync"
)

type Key string

const (
	// KeyDestinationRectangle is an image.Rectangle limiting the area that
	// receives the grayscale effect. It is applied when streaming begins.
	KeyDestinationRectangle = Key("grayscale.destination_rectangle")
)

type Store struct {
	locker xsync.Mutex
	values map[Key]any
}

func New() *Store {
	return &Store{
		values: map[Key]any{},
	}
}

func (s *Store) Get(ctx context.Context, key Key) (any, bool) {
	return xsync.DoA1R2(ctx, &s.locker, s.getLocked, key)
}

func (s *Store) getLocked(key Key) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *Store) Set(ctx context.Context, key Key, value any) {
	s.locker.Do(ctx, func() {
		s.values[key] = value
	})
}

func (s *Store) Delete(ctx context.Context, key Key) {
	s.locker.Do(ctx, func() {
		delete(s.values, key)
	})
}

func (s *Store) Keys(ctx context.Context) []Key {
	return xsync.DoR1(ctx, &s.locker, func() []Key {
		keys := make([]Key, 0, len(s.values))
		for k := range s.values {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		return keys
	})
}

// GetRectangle returns the rectangle stored under the key.
// It returns false if the key is not set.
func (s *Store) GetRectangle(ctx context.Context, key Key) (image.Rectangle, bool, error) {
	v, ok := s.Get(ctx, key)
	if !ok {
		return image.Rectangle{}, false, nil
	}
	switch v := v.(type) {
	case image.Rectangle:
		return v, true, nil
	case *image.Rectangle:
		if v == nil {
			return image.Rectangle{}, false, nil
		}
		return *v, true, nil
	default:
		return image.Rectangle{}, false, fmt.Errorf("attribute %q has type %T, expected image.Rectangle", key, v)
	}
}
