package objprint

import (
	"fmt"
	"io"
	"iter"
)

// WriteIter renders each value from seq and writes it to w as it arrives.
// Rendering stops at the first error.
func (c *Config[T]) WriteIter(w io.Writer, seq iter.Seq[T]) error {
	if err := c.Err(); err != nil {
		return err
	}
	var streamErr error
	i := 0
	seq(func(item T) bool {
		if err := c.Write(w, item); err != nil {
			streamErr = fmt.Errorf("item %d: %w", i, err)
			return false
		}
		i++
		return true
	})
	return streamErr
}

// WriteChan renders values received from ch until it is closed.
// It is a thin wrapper around [Config.WriteIter].
func (c *Config[T]) WriteChan(w io.Writer, ch <-chan T) error {
	return c.WriteIter(w, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
