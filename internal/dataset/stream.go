package dataset

import (
	"errors"
	"io"
	"log/slog"
)

// Stats summarizes a stream.
type Stats struct {
	Rows    int
	Skipped int
}

// Stream reads src to the end, binds every record and hands it to fn in input
// order. Records failing with a *RowError are logged and skipped; any other
// error, including one returned by fn, stops the stream.
func Stream(src Source, b *Binder, fn func(Example) error) (Stats, error) {
	var stats Stats
	record := 0
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		record++

		if err == nil {
			var ex Example
			ex, err = b.Bind(record, rec)
			if err == nil {
				if err := fn(ex); err != nil {
					return stats, err
				}
				stats.Rows++
				continue
			}
		}

		var rowErr *RowError
		if !errors.As(err, &rowErr) {
			return stats, err
		}
		slog.Warn("Skipping record", "record", rowErr.Record, "error", rowErr.Err)
		stats.Skipped++
	}
}
