package pipeline

import "fmt"

// UploadInBatches splits items into consecutive chunks of at most size
// elements and calls upload once per chunk, in order. The first failure
// aborts the remaining chunks; chunks already uploaded stay applied.
func UploadInBatches[T any](items []T, size int, upload func([]T) error) error {
	if size <= 0 {
		return fmt.Errorf("invalid batch size %d", size)
	}
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		if err := upload(items[start:end]); err != nil {
			return fmt.Errorf("batch %d-%d: %w", start, end, err)
		}
	}
	return nil
}
