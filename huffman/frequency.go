package huffman

import "sync"

// FrequencyTable holds the number of occurrences of every byte value.
type FrequencyTable [alphabetSize]uint32

// Active returns the number of symbols that occur at least once.
func (ft *FrequencyTable) Active() int {
	n := 0
	for _, c := range ft {
		if c > 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	var total uint64
	for _, c := range ft {
		total += uint64(c)
	}
	return total
}

// CountFrequencies counts the bytes of data using the given number of goroutines.
//
// The data is split into contiguous chunks, each counted into a private table,
// and the tables are summed once every worker has finished. workers is clamped
// to [1, len(data)]. Counts are 32-bit, data must not exceed math.MaxUint32 bytes.
func CountFrequencies(data []byte, workers int) FrequencyTable {
	if workers > len(data) {
		workers = len(data)
	}
	if workers < 1 {
		workers = 1
	}

	chunk := len(data) / workers
	partial := make([]FrequencyTable, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		if i == workers-1 {
			end = len(data)
		}

		wg.Add(1)
		go func(part []byte, counts *FrequencyTable) {
			defer wg.Done()
			for _, b := range part {
				counts[b]++
			}
		}(data[start:end], &partial[i])
	}
	wg.Wait()

	var merged FrequencyTable
	for i := range partial {
		for symbol, count := range partial[i] {
			merged[symbol] += count
		}
	}
	return merged
}
