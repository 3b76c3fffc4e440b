package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeq2Single returns an iterator over one key/value pair.
func IterSeq2Single[T1 any, T2 any](val1 T1, val2 T2) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		yield(val1, val2)
	}
}
