// Package seqbuf fills fixed-capacity integer buffers with the sequence 0..n-1.
// Storage is always owned by the caller: a Buffer, a slice handed to Generate, or
// the array Sequence returns by value. Requests larger than the capacity fail with
// a *RangeError instead of writing past the end.
package seqbuf
