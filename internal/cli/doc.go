// Package cli provides the `ulidctl` command-line tool.
//
// Usage
//
//	ulidctl new                       # one lowercase ULID
//	ulidctl new -n 5 --format ulid-upper
//	ulidctl new --seed 42 --at 1546017741324   # reproducible output
//
//	ulidctl inspect 05kzbnmt1hnwhs62crxermqqaw
//	ulidctl inspect 0167f5d6-9a0c-6bc8-e4c2-663aec52f757 --format uuid
//
//	ulidctl from-uuid 0167f5d6-9a0c-6bc8-e4c2-663aec52f757
//	ulidctl from-fields 23590358 39436 27592 3837945402 3964860247
//	ulidctl from-int 1869020765069383451833408194209838935
//
// The from-* commands and new render with --format (default ulid).
package cli
