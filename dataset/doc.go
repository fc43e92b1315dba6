// Package dataset loads count distributions from files, with transparent
// decompression of common corpus snapshot formats.
//
// Two text layouts are supported, both line-oriented with '#' comments:
//
//   - counts files: one strictly positive count per line, consumed by a
//     rank-frequency fit.
//   - pairs files: "size count" per line, consumed by a size-frequency fit.
//
// Compression is detected from the file extension (.zst, .s2, .lz4); the
// corresponding Codec is also exported for callers that manage their own
// bytes. The zstd codec uses the cgo-backed implementation when cgo is
// available and falls back to a pure-Go implementation otherwise.
package dataset
