// Package loader turns point files into model.Points.
//
// Two record formats are understood:
//
//   - text: one point per line, whitespace-separated. The last D numeric
//     tokens are the coordinates, the remaining non-numeric tokens joined by a
//     single space form the label. Blank lines and lines starting with '#'
//     are skipped.
//   - jsonl (".jsonl" suffix): one {"values":[...],"label":"..."} object per
//     line.
//
// A ".zst" or ".lz4" suffix selects decompression before the format is
// detected from the remaining name. Sources are addressed as local paths,
// s3://bucket/key or minio://bucket/key; a trailing '/' loads every blob
// under the prefix in name order.
//
// Identifiers are assigned 0..n-1 in overall input order, so the same
// argument list always yields the same points.
package loader
