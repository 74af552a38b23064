// Package flexcodec is a binary encoding/decoding engine for custom wire
// protocols and file formats. The same value type can be serialized with
// different endianness, integer-compression strategy, bit-width for
// sizes/variants, string character encoding, and optional stream
// transformations (compression, encryption) — all carried in a per-call
// Context rather than hardcoded on the type.
//
// This is the codec kernel: representation settings (BinSettings,
// Context), the primitive codec (integers, sizes, variants, booleans,
// chars, floats, strings, raw bytes), and the Encoder that threads a
// Context through a stream. Stream modifiers live in package modifier,
// the zero-copy borrow path in package borrow, stateful relative-seek in
// package seekw, and container codecs (slices, maps, options, tuples)
// in package xcontainer.
//
// The style and primitive dispatch ladder (U8/U16/U32/U64/I64/Bool/
// SliceBytes-shaped monomorphic functions, a bit-budget check on varint
// decode) is carried over from the teacher package's utils/cser, utils/
// bits and utils/fast, generalized from that package's one fixed
// split-stream format to the settings-driven matrix this kernel supports.
package flexcodec
