// Package rsv decodes RSV (rows of string values) documents into a
// delimited, human-readable text form.
//
// RSV delimits values and rows with reserved bytes instead of quoting:
//
//	0xFF  value terminator
//	0xFE  null value marker
//	0xFD  row terminator
//	0x0A  accepted as an alternate row terminator
//	0x0D  ignored everywhere
//
// Every other byte is content of the current value and is copied verbatim.
//
// Decoding is a single pass over the input with one byte of lookahead. A
// Transcoder carries only the phase of the current row between bytes, so a
// fresh Transcoder is used for every input source. The Driver sequences
// sources onto one shared writer and stops at the first Open, Read or Write
// failure.
package rsv
