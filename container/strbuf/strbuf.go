// Package strbuf implements a mutable byte-string builder.
//
// A Buffer is a growable byte sequence with in-place editing: insert, erase,
// find, replace, trim, reverse and case mapping. Search misses return the
// NotFound sentinel rather than an error; absent substrings are the normal
// case, not a failure. Case mapping goes through x/text's caser so non-ASCII
// text folds correctly.
//
// A Buffer is not safe for concurrent use.
package strbuf

import (
	"bytes"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/joshuapare/memkit/internal/assert"
	"github.com/joshuapare/memkit/internal/intmath"
)

// NotFound is returned by Find and FindLast when the substring is absent.
const NotFound = -1

// growthFactor matches the vector growth policy.
const growthFactor = 2

// Buffer is a mutable byte string. Construct with New or FromString.
type Buffer struct {
	chars []byte
}

// New returns an empty buffer with the given reserved capacity.
func New(capacity int) *Buffer {
	assert.That(capacity > 0, "strbuf: capacity must be positive")
	return &Buffer{chars: make([]byte, 0, capacity)}
}

// FromString returns a buffer holding a copy of s.
func FromString(s string) *Buffer {
	b := New(max(len(s), 1))
	b.chars = append(b.chars, s...)
	return b
}

// Copy returns an independent copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	out := &Buffer{chars: make([]byte, len(b.chars), cap(b.chars))}
	copy(out.chars, b.chars)
	return out
}

// Len returns the byte length.
func (b *Buffer) Len() int {
	return len(b.chars)
}

// Cap returns the reserved capacity.
func (b *Buffer) Cap() int {
	return cap(b.chars)
}

// Empty reports whether the buffer holds no bytes.
func (b *Buffer) Empty() bool {
	return len(b.chars) == 0
}

// Get returns the byte at index.
func (b *Buffer) Get(index int) byte {
	assert.That(index >= 0 && index < len(b.chars), "strbuf: index out of range")
	return b.chars[index]
}

// Set overwrites the byte at index.
func (b *Buffer) Set(index int, c byte) {
	assert.That(index >= 0 && index < len(b.chars), "strbuf: index out of range")
	b.chars[index] = c
}

// Resize changes the reserved capacity, truncating the contents when
// capacity is below the current length.
func (b *Buffer) Resize(capacity int) {
	assert.That(capacity > 0, "strbuf: capacity must be positive")
	if capacity == cap(b.chars) {
		return
	}
	length := min(len(b.chars), capacity)
	chars := make([]byte, length, capacity)
	copy(chars, b.chars)
	b.chars = chars
}

// Append adds s at the end.
func (b *Buffer) Append(s string) {
	b.reserve(len(s))
	b.chars = append(b.chars, s...)
}

// Prepend adds s at the front.
func (b *Buffer) Prepend(s string) {
	b.Insert(0, s)
}

// Insert places s at index, shifting later bytes up. index may equal Len to
// append.
func (b *Buffer) Insert(index int, s string) {
	assert.That(index >= 0 && index <= len(b.chars), "strbuf: insert index out of range")
	b.reserve(len(s))
	b.chars = append(b.chars, s...)
	copy(b.chars[index+len(s):], b.chars[index:])
	copy(b.chars[index:], s)
}

// Erase removes count bytes starting at index.
func (b *Buffer) Erase(index, count int) {
	assert.That(count >= 0, "strbuf: negative erase count")
	assert.That(index >= 0 && index+count <= len(b.chars), "strbuf: erase range out of bounds")
	b.chars = append(b.chars[:index], b.chars[index+count:]...)
}

// Clear removes every byte. Capacity is retained.
func (b *Buffer) Clear() {
	b.chars = b.chars[:0]
}

// Find returns the index of the first occurrence of sub, or NotFound.
func (b *Buffer) Find(sub string) int {
	return bytes.Index(b.chars, []byte(sub))
}

// FindLast returns the index of the last occurrence of sub, or NotFound.
func (b *Buffer) FindLast(sub string) int {
	return bytes.LastIndex(b.chars, []byte(sub))
}

// Contains reports whether sub occurs in the buffer.
func (b *Buffer) Contains(sub string) bool {
	return b.Find(sub) != NotFound
}

// ReplaceFirst replaces the first occurrence of old with new, reporting
// whether a replacement happened.
func (b *Buffer) ReplaceFirst(old, new string) bool {
	assert.That(old != "", "strbuf: empty search string")
	return b.replaceAt(b.Find(old), old, new)
}

// ReplaceLast replaces the last occurrence of old with new, reporting
// whether a replacement happened.
func (b *Buffer) ReplaceLast(old, new string) bool {
	assert.That(old != "", "strbuf: empty search string")
	return b.replaceAt(b.FindLast(old), old, new)
}

// ReplaceAll replaces every non-overlapping occurrence of old with new and
// returns the replacement count.
func (b *Buffer) ReplaceAll(old, new string) int {
	assert.That(old != "", "strbuf: empty search string")
	total := 0
	from := 0
	for {
		at := bytes.Index(b.chars[from:], []byte(old))
		if at == NotFound {
			return total
		}
		at += from
		b.replaceAt(at, old, new)
		from = at + len(new)
		total++
	}
}

// Substr returns a copy of count bytes starting at index.
func (b *Buffer) Substr(index, count int) string {
	assert.That(count >= 0, "strbuf: negative substring count")
	assert.That(index >= 0 && index+count <= len(b.chars), "strbuf: substring range out of bounds")
	return string(b.chars[index : index+count])
}

// Trim removes leading and trailing ASCII whitespace.
func (b *Buffer) Trim() {
	trimmed := bytes.TrimSpace(b.chars)
	copy(b.chars, trimmed)
	b.chars = b.chars[:len(trimmed)]
}

// Upper maps the contents to upper case.
func (b *Buffer) Upper() {
	b.recase(cases.Upper(language.Und))
}

// Lower maps the contents to lower case.
func (b *Buffer) Lower() {
	b.recase(cases.Lower(language.Und))
}

// Reverse reverses the bytes in place.
func (b *Buffer) Reverse() {
	for i, j := 0, len(b.chars)-1; i < j; i, j = i+1, j-1 {
		b.chars[i], b.chars[j] = b.chars[j], b.chars[i]
	}
}

// Compare orders the buffer against s like bytes.Compare.
func (b *Buffer) Compare(s string) int {
	return bytes.Compare(b.chars, []byte(s))
}

// String returns a copy of the contents.
func (b *Buffer) String() string {
	return string(b.chars)
}

// Map replaces each byte with transform(byte).
func (b *Buffer) Map(transform func(byte) byte) {
	assert.That(transform != nil, "strbuf: nil transform")
	for i := range b.chars {
		b.chars[i] = transform(b.chars[i])
	}
}

// Filter keeps only bytes satisfying predicate and returns the surviving
// count.
func (b *Buffer) Filter(predicate func(byte) bool) int {
	assert.That(predicate != nil, "strbuf: nil predicate")
	total := 0
	for _, c := range b.chars {
		if predicate(c) {
			b.chars[total] = c
			total++
		}
	}
	b.chars = b.chars[:total]
	return total
}

// Reduce folds the bytes into start using accumulator, front to back.
func (b *Buffer) Reduce(start byte, accumulator func(byte, byte) byte) byte {
	assert.That(accumulator != nil, "strbuf: nil accumulator")
	acc := start
	for _, c := range b.chars {
		acc = accumulator(acc, c)
	}
	return acc
}

// Foreach calls action on each byte, front to back.
func (b *Buffer) Foreach(action func(byte)) {
	assert.That(action != nil, "strbuf: nil action")
	for _, c := range b.chars {
		action(c)
	}
}

// replaceAt splices new over old at index at, or reports false when at is
// NotFound.
func (b *Buffer) replaceAt(at int, old, new string) bool {
	if at == NotFound {
		return false
	}
	b.Erase(at, len(old))
	b.Insert(at, new)
	return true
}

func (b *Buffer) recase(caser cases.Caser) {
	out := caser.Bytes(b.chars)
	b.chars = b.chars[:0]
	b.reserve(len(out))
	b.chars = append(b.chars, out...)
}

// reserve guarantees room for n more bytes, doubling capacity until they
// fit.
func (b *Buffer) reserve(n int) {
	need, ok := intmath.AddOK(len(b.chars), n)
	assert.That(ok, "strbuf: length overflow")
	if need <= cap(b.chars) {
		return
	}
	capacity := max(cap(b.chars), 1)
	for capacity < need {
		capacity, ok = intmath.MulOK(capacity, growthFactor)
		assert.That(ok, "strbuf: capacity overflow")
	}
	chars := make([]byte, len(b.chars), capacity)
	copy(chars, b.chars)
	b.chars = chars
}
