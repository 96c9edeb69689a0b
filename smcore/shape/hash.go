/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package shape

import (
	"math"
	"time"
	"unicode/utf16"
)

// prime is the multiplier of the hash fold. It MUST stay 31 for hash codes
// to match other clients of the service.
const prime int32 = 31

// Hasher is implemented by every generated shape.
//
// HashCode MUST be deterministic across processes and platforms; unlike Go
// map hashing it carries no seed, so a hash code may be logged or compared
// between runs.
type Hasher interface {
	HashCode() int32
}

// Hash folds field hashes in declaration order: h = 31*h + fieldHash,
// starting from 1, with 0 for unset fields. Arithmetic wraps on overflow.
//
// Field hashes use the JVM definitions (String.hashCode over UTF-16 code
// units, Long folded high^low, Boolean 1231/1237, Date over epoch
// milliseconds, List folded from 1) so that values hash the same way the
// service's other client libraries hash them.
//
//	h := shape.NewHash()
//	h.AddString(c.s3Uri)
//	h.AddString(c.localPath)
//	return h.Sum()
type Hash struct {
	h int32
}

// NewHash returns a Hash seeded with 1.
//
// A shape without fields therefore hashes to 1, and a shape whose fields are
// all unset hashes to 31^n for n fields.
func NewHash() *Hash {
	return &Hash{h: 1}
}

// Sum returns the folded hash. More fields may still be added afterwards.
func (h *Hash) Sum() int32 {
	return h.h
}

func (h *Hash) add(v int32) *Hash {
	h.h = prime*h.h + v
	return h
}

// AddString folds an optional string using StringHash. Nil folds as 0, the
// same as the empty string, which is why Equal and not HashCode decides
// whether a field is set.
func (h *Hash) AddString(p *string) *Hash {
	if p == nil {
		return h.add(0)
	}
	return h.add(StringHash(*p))
}

// AddInt32 folds an optional integer. An int32 is its own hash.
func (h *Hash) AddInt32(p *int32) *Hash {
	if p == nil {
		return h.add(0)
	}
	return h.add(*p)
}

// AddInt64 folds an optional long using Int64Hash.
func (h *Hash) AddInt64(p *int64) *Hash {
	if p == nil {
		return h.add(0)
	}
	return h.add(Int64Hash(*p))
}

// AddFloat64 folds an optional double using Float64Hash.
func (h *Hash) AddFloat64(p *float64) *Hash {
	if p == nil {
		return h.add(0)
	}
	return h.add(Float64Hash(*p))
}

// AddBool folds an optional boolean using BoolHash.
func (h *Hash) AddBool(p *bool) *Hash {
	if p == nil {
		return h.add(0)
	}
	return h.add(BoolHash(*p))
}

// AddTime folds an optional timestamp using TimeHash.
func (h *Hash) AddTime(p *time.Time) *Hash {
	if p == nil {
		return h.add(0)
	}
	return h.add(TimeHash(*p))
}

// AddStrings folds an optional list of strings.
//
// The list is hashed on its own, seeded with 1, and the result is folded in
// as one value. An empty list therefore folds as 1 and a nil list as 0,
// keeping the two apart.
func (h *Hash) AddStrings(s []string) *Hash {
	if s == nil {
		return h.add(0)
	}
	lh := NewHash()
	for i := range s {
		lh.AddString(&s[i])
	}
	return h.add(lh.Sum())
}

// AddShape folds an optional nested shape through its HashCode method.
//
// It is a function rather than a method because methods cannot take type
// parameters.
func AddShape[T any, P interface {
	*T
	Hasher
}](h *Hash, p P) *Hash {
	if p == nil {
		return h.add(0)
	}
	return h.add(p.HashCode())
}

// AddShapes folds an optional list of nested shapes; nil elements count as 0.
func AddShapes[T any, P interface {
	*T
	Hasher
}](h *Hash, s []P) *Hash {
	if s == nil {
		return h.add(0)
	}
	lh := NewHash()
	for _, p := range s {
		AddShape(lh, p)
	}
	return h.add(lh.Sum())
}

// StringHash returns s[0]*31^(n-1) + ... + s[n-1] over the UTF-16 encoding
// of s, with wrapping arithmetic. The empty string hashes to 0.
//
// Characters outside the Basic Multilingual Plane contribute two code
// units, a surrogate pair. Invalid UTF-8 bytes are hashed as U+FFFD.
//
//	shape.StringHash("a")  // 97
//	shape.StringHash("ab") // 3105
func StringHash(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = prime*h + int32(u)
	}
	return h
}

// Int64Hash folds the high and low halves of v: int32(v ^ (v >>> 32)).
// Values that fit in 32 bits and are not negative hash to themselves.
func Int64Hash(v int64) int32 {
	u := uint64(v)
	return int32(u ^ (u >> 32))
}

// Float64Hash folds the IEEE 754 bit pattern of v the way Int64Hash folds a
// long. Equal values by EqualFloat hash equally.
func Float64Hash(v float64) int32 {
	bits := math.Float64bits(v)
	return int32(bits ^ (bits >> 32))
}

// BoolHash returns 1231 for true and 1237 for false.
func BoolHash(v bool) int32 {
	if v {
		return 1231
	}
	return 1237
}

// TimeHash hashes t at millisecond precision, as Int64Hash of the Unix
// time in milliseconds. The location of t does not affect the result.
func TimeHash(t time.Time) int32 {
	return Int64Hash(t.UnixMilli())
}
