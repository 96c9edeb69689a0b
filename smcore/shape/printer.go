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
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// RedactedText replaces the value of a sensitive field in redacted output.
const RedactedText = "[REDACTED]"

// Renderer is implemented by every generated shape.
type Renderer interface {
	fmt.Stringer
	Redacted() string
}

// Printer builds the diagnostic form of a shape:
//
//	{S3Uri: s3://bucket/prefix,LocalPath: /opt/ml/checkpoints/}
//
// Only set fields are written, in call order, as "Name: value" joined by
// commas. The output is meant for humans and logs, never for the wire.
//
// A Printer created with redact set writes RedactedText for fields added
// through Secret and renders nested shapes with their Redacted method.
type Printer struct {
	b      strings.Builder
	n      int
	redact bool
}

// NewPrinter returns an empty Printer.
func NewPrinter(redact bool) *Printer {
	p := &Printer{redact: redact}
	p.b.WriteByte('{')
	return p
}

// String returns the rendered shape.
func (p *Printer) String() string {
	return p.b.String() + "}"
}

func (p *Printer) field(name, value string) *Printer {
	if p.n > 0 {
		p.b.WriteByte(',')
	}
	p.n++
	p.b.WriteString(name)
	p.b.WriteString(": ")
	p.b.WriteString(value)
	return p
}

// Text writes an optional string field.
func (p *Printer) Text(name string, v *string) *Printer {
	if v == nil {
		return p
	}
	return p.field(name, *v)
}

// Secret writes an optional string field that must not appear in redacted
// output.
func (p *Printer) Secret(name string, v *string) *Printer {
	if v == nil {
		return p
	}
	if p.redact {
		return p.field(name, RedactedText)
	}
	return p.field(name, *v)
}

// Int32 writes an optional integer field.
func (p *Printer) Int32(name string, v *int32) *Printer {
	if v == nil {
		return p
	}
	return p.field(name, strconv.FormatInt(int64(*v), 10))
}

// Int64 writes an optional long field.
func (p *Printer) Int64(name string, v *int64) *Printer {
	if v == nil {
		return p
	}
	return p.field(name, strconv.FormatInt(*v, 10))
}

// Float64 writes an optional double field the way the service's other
// clients print doubles: 0.25, 10.0, 1.0E10, 1.5E-4.
func (p *Printer) Float64(name string, v *float64) *Printer {
	if v == nil {
		return p
	}
	return p.field(name, formatDouble(*v))
}

// formatDouble uses plain notation for magnitudes in [1e-3, 1e7) and zero,
// scientific notation with an upper-case E otherwise. The mantissa always
// has a fractional part.
func formatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	if a := math.Abs(v); a == 0 || (a >= 1e-3 && a < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(n)
}

// Bool writes an optional boolean field.
func (p *Printer) Bool(name string, v *bool) *Printer {
	if v == nil {
		return p
	}
	return p.field(name, strconv.FormatBool(*v))
}

// Time writes an optional timestamp field in RFC 3339 form.
func (p *Printer) Time(name string, v *time.Time) *Printer {
	if v == nil {
		return p
	}
	return p.field(name, v.Format(time.RFC3339Nano))
}

// Strings writes an optional list of strings as [a, b].
func (p *Printer) Strings(name string, v []string) *Printer {
	if v == nil {
		return p
	}
	return p.field(name, "["+strings.Join(v, ", ")+"]")
}

func (p *Printer) render(r Renderer) string {
	if p.redact {
		return r.Redacted()
	}
	return r.String()
}

// PrintShape writes an optional nested shape field.
func PrintShape[T any, P interface {
	*T
	Renderer
}](p *Printer, name string, v P) *Printer {
	if v == nil {
		return p
	}
	return p.field(name, p.render(v))
}

// PrintShapes writes an optional list of nested shapes as [{...}, {...}].
// Nil elements print as "null".
func PrintShapes[T any, P interface {
	*T
	Renderer
}](p *Printer, name string, v []P) *Printer {
	if v == nil {
		return p
	}
	parts := make([]string, len(v))
	for i, e := range v {
		if e == nil {
			parts[i] = "null"
			continue
		}
		parts[i] = p.render(e)
	}
	return p.field(name, "["+strings.Join(parts, ", ")+"]")
}
