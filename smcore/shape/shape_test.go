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

package shape_test

import (
	"math"
	"testing"
	"time"

	"dirpx.dev/smapi/smcore/shape"
	"github.com/google/go-cmp/cmp"
)

// pair is a minimal two-field shape used to exercise the generic helpers.
type pair struct {
	key   *string
	value *string
}

func (p *pair) Equal(other any) bool {
	o, ok := other.(*pair)
	if !ok || o == nil {
		return false
	}
	return shape.EqualPtr(p.key, o.key) && shape.EqualPtr(p.value, o.value)
}

func (p *pair) HashCode() int32 {
	return shape.NewHash().AddString(p.key).AddString(p.value).Sum()
}

func (p *pair) String() string {
	return shape.NewPrinter(false).Text("Key", p.key).Secret("Value", p.value).String()
}

func (p *pair) Redacted() string {
	return shape.NewPrinter(true).Text("Key", p.key).Secret("Value", p.value).String()
}

func (p *pair) Clone() *pair {
	return &pair{key: shape.Copy(p.key), value: shape.Copy(p.value)}
}

func TestCopySlice(t *testing.T) {
	if got := shape.CopySlice[string](nil); got != nil {
		t.Errorf("CopySlice(nil) = %v, want nil", got)
	}

	empty := shape.CopySlice([]string{})
	if empty == nil || len(empty) != 0 {
		t.Errorf("CopySlice([]) = %#v, want empty non-nil slice", empty)
	}

	src := []string{"a", "b"}
	got := shape.CopySlice(src)
	src[0] = "mutated"
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("CopySlice aliased caller storage (-want +got):\n%s", diff)
	}
}

func TestAppendSlice(t *testing.T) {
	tests := []struct {
		name   string
		start  []string
		values []string
		want   []string
	}{
		{"unset list is initialised", nil, []string{"a"}, []string{"a"}},
		{"unset list with no values becomes empty", nil, nil, []string{}},
		{"existing entries are kept", []string{"a"}, []string{"b", "c"}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shape.AppendSlice(tt.start, tt.values...)
			if got == nil {
				t.Fatal("AppendSlice returned nil")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AppendSlice mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCopyAndValue(t *testing.T) {
	if shape.Copy[int32](nil) != nil {
		t.Error("Copy(nil) != nil")
	}
	src := shape.Int32(7)
	dst := shape.Copy(src)
	if dst == src {
		t.Error("Copy returned the same pointer")
	}
	*src = 8
	if *dst != 7 {
		t.Errorf("Copy aliased source, got %d", *dst)
	}
	if got := shape.Value[string](nil); got != "" {
		t.Errorf("Value(nil) = %q, want empty", got)
	}
	if got := shape.Value(shape.String("x")); got != "x" {
		t.Errorf("Value = %q, want x", got)
	}
}

func TestEqualHelpers(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	sameInstant := now.In(time.FixedZone("CET", 3600))

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"both unset", shape.EqualPtr[string](nil, nil), true},
		{"unset vs set", shape.EqualPtr(nil, shape.String("")), false},
		{"set vs unset", shape.EqualPtr(shape.String(""), nil), false},
		{"equal strings", shape.EqualPtr(shape.String("a"), shape.String("a")), true},
		{"different strings", shape.EqualPtr(shape.String("a"), shape.String("b")), false},
		{"times same instant", shape.EqualTime(&now, &sameInstant), true},
		{"float zero signs differ", shape.EqualFloat(shape.Float64(0), shape.Float64(math.Copysign(0, -1))), false},
		{"float NaN equals NaN", shape.EqualFloat(shape.Float64(math.NaN()), shape.Float64(math.NaN())), true},
		{"nil vs empty list", shape.EqualSlice(nil, []string{}), false},
		{"empty lists", shape.EqualSlice([]string{}, []string{}), true},
		{"same lists", shape.EqualSlice([]string{"a", "b"}, []string{"a", "b"}), true},
		{"order matters", shape.EqualSlice([]string{"a", "b"}, []string{"b", "a"}), false},
		{"nested unset", shape.EqualShape[pair](nil, nil), true},
		{"nested unset vs set", shape.EqualShape(nil, &pair{}), false},
		{"nested equal", shape.EqualShape(&pair{key: shape.String("k")}, &pair{key: shape.String("k")}), true},
		{"nested lists", shape.EqualShapes([]*pair{{key: shape.String("k")}, nil}, []*pair{{key: shape.String("k")}, nil}), true},
		{"nested lists nil element", shape.EqualShapes([]*pair{nil}, []*pair{{}}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestJVMCompatibleHashes(t *testing.T) {
	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"empty string", shape.StringHash(""), 0},
		{"ascii string", shape.StringHash("hello"), 99162322},
		{"single char", shape.StringHash("a"), 97},
		{"long low bits", shape.Int64Hash(42), 42},
		{"long high bits", shape.Int64Hash(1 << 32), 1},
		{"long minus one", shape.Int64Hash(-1), 0},
		{"true", shape.BoolHash(true), 1231},
		{"false", shape.BoolHash(false), 1237},
		{"double one", shape.Float64Hash(1.0), 1072693248},
		{"epoch", shape.TimeHash(time.Unix(0, 0)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestHash_Fold(t *testing.T) {
	// 31*(31*1 + 0) + 0 for two unset fields.
	if got := shape.NewHash().AddString(nil).AddString(nil).Sum(); got != 961 {
		t.Errorf("two unset fields = %d, want 961", got)
	}

	// 31*1 + hash("a") = 128
	if got := shape.NewHash().AddString(shape.String("a")).Sum(); got != 128 {
		t.Errorf("one field = %d, want 128", got)
	}

	// List fold: 31*(31*1+97)+98 = 4066, then 31*1 + 4066.
	if got := shape.NewHash().AddStrings([]string{"a", "b"}).Sum(); got != 31+4066 {
		t.Errorf("list field = %d, want %d", got, 31+4066)
	}

	// An empty list hashes as 1, an unset one as 0.
	if got := shape.NewHash().AddStrings([]string{}).Sum(); got != 32 {
		t.Errorf("empty list = %d, want 32", got)
	}
}

func TestHash_ShapeHelpers(t *testing.T) {
	a := &pair{key: shape.String("k"), value: shape.String("v")}
	b := a.Clone()

	ha := shape.AddShape(shape.NewHash(), a).Sum()
	hb := shape.AddShape(shape.NewHash(), b).Sum()
	if ha != hb {
		t.Errorf("equal nested shapes hash differently: %d vs %d", ha, hb)
	}

	if got := shape.AddShape[pair](shape.NewHash(), nil).Sum(); got != 31 {
		t.Errorf("unset nested shape = %d, want 31", got)
	}

	la := shape.AddShapes(shape.NewHash(), []*pair{a, nil}).Sum()
	lb := shape.AddShapes(shape.NewHash(), []*pair{b, nil}).Sum()
	if la != lb {
		t.Errorf("equal nested lists hash differently: %d vs %d", la, lb)
	}
}

func TestPrinter(t *testing.T) {
	when := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	nested := &pair{key: shape.String("k"), value: shape.String("secret")}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			"empty",
			shape.NewPrinter(false).String(),
			"{}",
		},
		{
			"unset fields are skipped",
			shape.NewPrinter(false).Text("A", nil).Text("B", shape.String("b")).Int32("C", nil).String(),
			"{B: b}",
		},
		{
			"scalars",
			shape.NewPrinter(false).
				Text("S", shape.String("x")).
				Int32("I", shape.Int32(3)).
				Int64("L", shape.Int64(-4)).
				Float64("D", shape.Float64(1.5)).
				Bool("B", shape.Bool(true)).
				Time("T", &when).
				String(),
			"{S: x,I: 3,L: -4,D: 1.5,B: true,T: 2025-01-15T10:30:00Z}",
		},
		{
			"doubles",
			shape.NewPrinter(false).
				Float64("Whole", shape.Float64(10)).
				Float64("Zero", shape.Float64(0)).
				Float64("Small", shape.Float64(0.001)).
				Float64("Tiny", shape.Float64(0.00015)).
				Float64("Large", shape.Float64(1e10)).
				Float64("Limit", shape.Float64(-1e7)).
				Float64("NaN", shape.Float64(math.NaN())).
				Float64("Inf", shape.Float64(math.Inf(-1))).
				String(),
			"{Whole: 10.0,Zero: 0.0,Small: 0.001,Tiny: 1.5E-4,Large: 1.0E10,Limit: -1.0E7,NaN: NaN,Inf: -Infinity}",
		},
		{
			"lists",
			shape.NewPrinter(false).Strings("Empty", []string{}).Strings("Items", []string{"a", "b"}).String(),
			"{Empty: [],Items: [a, b]}",
		},
		{
			"nested",
			shape.PrintShapes(shape.PrintShape(shape.NewPrinter(false), "One", nested), "Many", []*pair{nested, nil}).String(),
			"{One: {Key: k,Value: secret},Many: [{Key: k,Value: secret}, null]}",
		},
		{
			"redacted",
			shape.PrintShape(shape.NewPrinter(true).Secret("Token", shape.String("t")), "One", nested).String(),
			"{Token: [REDACTED],One: {Key: k,Value: [REDACTED]}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestCloneShapes(t *testing.T) {
	if shape.CloneShapes[pair](nil) != nil {
		t.Error("CloneShapes(nil) != nil")
	}
	src := []*pair{{key: shape.String("k")}, nil}
	got := shape.CloneShapes(src)
	if got[0] == src[0] {
		t.Error("CloneShapes kept element pointer")
	}
	if got[1] != nil {
		t.Error("CloneShapes did not keep nil element")
	}
	if !shape.EqualShapes(src, got) {
		t.Error("clone differs from source")
	}
}
