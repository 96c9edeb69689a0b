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

package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"dirpx.dev/smapi/smcore/schema"
)

// ModulePath is the import path prefix of the generated packages.
const ModulePath = "dirpx.dev/smapi/smcore/model"

// Output is one rendered Go source file.
type Output struct {
	Name   string
	Source []byte
}

// Render renders every shape, enum and the package files of f. The result
// is gofmt-formatted and sorted by file name.
func Render(f *File) ([]Output, error) {
	var out []Output
	emit := func(name string, tmpl *template.Template, data any) error {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("gen: render %s: %w", name, err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return fmt.Errorf("gen: format %s: %w\n%s", name, err, buf.Bytes())
		}
		out = append(out, Output{Name: name, Source: src})
		return nil
	}

	if err := emit("doc.go", docTemplate, f); err != nil {
		return nil, err
	}
	if err := emit("schema.go", schemaTemplate, newPackageData(f)); err != nil {
		return nil, err
	}
	for _, e := range f.Enums {
		if err := emit(snake(e.Name)+".go", enumTemplate, newEnumData(f, e)); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Shapes {
		if err := emit(snake(s.Name)+".go", shapeTemplate, newShapeData(f, s)); err != nil {
			return nil, err
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Write renders f into dir/<package>, creating the directory as needed.
// Files that are not generated (tests, hand-written helpers) are left alone.
func Write(f *File, dir string) ([]string, error) {
	outputs, err := Render(f)
	if err != nil {
		return nil, err
	}
	pkgDir := filepath.Join(dir, f.Package)
	if err := os.MkdirAll(pkgDir, 0o755); err != nil {
		return nil, fmt.Errorf("gen: %w", err)
	}
	written := make([]string, 0, len(outputs))
	for _, o := range outputs {
		path := filepath.Join(pkgDir, o.Name)
		if err := os.WriteFile(path, o.Source, 0o644); err != nil {
			return written, fmt.Errorf("gen: %w", err)
		}
		written = append(written, path)
	}
	return written, nil
}

type packageData struct {
	Package string
	Version string
	Vars    []string
}

func newPackageData(f *File) packageData {
	d := packageData{Package: f.Package, Version: f.Version}
	for _, s := range f.Shapes {
		d.Vars = append(d.Vars, lowerFirst(s.Name)+"Schema")
	}
	return d
}

type enumData struct {
	Package string
	Name    string
	Doc     string
	Table   string
	Consts  []enumConstData
}

type enumConstData struct {
	Name  string
	Value string
}

func newEnumData(f *File, e Enum) enumData {
	d := enumData{
		Package: f.Package,
		Name:    e.Name,
		Table:   lowerFirst(e.Name) + "Table",
	}
	doc := e.Doc
	if doc == "" {
		doc = e.Name + " enumerates the accepted " + e.Name + " wire values."
	}
	d.Doc = comment(doc, "")
	for _, v := range e.Values {
		d.Consts = append(d.Consts, enumConstData{Name: enumConst(e.Name, v), Value: strconv.Quote(v)})
	}
	return d
}

type shapeData struct {
	Package string
	Name    string
	Doc     string
	Var     string
	Wire    string
	Imports []string
	Fields  []fieldData
}

type fieldData struct {
	Name  string
	Ident string
	Doc   string

	// Storage is the struct field type; SetType and WithType are the setter
	// parameter types.
	Storage  string
	SetType  string
	WithType string
	WithBody string
	SetBody  string

	// ElemType is set for lists.
	ElemType string

	// EnumType and EnumFrom are set for enum-backed strings.
	EnumType string
	EnumFrom string

	Schema string
	Equal  string
	Hash   string
	Print  string
	Check  string
	Clone  string
}

func newShapeData(f *File, s Shape) shapeData {
	d := shapeData{
		Package: f.Package,
		Name:    s.Name,
		Var:     lowerFirst(s.Name) + "Schema",
		Wire:    lowerFirst(s.Name) + "Wire",
	}
	d.Doc = comment(shapeDoc(s), "")

	imports := map[string]bool{}
	for _, fd := range s.Fields {
		d.Fields = append(d.Fields, newFieldData(f, fd, imports))
	}
	for imp := range imports {
		d.Imports = append(d.Imports, imp)
	}
	sort.Strings(d.Imports)
	return d
}

// shapeDoc returns the type comment of s, deriving one from the operation
// name for undocumented requests and results.
func shapeDoc(s Shape) string {
	if s.Doc != "" {
		return s.Doc
	}
	if op, ok := strings.CutSuffix(s.Name, "Request"); ok {
		return s.Name + " is the input of the " + op + " operation."
	}
	if op, ok := strings.CutSuffix(s.Name, "Result"); ok {
		return s.Name + " is the output of the " + op + " operation."
	}
	return s.Name + " is a nested " + s.Name + " structure."
}

// goRef renders a possibly qualified reference as a Go type expression and
// records the import it needs.
func goRef(f *File, ref string, imports map[string]bool) string {
	pkg, name := qualify(ref)
	if pkg == "" || pkg == f.Package {
		return name
	}
	imports[ModulePath+"/"+pkg] = true
	return pkg + "." + name
}

var scalarTypes = map[schema.Kind]string{
	schema.KindString:    "string",
	schema.KindInteger:   "int32",
	schema.KindLong:      "int64",
	schema.KindDouble:    "float64",
	schema.KindBoolean:   "bool",
	schema.KindTimestamp: "time.Time",
}

var scalarOps = map[schema.Kind]struct{ equal, hash, print, check string }{
	schema.KindString:    {"shape.EqualPtr", "AddString", "Text", "String"},
	schema.KindInteger:   {"shape.EqualPtr", "AddInt32", "Int32", "Int32"},
	schema.KindLong:      {"shape.EqualPtr", "AddInt64", "Int64", "Int64"},
	schema.KindDouble:    {"shape.EqualFloat", "AddFloat64", "Float64", "Float64"},
	schema.KindBoolean:   {"shape.EqualPtr", "AddBool", "Bool", ""},
	schema.KindTimestamp: {"shape.EqualTime", "AddTime", "Time", ""},
}

func newFieldData(f *File, fd Field, imports map[string]bool) fieldData {
	ident := lowerFirst(fd.Name)
	self := "s." + ident
	name := strconv.Quote(fd.Name)

	d := fieldData{
		Name:   fd.Name,
		Ident:  ident,
		Schema: schemaExpr(f, fd, imports),
		Clone:  "c." + ident + " = shape.Copy(" + self + ")",
	}
	if fd.Doc != "" {
		d.Doc = strings.TrimSuffix(comment(fd.Doc, ""), "\n")
	}

	switch {
	case fd.Kind == schema.KindStructure:
		typ := "*" + goRef(f, fd.Shape, imports)
		d.Storage, d.SetType, d.WithType = typ, typ, typ
		d.SetBody = self + " = v"
		d.WithBody = self + " = v"
		d.Equal = "shape.EqualShape(" + self + ", o." + ident + ")"
		d.Hash = "shape.AddShape(h, " + self + ")"
		d.Print = "shape.PrintShape(p, " + name + ", " + self + ")"
		d.Check = "schema.Nested(v, " + name + ", " + self + ")"
		d.Clone = "c." + ident + " = shape.CloneShape(" + self + ")"

	case fd.Kind == schema.KindList && fd.Elem == schema.KindStructure:
		elem := "*" + goRef(f, fd.Shape, imports)
		d.Storage, d.SetType, d.WithType = "[]"+elem, "[]"+elem, "[]"+elem
		d.ElemType = elem
		d.SetBody = self + " = shape.CopySlice(v)"
		d.WithBody = d.SetBody
		d.Equal = "shape.EqualShapes(" + self + ", o." + ident + ")"
		d.Hash = "shape.AddShapes(h, " + self + ")"
		d.Print = "shape.PrintShapes(p, " + name + ", " + self + ")"
		d.Check = "schema.NestedList(v, " + name + ", " + self + ")"
		d.Clone = "c." + ident + " = shape.CloneShapes(" + self + ")"

	case fd.Kind == schema.KindList:
		elem := scalarTypes[fd.Elem]
		d.Storage, d.SetType, d.WithType = "[]"+elem, "[]"+elem, "[]"+elem
		d.ElemType = elem
		d.SetBody = self + " = shape.CopySlice(v)"
		d.WithBody = d.SetBody
		d.Equal = "shape.EqualSlice(" + self + ", o." + ident + ")"
		d.Hash = "h.AddStrings(" + self + ")"
		d.Print = "p.Strings(" + name + ", " + self + ")"
		d.Check = "v.Strings(" + name + ", " + self + ")"
		d.Clone = "c." + ident + " = shape.CopySlice(" + self + ")"

	default:
		typ := scalarTypes[fd.Kind]
		if fd.Kind == schema.KindTimestamp {
			imports["time"] = true
		}
		ops := scalarOps[fd.Kind]
		d.Storage, d.SetType, d.WithType = "*"+typ, "*"+typ, typ
		d.SetBody = self + " = shape.Copy(v)"
		d.WithBody = self + " = &v"
		d.Equal = ops.equal + "(" + self + ", o." + ident + ")"
		d.Hash = "h." + ops.hash + "(" + self + ")"
		d.Print = "p." + ops.print + "(" + name + ", " + self + ")"
		if fd.Sensitive {
			d.Print = "p.Secret(" + name + ", " + self + ")"
		}
		if ops.check != "" {
			d.Check = "v." + ops.check + "(" + name + ", " + self + ")"
		}
		if fd.Enum != "" {
			enumType := goRef(f, fd.Enum, imports)
			d.EnumType = enumType
			d.EnumFrom = enumType + "FromPointer(" + self + ")"
			d.WithType = enumType
			d.WithBody = self + " = shape.String(string(v))"
		}
	}
	return d
}

func intOpt(n *int) string {
	return strconv.Itoa(*n)
}

func floatOpt(v *float64) string {
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// pairOpt renders one bound pair as the combined option when both ends are
// set, or as the single-ended options otherwise.
func pairOpt(both, lo, hi string, l, h string) []string {
	switch {
	case l != "" && h != "":
		return []string{"schema." + both + "(" + l + ", " + h + ")"}
	case l != "":
		return []string{"schema." + lo + "(" + l + ")"}
	case h != "":
		return []string{"schema." + hi + "(" + h + ")"}
	default:
		return nil
	}
}

func schemaExpr(f *File, fd Field, imports map[string]bool) string {
	name := strconv.Quote(fd.Name)

	var opts []string
	var minLen, maxLen, minItems, maxItems, minV, maxV string
	if fd.MinLength != nil {
		minLen = intOpt(fd.MinLength)
	}
	if fd.MaxLength != nil {
		maxLen = intOpt(fd.MaxLength)
	}
	if fd.MinItems != nil {
		minItems = intOpt(fd.MinItems)
	}
	if fd.MaxItems != nil {
		maxItems = intOpt(fd.MaxItems)
	}
	if fd.Min != nil {
		minV = floatOpt(fd.Min)
	}
	if fd.Max != nil {
		maxV = floatOpt(fd.Max)
	}
	opts = append(opts, pairOpt("Length", "MinLength", "MaxLength", minLen, maxLen)...)
	if fd.Pattern != "" {
		opts = append(opts, "schema.Pattern(`"+fd.Pattern+"`)")
	}
	opts = append(opts, pairOpt("Range", "Min", "Max", minV, maxV)...)
	opts = append(opts, pairOpt("Items", "MinItems", "MaxItems", minItems, maxItems)...)
	if fd.Enum != "" {
		enumType := goRef(f, fd.Enum, imports)
		_, bare := qualify(fd.Enum)
		opts = append(opts, "schema.OneOf("+strconv.Quote(bare)+", "+enumType+"Strings()...)")
	} else if len(fd.Values) > 0 {
		quoted := make([]string, len(fd.Values))
		for i, v := range fd.Values {
			quoted[i] = strconv.Quote(v)
		}
		opts = append(opts, "schema.OneOf(\"\", "+strings.Join(quoted, ", ")+")")
	}
	if fd.Sensitive {
		opts = append(opts, "schema.Sensitive()")
	}

	var head string
	switch {
	case fd.Kind == schema.KindStructure:
		head = "schema.Structure(" + name + ", " + strconv.Quote(fd.Shape)
	case fd.Kind == schema.KindList && fd.Elem == schema.KindStructure:
		head = "schema.StructureList(" + name + ", " + strconv.Quote(fd.Shape)
	case fd.Kind == schema.KindList:
		head = "schema.List(" + name + ", schema.Kind" + kindSuffix(fd.Elem)
	default:
		head = "schema." + kindSuffix(fd.Kind) + "(" + name
	}
	for _, o := range opts {
		head += ", " + o
	}
	return head + ")"
}

func kindSuffix(k schema.Kind) string {
	s := string(k)
	return strings.ToUpper(s[:1]) + s[1:]
}
