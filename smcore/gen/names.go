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
	"go/token"
	"strings"
	"unicode"
)

// lowerFirst turns an exported name into the matching unexported one:
// "S3Uri" becomes "s3Uri", "USD" becomes "usd".
func lowerFirst(name string) string {
	r := []rune(name)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	switch {
	case n == 0:
	case n == 1 || n == len(r):
		for i := 0; i < n; i++ {
			r[i] = unicode.ToLower(r[i])
		}
	default:
		// Keep the last capital of a leading acronym: "KMSKey" is "kmsKey".
		for i := 0; i < n-1; i++ {
			r[i] = unicode.ToLower(r[i])
		}
	}
	out := string(r)
	if token.IsKeyword(out) {
		out += "_"
	}
	return out
}

// snake turns a shape name into a file name stem:
// "DescribeNotebookInstanceRequest" becomes "describe_notebook_instance_request".
func snake(name string) string {
	r := []rune(name)
	var b strings.Builder
	for i, c := range r {
		if i > 0 && unicode.IsUpper(c) {
			prev := r[i-1]
			nextLower := i+1 < len(r) && unicode.IsLower(r[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(c))
	}
	return b.String()
}

// enumConst names the constant for one enum value: the type name followed by
// the value's alphanumeric runs, each capitalised. "ml.t2.medium" of
// InstanceType is InstanceTypeMlT2Medium.
func enumConst(typ, value string) string {
	var b strings.Builder
	b.WriteString(typ)
	upper := true
	for _, c := range value {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			upper = true
			continue
		}
		if upper {
			c = unicode.ToUpper(c)
			upper = false
		}
		b.WriteRune(c)
	}
	return b.String()
}

// qualify splits a possibly qualified reference into its package and name.
// The package is empty for local references.
func qualify(ref string) (pkg, name string) {
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return "", ref
}

// comment renders text as a // comment block wrapped at about 77 columns.
func comment(text, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	line := indent + "//"
	for _, w := range words {
		if len(line)+1+len(w) > 77 && line != indent+"//" {
			b.WriteString(line)
			b.WriteByte('\n')
			line = indent + "//"
		}
		line += " " + w
	}
	b.WriteString(line)
	b.WriteByte('\n')
	return b.String()
}
