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
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const definition = `
version: 1.0.0
package: demo
doc: Package demo is generated by a test.
shapes:
  - name: Widget
    fields:
      - name: Name
        kind: string
        maxLength: 10
`

func writeDefinition(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_Generate(t *testing.T) {
	t.Parallel()

	path := writeDefinition(t, definition)
	outDir := t.TempDir()
	out := &bytes.Buffer{}

	err := run(out, []string{"-out", outDir, "-log-level", "error", filepath.Dir(path)})

	require.NoError(t, err)
	require.Contains(t, out.String(), "generated 3 files in 1 packages")
	require.FileExists(t, filepath.Join(outDir, "demo", "widget.go"))
	require.FileExists(t, filepath.Join(outDir, "demo", "schema.go"))
}

func TestRun_Check(t *testing.T) {
	t.Parallel()

	path := writeDefinition(t, definition)
	outDir := t.TempDir()
	out := &bytes.Buffer{}

	require.NoError(t, run(out, []string{"-check", "-out", outDir, path}))
	require.Contains(t, out.String(), "1 definition files ok")
	require.NoDirExists(t, filepath.Join(outDir, "demo"))
}

func TestRun_InvalidDefinition(t *testing.T) {
	t.Parallel()

	path := writeDefinition(t, definition+"  - name: Widget\n")
	err := run(&bytes.Buffer{}, []string{"-log-level", "error", "-check", path})

	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok, "expected *ExitError, got %T", err)
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, exitErr.Message, "type Widget declared twice")
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")

	err := run(&bytes.Buffer{}, nil)
	require.Error(t, err)
	require.Equal(t, 2, err.(*ExitError).Code)

	err = run(&bytes.Buffer{}, []string{"-log-level", "loud", "x.yaml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log-level")
}

func TestRun_Repository(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-check", "-log-level", "error", filepath.Join("..", "..", "api", "sagemaker")})
	require.NoError(t, err)
	require.Contains(t, out.String(), "5 definition files ok")
}
