package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestRunValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "site", "good.yaml")
	bad := filepath.Join(dir, "site", "nested", "bad.yaml")
	writeFile(t, good, "site:\n  title: Good\n")
	writeFile(t, bad, "site:\n  subtitle: no title\nresearch:\n  chart:\n    - name: a\n      value: 120\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	var out bytes.Buffer
	err := runValidate(&out, []string{filepath.Join(dir, "**", "*.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 content files are invalid")

	report := out.String()
	assert.Contains(t, report, "ok   "+good)
	assert.Contains(t, report, "FAIL "+bad)
	assert.Contains(t, report, "site.title: field is required")
	assert.Contains(t, report, "research.chart[0].value")
	assert.NotContains(t, report, "notes.txt")
}

func TestRunValidate_AllValid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.yaml")
	writeFile(t, path, "site:\n  title: A\n")

	var out bytes.Buffer
	require.NoError(t, runValidate(&out, []string{path, filepath.Join(dir, "*.yaml")}))
	assert.Equal(t, "ok   "+path+"\n", out.String())
}

func TestRunValidate_NoMatches(t *testing.T) {
	var out bytes.Buffer
	err := runValidate(&out, []string{filepath.Join(t.TempDir(), "**", "*.yaml")})
	assert.EqualError(t, err, "no content files matched")
}

func TestRunValidate_BadPattern(t *testing.T) {
	var out bytes.Buffer
	err := runValidate(&out, []string{"[unclosed"})
	assert.ErrorContains(t, err, "invalid glob")
}

func TestRunRender(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var out bytes.Buffer
	require.NoError(t, runRender(context.Background(), &out, renderOptions{page: "guidelines"}, now))
	html := out.String()
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `data-page="guidelines"`)
	assert.Contains(t, html, "Question 1 of 3")
	assert.Contains(t, html, "2026")

	out.Reset()
	require.NoError(t, runRender(context.Background(), &out, renderOptions{page: "nowhere"}, now))
	assert.Contains(t, out.String(), `data-page="home"`)
}

func TestRunRender_CustomContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeFile(t, path, "site:\n  title: Preview Title\n")

	var out bytes.Buffer
	require.NoError(t, runRender(context.Background(), &out, renderOptions{page: "Home", contentPath: path}, time.Now()))
	assert.Contains(t, out.String(), "Preview Title")

	err := runRender(context.Background(), &out, renderOptions{contentPath: filepath.Join(t.TempDir(), "missing.yaml")}, time.Now())
	assert.ErrorContains(t, err, "read content file")
}
