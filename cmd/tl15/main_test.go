package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "test.orig")
	data := bytes.Repeat([]byte("it was the best of times, it was the worst of times; "), 200)
	if err := os.WriteFile(plain, data, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	type testRow struct {
		name string
		args []string
	}

	testData := [...]testRow{
		{"lzw", []string{"-ls", "16"}},
		{"lzw-reset", []string{"-ls", "9", "-lr", "30", "-lm", "50"}},
		{"huffman", []string{"-a", "huffman"}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			compressed := filepath.Join(dir, row.name+".c")
			decompressed := filepath.Join(dir, row.name+".d")

			var log strings.Builder
			args := append([]string{"-i", plain, "-o", compressed}, row.args...)
			if code := run(args, &log); code != 0 {
				t.Fatalf("compress exited with %d:\n%s", code, log.String())
			}
			if !strings.Contains(log.String(), "[INFO] took ") {
				t.Errorf("missing timing line:\n%s", log.String())
			}

			if code := run([]string{"-q", "-d", "-i", compressed, "-o", decompressed}, &log); code != 0 {
				t.Fatalf("decompress exited with %d:\n%s", code, log.String())
			}

			actual, err := os.ReadFile(decompressed)
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if !bytes.Equal(data, actual) {
				t.Errorf("round trip mismatch: %d bytes in, %d bytes out", len(data), len(actual))
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage")
	if err := os.WriteFile(garbage, []byte("not a compressed file"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	output := filepath.Join(dir, "out")

	type testRow struct {
		name   string
		args   []string
		expect int
	}

	testData := [...]testRow{
		{"missing-output", []string{"-i", garbage}, 2},
		{"bad-algorithm", []string{"-a", "zip", "-i", garbage, "-o", output}, 2},
		{"bad-width", []string{"-ls", "40", "-i", garbage, "-o", output}, 2},
		{"bad-percent", []string{"-lr", "101", "-i", garbage, "-o", output}, 2},
		{"bad-magic", []string{"-d", "-i", garbage, "-o", output}, 1},
		{"no-input", []string{"-i", filepath.Join(dir, "missing"), "-o", output}, 1},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var log strings.Builder
			if code := run(row.args, &log); code != row.expect {
				t.Errorf("expected exit code %d, got %d:\n%s", row.expect, code, log.String())
			}
			if _, err := os.Stat(output); !os.IsNotExist(err) {
				t.Errorf("output file left behind")
			}
		})
	}
}
