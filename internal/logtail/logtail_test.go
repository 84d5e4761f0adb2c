package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func makeLines(count, width int) []string {
	lines := make([]string, count)
	for i := range lines {
		prefix := fmt.Sprintf("Line %d ", i+1)
		lines[i] = prefix + strings.Repeat("x", max(width-len(prefix)-1, 0)) + "\n"
	}
	return lines
}

func TestTailOffset(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		n     int
		want  int // number of trailing lines expected
	}{
		{name: "zero is a no-op", lines: makeLines(10, 20), n: 0, want: 0},
		{name: "negative is a no-op", lines: makeLines(10, 20), n: -3, want: 0},
		{name: "partial", lines: makeLines(10, 20), n: 5, want: 5},
		{name: "exactly all", lines: makeLines(10, 20), n: 10, want: 10},
		{name: "more than exists", lines: makeLines(10, 20), n: 20, want: 10},
		{name: "single line", lines: makeLines(1, 20), n: 1, want: 1},
		{name: "spans several blocks", lines: makeLines(500, 100), n: 120, want: 120},
		{name: "newlines on block edges", lines: makeLines(256, 64), n: 65, want: 65},
		{name: "whole multi-block file", lines: makeLines(300, 64), n: 1000, want: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(strings.Join(tt.lines, ""))
			size := int64(len(data))
			got, err := TailOffset(bytes.NewReader(data), size, tt.n)
			if err != nil {
				t.Fatalf("TailOffset() error = %v", err)
			}
			want := strings.Join(tt.lines[len(tt.lines)-tt.want:], "")
			if string(data[got:]) != want {
				t.Errorf("TailOffset() = %d, tail %d bytes, want %d bytes", got, size-got, len(want))
			}
		})
	}
}

func TestTailOffset_UnterminatedLastLine(t *testing.T) {
	data := []byte("a\nb\nc")
	off, err := TailOffset(bytes.NewReader(data), int64(len(data)), 2)
	if err != nil {
		t.Fatalf("TailOffset() error = %v", err)
	}
	if got := string(data[off:]); got != "b\nc" {
		t.Fatalf("tail = %q, want %q", got, "b\nc")
	}
}

func TestTailOffset_EmptyAndBlankLines(t *testing.T) {
	if off, _ := TailOffset(bytes.NewReader(nil), 0, 3); off != 0 {
		t.Fatalf("TailOffset(empty) = %d, want 0", off)
	}
	data := []byte("\n\n\n")
	off, err := TailOffset(bytes.NewReader(data), int64(len(data)), 2)
	if err != nil {
		t.Fatalf("TailOffset() error = %v", err)
	}
	if off != 1 {
		t.Fatalf("TailOffset(blank lines) = %d, want 1", off)
	}
}

func TestTail(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d\n", i)
		content.WriteString(line)
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		n        int
		expected []string
	}{
		{name: "none (0)", n: 0, expected: nil},
		{name: "none (negative)", n: -1, expected: nil},
		{name: "partial (5)", n: 5, expected: expectedAll[5:]},
		{name: "exactly all (10)", n: 10, expected: expectedAll},
		{name: "more than exists (20)", n: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			err := Tail(logPath, Options{TailLines: tt.n}, func(line []byte) {
				got = append(got, string(line))
			})
			if err != nil {
				t.Fatalf("Tail() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tail() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTail_EmitsUnterminatedLastLine(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "partial.log")
	if err := os.WriteFile(logPath, []byte("one\ntwo\nthree"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	var got []string
	if err := Tail(logPath, Options{TailLines: 2}, func(line []byte) { got = append(got, string(line)) }); err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if want := []string{"two\n", "three"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Tail() = %q, want %q", got, want)
	}
}

func TestTail_MissingFile(t *testing.T) {
	err := Tail(filepath.Join(t.TempDir(), "nope.log"), Options{TailLines: 1}, func([]byte) {})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Tail() error = %v, want not-exist", err)
	}
}

func TestLineReader_SplitsOversizedLines(t *testing.T) {
	long := strings.Repeat("a", 40)
	exact := strings.Repeat("b", 16)
	src := strings.NewReader(long + "\n" + exact + "\n" + "short\n" + "tail")

	lr := newLineReader(src, 0, 16)
	var got []string
	for {
		line, err := lr.next()
		if err != nil {
			break
		}
		got = append(got, string(line))
	}
	want := []string{
		strings.Repeat("a", 16),
		strings.Repeat("a", 16),
		strings.Repeat("a", 8) + "\n",
		exact,
		"\n",
		"short\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	if rest := string(lr.flush()); rest != "tail" {
		t.Fatalf("flush() = %q, want %q", rest, "tail")
	}
	if lr.offset != int64(len(long)+1+len(exact)+1+len("short\n")+len("tail")) {
		t.Fatalf("offset = %d after reading everything", lr.offset)
	}
}
