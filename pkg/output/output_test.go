package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nullsign/nullsign/pkg/errors"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist", "icons")
	payloads := Payloads{
		"nullsign-outline.svg": []byte("<svg/>"),
		"README.md":            []byte("# assets"),
	}

	n, err := WriteFiles(dir, payloads)
	if err != nil {
		t.Fatalf("WriteFiles error: %v", err)
	}
	if n != 2 {
		t.Errorf("wrote %d files, want 2", n)
	}

	data, err := os.ReadFile(filepath.Join(dir, "nullsign-outline.svg"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("file content = %q", data)
	}
}

func TestWriteFilesEmptySet(t *testing.T) {
	n, err := WriteFiles(t.TempDir(), Payloads{})
	if err != nil {
		t.Fatalf("WriteFiles error: %v", err)
	}
	if n != 0 {
		t.Errorf("wrote %d files, want 0", n)
	}
}

func TestWriteFilesRejectsUnsafeNames(t *testing.T) {
	for _, name := range []string{"../escape.svg", "a/b.svg", ""} {
		_, err := WriteFiles(t.TempDir(), Payloads{name: []byte("x")})
		if err == nil {
			t.Errorf("name %q should be rejected", name)
		}
		if !errors.Is(err, errors.ErrCodeInvalidPath) {
			t.Errorf("name %q: code = %q, want INVALID_PATH", name, errors.GetCode(err))
		}
	}
}

func TestWriteFilesRejectsEmptyDir(t *testing.T) {
	if _, err := WriteFiles("", Payloads{"a.svg": []byte("x")}); err == nil {
		t.Error("empty destination should be rejected")
	}
}

func TestPayloadsNamesSorted(t *testing.T) {
	p := Payloads{"c.svg": nil, "a.svg": nil, "b.svg": nil}
	names := p.Names()
	want := []string{"a.svg", "b.svg", "c.svg"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}
