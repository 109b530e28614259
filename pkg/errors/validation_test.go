package errors

import (
	"strings"
	"testing"
)

func TestValidateOutputName(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{"valid svg name", "nullsign-outline.svg", false},
		{"valid readme", "README.md", false},
		{"empty", "", true},
		{"slash", "a/b.svg", true},
		{"backslash", `a\b.svg`, true},
		{"traversal", "..svg", true},
		{"null byte", "a\x00b", true},
		{"control char", "a\nb", true},
		{"too long", strings.Repeat("x", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputName(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputName(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputName(%q) code = %q, want INVALID_PATH", tt.arg, GetCode(err))
			}
		})
	}
}

func TestValidateManifestFilename(t *testing.T) {
	if err := ValidateManifestFilename("jobs/icons.toml"); err != nil {
		t.Errorf("paths with directories should be allowed: %v", err)
	}
	if err := ValidateManifestFilename(""); err == nil {
		t.Error("empty manifest path should fail")
	}
	if err := ValidateManifestFilename("a\x00b"); err == nil {
		t.Error("null byte should fail")
	}
}

func TestValidateDestDir(t *testing.T) {
	if err := ValidateDestDir("dist/icons"); err != nil {
		t.Errorf("valid dir rejected: %v", err)
	}
	if err := ValidateDestDir(""); err == nil {
		t.Error("empty dir should fail")
	}
}
