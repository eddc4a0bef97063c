package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative", "examples/flows.toml", false},
		{"absolute", "/tmp/out.svg", false},
		{"empty", "", true},
		{"control char", "a\x01b", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) code = %v, want %v", tt.path, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateOneOf(t *testing.T) {
	allowed := []string{"start", "middle", "end"}
	if err := ValidateOneOf(ErrCodeInvalidPosition, "label position", "end", allowed); err != nil {
		t.Errorf("ValidateOneOf(end) error = %v", err)
	}
	err := ValidateOneOf(ErrCodeInvalidPosition, "label position", "top", allowed)
	if !Is(err, ErrCodeInvalidPosition) {
		t.Fatalf("ValidateOneOf(top) code = %v, want %v", GetCode(err), ErrCodeInvalidPosition)
	}
	if !strings.Contains(err.Error(), "start, middle, end") {
		t.Errorf("error should list allowed values: %v", err)
	}
}

func TestValidateFormats(t *testing.T) {
	allowed := []string{"svg", "png"}
	if err := ValidateFormats([]string{"svg", "png"}, allowed); err != nil {
		t.Errorf("ValidateFormats(valid) error = %v", err)
	}
	if err := ValidateFormats([]string{"gif"}, allowed); !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormats(gif) = %v, want INVALID_FORMAT", err)
	}
	if err := ValidateFormats(nil, allowed); !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormats(nil) = %v, want INVALID_FORMAT", err)
	}
}

func TestValidateItemPoints(t *testing.T) {
	tests := []struct {
		name    string
		points  [][2]float64
		wantErr bool
	}{
		{"straight", [][2]float64{{0, 0}, {1, 1}}, false},
		{"curved", [][2]float64{{0, 0}, {1, 1}, {0, 1}}, false},
		{"single point", [][2]float64{{0, 0}}, true},
		{"four points", [][2]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, true},
		{"nan", [][2]float64{{0, 0}, {math.NaN(), 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemPoints(3, tt.points)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItemPoints() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProgress(t *testing.T) {
	for _, p := range []float64{0, 0.5, 1} {
		if err := ValidateProgress(p); err != nil {
			t.Errorf("ValidateProgress(%v) error = %v", p, err)
		}
	}
	for _, p := range []float64{-0.1, 1.5, math.NaN()} {
		if err := ValidateProgress(p); err == nil {
			t.Errorf("ValidateProgress(%v) should fail", p)
		}
	}
}

func TestValidateLabelPosition(t *testing.T) {
	allowed := []string{"start", "middle", "end"}
	for _, pos := range []string{"", "start", "end"} {
		if err := ValidateLabelPosition(pos, allowed); err != nil {
			t.Errorf("ValidateLabelPosition(%q) = %v", pos, err)
		}
	}
	if err := ValidateLabelPosition("left", allowed); !Is(err, ErrCodeInvalidPosition) {
		t.Errorf("ValidateLabelPosition(left) = %v, want INVALID_POSITION", err)
	}
}

func TestValidateSymbolKind(t *testing.T) {
	known := func(k string) bool { return k == "arrow" }
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{"", false},
		{"none", false},
		{"arrow", false},
		{"hexagon", true},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			err := ValidateSymbolKind(tt.kind, known)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSymbolKind(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidSymbol {
				t.Errorf("code = %s, want INVALID_SYMBOL", GetCode(err))
			}
		})
	}
}
