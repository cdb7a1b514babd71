package httpx

import "testing"

func TestIDFromPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		prefix string
		wantID int64
		wantOK bool
	}{
		{"valid id", "/books/42", "/books/", 42, true},
		{"valid large id", "/books/9007199254740993", "/books/", 9007199254740993, true},
		{"missing id", "/books/", "/books/", 0, false},
		{"non-numeric id", "/books/abc", "/books/", 0, false},
		{"trailing segment", "/books/42/extra", "/books/", 0, false},
		{"wrong prefix", "/authors/42", "/books/", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := IDFromPath(tt.path, tt.prefix)
			if ok != tt.wantOK {
				t.Fatalf("IDFromPath(%q, %q) ok = %v, want %v", tt.path, tt.prefix, ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("IDFromPath(%q, %q) id = %d, want %d", tt.path, tt.prefix, id, tt.wantID)
			}
		})
	}
}

func TestIDFromSubPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		wantID int64
		wantOK bool
	}{
		{"valid", "/loans/7/return", 7, true},
		{"missing id", "/loans//return", 0, false},
		{"non-numeric id", "/loans/x/return", 0, false},
		{"missing suffix", "/loans/7", 0, false},
		{"extra segment", "/loans/7/other/return", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := IDFromSubPath(tt.path, "/loans/", "/return")
			if ok != tt.wantOK {
				t.Fatalf("IDFromSubPath(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("IDFromSubPath(%q) id = %d, want %d", tt.path, id, tt.wantID)
			}
		})
	}
}
