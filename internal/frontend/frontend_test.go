package frontend

import (
	"reflect"
	"testing"
	"testing/fstest"
)

func TestResolve(t *testing.T) {
	fsys := fstest.MapFS{
		"styles/shared-styles.css": {Data: []byte(".toolbar{}")},
		"styles/print/print.css":   {Data: []byte("")},
		"styles/readme.txt":        {Data: []byte("")},
		"theme.css":                {Data: []byte("")},
	}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{"single file", []string{"theme.css"}, []string{"/frontend/theme.css"}},
		{"double star", []string{"styles/**/*.css"}, []string{"/frontend/styles/print/print.css", "/frontend/styles/shared-styles.css"}},
		{"overlapping patterns", []string{"**/*.css", "theme.css"}, []string{
			"/frontend/styles/print/print.css",
			"/frontend/styles/shared-styles.css",
			"/frontend/theme.css",
		}},
		{"no match", []string{"*.scss"}, nil},
		{"no patterns", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(fsys, tt.patterns)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveInvalidPattern(t *testing.T) {
	if _, err := Resolve(fstest.MapFS{}, []string{"styles/[.css"}); err == nil {
		t.Error("expected error for malformed pattern")
	}
}

func TestHref(t *testing.T) {
	if got := Href("styles/./a.css"); got != "/frontend/styles/a.css" {
		t.Errorf("Href = %q", got)
	}
}
