package pacman

import (
	"reflect"
	"testing"
)

func TestParsePackageList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "foo\n", []string{"foo"}},
		{"preserves order", "zsh\nbase\nlinux\n", []string{"zsh", "base", "linux"}},
		{"skips blank lines", "foo\n\nbar\n  \n", []string{"foo", "bar"}},
		{"no trailing newline", "foo\nbar", []string{"foo", "bar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePackageList([]byte(tt.in))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parsePackageList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
