package utils

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"Hello, World!", []string{"hello", "world"}},
		{"isn't it GREAT?", []string{"isnt", "it", "great"}},
		{"don’t stop", []string{"dont", "stop"}},
		{"v2 update #3", []string{"v2", "update", "3"}},
		{"", nil},
		{"!!! ???", nil},
	}
	for _, tc := range cases {
		got := Tokenize(tc.input)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
