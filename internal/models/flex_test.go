package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFlexibleStrings_Decoding(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want FlexibleStrings
	}{
		{"array", `["Web Development", " Cloud Computing "]`, FlexibleStrings{"Web Development", "Cloud Computing"}},
		{"single string", `"Web Development"`, FlexibleStrings{"Web Development"}},
		{"null", `null`, FlexibleStrings{}},
		{"number", `42`, FlexibleStrings{}},
		{"object", `{"a":1}`, FlexibleStrings{}},
		{"blank entries dropped", `["", "  ", "IoT"]`, FlexibleStrings{"IoT"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got FlexibleStrings
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
