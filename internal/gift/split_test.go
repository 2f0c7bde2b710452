package gift

import (
	"reflect"
	"testing"
)

// TestSplit verifies block boundaries for the supported input shapes.
func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "whitespace", raw: "\n  \n", want: nil},
		{
			name: "one per line",
			raw:  "\n::Q1::What is 2+2? {=4 ~3 ~5}\n::Q2::Which is a fruit? {=Apple ~Carrot ~Potato}\n   ",
			want: []string{
				"::Q1::What is 2+2? {=4 ~3 ~5}",
				"::Q2::Which is a fruit? {=Apple ~Carrot ~Potato}",
			},
		},
		{
			name: "multi line with blank separator",
			raw:  "::Q1::A{\n  =x\n  ~y\n}\n\n::Q2::B{\n=z\n}\n",
			want: []string{"::Q1::A{\n=x\n~y\n}", "::Q2::B{\n=z\n}"},
		},
		{
			name: "leading text dropped",
			raw:  "// comment\nintro\n::Q1::A{=x}",
			want: []string{"::Q1::A{=x}"},
		},
		{
			name: "windows newlines",
			raw:  "::Q1::A{\r\n=x\r\n}\r\n::Q2::B{=y}\r\n",
			want: []string{"::Q1::A{\n=x\n}", "::Q2::B{=y}"},
		},
		{
			name: "title only",
			raw:  "::Lonely::\n::Q2::B{=y}",
			want: []string{"::Lonely::", "::Q2::B{=y}"},
		},
		{
			name: "several on one line",
			raw:  "::Q1::A{=x ~y} ::Q2::B{=z}",
			want: []string{"::Q1::A{=x ~y}", "::Q2::B{=z}"},
		},
		{
			name: "header marker inside open section",
			raw:  "::Q1::A{=x ::y}",
			want: []string{"::Q1::A{=x ::y}"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(tc.raw)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected blocks:\n got %q\nwant %q", got, tc.want)
			}
		})
	}
}

// TestSplitRestartable verifies repeated calls yield the same blocks.
func TestSplitRestartable(t *testing.T) {
	raw := "::Q1::A{=x}\n::Q2::B{=y}"
	first := Split(raw)
	second := Split(raw)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("split is not deterministic: %q vs %q", first, second)
	}
}
