package gift

import (
	"reflect"
	"testing"
)

// TestSerializeFormat verifies the exact on-disk rendering.
func TestSerializeFormat(t *testing.T) {
	got := Serialize([]Question{{
		Title:   "Q1",
		Body:    "B",
		Choices: []Choice{{Text: "4", Correct: true}, {Text: "3", Correct: false}},
	}})
	want := "::Q1::B{\n=4\n~3\n}"
	if got != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

// TestSerializeJoinsWithBlankLine verifies block separation.
func TestSerializeJoinsWithBlankLine(t *testing.T) {
	got := Serialize([]Question{
		{Title: "A", Body: "a", Choices: []Choice{{Text: "1", Correct: true}}},
		{Title: "B", Body: "b", Choices: []Choice{{Text: "2"}}},
	})
	want := "::A::a{\n=1\n}\n\n::B::b{\n~2\n}"
	if got != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", got, want)
	}
	if Serialize(nil) != "" {
		t.Fatalf("expected empty output for no questions")
	}
}

// TestSerializeRoundTrip verifies parse(serialize(q)) reproduces q, type included.
func TestSerializeRoundTrip(t *testing.T) {
	blocks := []string{
		"::Q1::What is 2+2? {=4 ~3 ~5}",
		"::Q3::True or False: The Earth is flat? {=False ~True}",
		"::TF::Is this false? {=Yes}",
		"::FB::Name the capital of Italy{=Rome}\n{}",
		"::U::Name the capital of Italy{=Rome}",
		"::None::Nothing is right{~a ~b}",
		`::Win::Windows root?{=C:\ ~D:\}`,
	}
	for _, block := range blocks {
		original, err := Parse(block)
		if err != nil {
			t.Fatalf("parse %q: %v", block, err)
		}
		serialized := Serialize([]Question{original})
		split := Split(serialized)
		if len(split) != 1 {
			t.Fatalf("expected one block from %q, got %d", serialized, len(split))
		}
		reparsed, err := Parse(split[0])
		if err != nil {
			t.Fatalf("reparse %q: %v", serialized, err)
		}
		if !reflect.DeepEqual(original, reparsed) {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", reparsed, original)
		}
	}
}

// TestSerializeManyRoundTrip verifies a whole file re-parses in order.
func TestSerializeManyRoundTrip(t *testing.T) {
	questions, skipped := ParseAll("::Q1::A{=x ~y}\n::Q2::B is true{=z}\n::Q3::C{=w}\n{}")
	if skipped != 0 {
		t.Fatalf("unexpected skipped blocks: %d", skipped)
	}
	again, skipped := ParseAll(Serialize(questions))
	if skipped != 0 {
		t.Fatalf("unexpected skipped blocks after round trip: %d", skipped)
	}
	if !reflect.DeepEqual(questions, again) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", again, questions)
	}
}
