package nlp

import (
	"reflect"
	"testing"
)

func TestPolarityScorerDirection(t *testing.T) {
	scorer := NewPolarityScorer()

	cases := []struct {
		text string
		sign int
	}{
		{"We delivered strong growth and improved profitability.", 1},
		{"The decline in bookings and ongoing losses were a challenge.", -1},
		{"The company operates in several countries.", 0},
	}
	for _, c := range cases {
		got := scorer.Score(c.text)
		switch {
		case c.sign > 0 && got <= 0:
			t.Errorf("Score(%q) = %v, want positive", c.text, got)
		case c.sign < 0 && got >= 0:
			t.Errorf("Score(%q) = %v, want negative", c.text, got)
		case c.sign == 0 && got != 0:
			t.Errorf("Score(%q) = %v, want 0", c.text, got)
		}
	}
}

func TestPolarityScorerRange(t *testing.T) {
	scorer := NewPolarityScorer()
	texts := []string{
		"strong strong strong growth",
		"loss loss decline weak adverse",
		"growth offset by decline",
	}
	for _, text := range texts {
		got := scorer.Score(text)
		if got < -1 || got > 1 {
			t.Errorf("Score(%q) = %v, outside [-1, 1]", text, got)
		}
	}
}

func TestNumberTokens(t *testing.T) {
	got := NumberTokens("Revenue of $1,234 grew 15% to 9.9 this year")
	want := []string{"$1,234", "15%", "9.9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NumberTokens = %v, want %v", got, want)
	}
}

func TestAnnotateSegmentsSentences(t *testing.T) {
	text := "Revenue grew 15% in the quarter. Costs declined across all segments. The outlook remains stable."
	doc, err := Annotate(text)
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}

	if len(doc.Sentences) != 3 {
		t.Fatalf("got %d sentences, want 3", len(doc.Sentences))
	}
	if doc.Text != text {
		t.Error("document text was not preserved verbatim")
	}
	if got := doc.Sentences[0].Numbers; len(got) != 1 || got[0] != "15%" {
		t.Errorf("first sentence numbers = %v, want [15%%]", got)
	}
	if doc.Sentences[1].Polarity >= 0 {
		t.Errorf("polarity of decline sentence = %v, want negative", doc.Sentences[1].Polarity)
	}
}
