package highlight

import "testing"

func TestPushStringMergesPlainRuns(t *testing.T) {
	var text Text
	text.PushString("a ")
	text.PushString("plain ")
	text.Push(Segment{Text: "int", Kind: PrimitiveType})
	text.PushString(" named ")
	text.PushString("")

	expected := Text{
		{Text: "a plain ", Kind: None},
		{Text: "int", Kind: PrimitiveType},
		{Text: " named ", Kind: None},
	}
	if len(text) != len(expected) {
		t.Fatalf("segment count mismatch. expected=%d, got=%d (%v)", len(expected), len(text), text)
	}
	for i := range expected {
		if text[i] != expected[i] {
			t.Fatalf("segments[%d] mismatch. expected=%+v, got=%+v", i, expected[i], text[i])
		}
	}
}

func TestPushStringDoesNotMergeIntoTagged(t *testing.T) {
	var text Text
	text.Push(Segment{Text: "const", Kind: Qualifier})
	text.PushString(" char")
	if len(text) != 2 {
		t.Fatalf("expected 2 segments, got %d (%v)", len(text), text)
	}
	if text[0].Kind != Qualifier || text[1].Kind != None {
		t.Fatalf("unexpected kinds: %v", text)
	}
}

func TestString(t *testing.T) {
	text := Text{
		{Text: "a ", Kind: None},
		{Text: "pointer", Kind: QuasiKeyword},
		{Text: " to an ", Kind: None},
		{Text: "int", Kind: PrimitiveType},
	}
	if got := text.String(); got != "a pointer to an int" {
		t.Fatalf("wrong rendering. got=%q", got)
	}
}

func TestCoalesced(t *testing.T) {
	text := Text{
		{Text: "a ", Kind: None},
		{Text: "plain ", Kind: None},
		{Text: "int", Kind: PrimitiveType},
		{Text: "", Kind: None},
		{Text: " x", Kind: None},
	}
	got := text.Coalesced()
	expected := Text{
		{Text: "a plain ", Kind: None},
		{Text: "int", Kind: PrimitiveType},
		{Text: " x", Kind: None},
	}
	if len(got) != len(expected) {
		t.Fatalf("segment count mismatch. expected=%d, got=%d (%v)", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("segments[%d] mismatch. expected=%+v, got=%+v", i, expected[i], got[i])
		}
	}
}
