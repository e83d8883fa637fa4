package highlight

import "testing"

var formatInput = Text{
	{Text: "a ", Kind: None},
	{Text: "pointer", Kind: QuasiKeyword},
	{Text: " named ", Kind: None},
	{Text: "p", Kind: Ident},
	{Text: " to a ", Kind: None},
	{Text: "const", Kind: Qualifier},
	{Text: " ", Kind: None},
	{Text: "int", Kind: PrimitiveType},
}

func TestPlainFormatter(t *testing.T) {
	got, err := Render(PlainFormatter{}, formatInput)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if got != "a pointer named p to a const int" {
		t.Fatalf("wrong rendering. got=%q", got)
	}
}

func TestANSIFormatter(t *testing.T) {
	got, err := Render(NewANSIFormatter(), formatInput)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	expected := "a \x1b[32mpointer\x1b[0m named \x1b[31mp\x1b[0m to a " +
		"\x1b[36mconst\x1b[0m \x1b[33mint\x1b[0m"
	if got != expected {
		t.Fatalf("wrong rendering. expected=%q, got=%q", expected, got)
	}
}

func TestHTMLFormatter(t *testing.T) {
	got, err := Render(NewHTMLFormatter(), formatInput)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	expected := `a <span class="quasi-keyword">pointer</span> named ` +
		`<span class="identifier">p</span> to a ` +
		`<span class="qualifier">const</span> <span class="primitive-type">int</span>`
	if got != expected {
		t.Fatalf("wrong rendering. expected=%q, got=%q", expected, got)
	}
}

func TestHTMLFormatterEscapes(t *testing.T) {
	text := Text{
		{Text: "<b> & ", Kind: None},
		{Text: "x<y", Kind: Ident},
	}
	got, err := Render(NewHTMLFormatter(), text)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	expected := `&lt;b&gt; &amp; <span class="identifier">x&lt;y</span>`
	if got != expected {
		t.Fatalf("wrong rendering. expected=%q, got=%q", expected, got)
	}
}

func TestHTMLFormatterEmptyClassUnwrapped(t *testing.T) {
	f := HTMLFormatter{Classes: ClassMap{Ident: "identifier"}}
	text := Text{
		{Text: "const", Kind: Qualifier},
		{Text: " ", Kind: None},
		{Text: "p", Kind: Ident},
	}
	got, err := Render(f, text)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	expected := `const <span class="identifier">p</span>`
	if got != expected {
		t.Fatalf("wrong rendering. expected=%q, got=%q", expected, got)
	}
}
