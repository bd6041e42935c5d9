package lang

import (
	"strings"
	"testing"
)

// TestCheckFullProgram runs a multi-line program exercising every statement
// form through the whole pipeline.
func TestCheckFullProgram(t *testing.T) {
	src := strings.Join([]string{
		"read n;",
		"sum = 0;",
		"if (n > 0)",
		"  sum = sum + n;",
		"  write sum;",
		"endif;",
		"write sum - 1;",
		"$$",
	}, "\n")

	got := Check(src)
	if !strings.HasPrefix(got, "Accept:(program ") {
		t.Fatalf("Check = %q, want an accepted program", got)
	}
	for _, sub := range []string{
		"(stmt read (id n) ;)",
		"(stmt (id sum) = (expr (num (numsign) 0) (etail)) ;)",
		"(compare >)",
		"(stmt write (expr (id sum) (etail)) ;)",
		"(etail - (expr (num (numsign) 1) (etail)))",
	} {
		if !strings.Contains(got, sub) {
			t.Errorf("Check result missing %q\nresult: %s", sub, got)
		}
	}
}

// TestCheckIdempotent verifies that re-running a parse on the same text
// yields an identical result string; no state leaks across invocations.
func TestCheckIdempotent(t *testing.T) {
	inputs := []string{
		"x=5;$$",
		"read x write y;$$",
		"x=5#;$$",
		"",
	}
	for _, input := range inputs {
		first := Check(input)
		for i := 0; i < 3; i++ {
			if got := Check(input); got != first {
				t.Errorf("Check(%q) run %d = %q, first run = %q", input, i+2, got, first)
			}
		}
	}
}

// TestScanningErrorPrecedence verifies that a bad character anywhere in the
// input wins over any syntax problem: tokenization is never attempted.
func TestScanningErrorPrecedence(t *testing.T) {
	// Line 1 would already fail the grammar, but line 2 holds an invalid
	// character, and scanning the whole input comes first.
	got := Check("write ;\n#\n$$")
	want := "Scanning error at line 2: Invalid character '#'"
	if got != want {
		t.Errorf("Check = %q, want %q", got, want)
	}
}

// TestParseErrorsReturnNoTree verifies that no partial tree accompanies an
// error.
func TestParseErrorsReturnNoTree(t *testing.T) {
	prog, err := Parse("x=5")
	if err == nil {
		t.Fatal("expected error")
	}
	if prog != nil {
		t.Errorf("Parse returned partial tree %v alongside error", TreeString(prog))
	}
}

// TestParseKeywordsNeverIdentifiers verifies every keyword is rejected in
// identifier position.
func TestParseKeywordsNeverIdentifiers(t *testing.T) {
	for _, kw := range []string{"if", "endif", "read", "write"} {
		input := "read " + kw + ";$$"
		_, err := Parse(input)
		serr, ok := err.(*SyntaxError)
		if !ok {
			t.Errorf("Parse(%q) error = %T, want *SyntaxError", input, err)
			continue
		}
		if serr.Expected != "an identifier" || serr.Found != kw {
			t.Errorf("Parse(%q) = expected %q / found %q, want an identifier / %q",
				input, serr.Expected, serr.Found, kw)
		}
	}
}
