package elc

import (
	"strings"
	"testing"
)

func TestDiagramIdentity(t *testing.T) {
	ctx := NewContext(nil)
	identity := CombinatorI(ctx)

	diagram := ToDiagram(identity)
	unicode := diagram.ToUnicode()

	t.Logf("identity diagram:\n%s", unicode)

	if diagram.Width == 0 || diagram.Height == 0 {
		t.Error("diagram has zero dimensions")
	}
}

func TestDiagramKCombinator(t *testing.T) {
	ctx := NewContext(nil)
	k := CombinatorK(ctx)

	diagram := ToDiagram(k)
	unicode := diagram.ToUnicode()

	t.Logf("K combinator diagram:\n%s", unicode)

	if diagram.Width == 0 || diagram.Height == 0 {
		t.Error("diagram has zero dimensions")
	}
}

func TestDiagramChurchNumeral(t *testing.T) {
	ctx := NewContext(nil)
	two := EncodeInt(ctx, 2)

	diagram := ToDiagram(two)
	unicode := diagram.ToUnicode()

	t.Logf("Church numeral 2 diagram:\n%s", unicode)

	if diagram.Width == 0 || diagram.Height == 0 {
		t.Error("diagram has zero dimensions")
	}
}

func TestDiagramSVGContainsLineElements(t *testing.T) {
	ctx := NewContext(nil)
	k := CombinatorK(ctx)

	svg := ToDiagram(k).ToSVG()

	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("expected SVG output to start with <svg")
	}
	if !strings.Contains(svg, "<line") {
		t.Errorf("expected at least one <line> element in the SVG output")
	}
}
