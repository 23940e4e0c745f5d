package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-tlox/lexer"
)

func TestParseSnapshotClassHierarchy(t *testing.T) {
	src := `
class Shape {
  Shape(name) { this.name = name; }
  describe() { return this.name; }
}
class Circle < Shape {
  Circle(name, radius) { super.Shape(name); this.radius = radius; }
  area() { return 3.14159 * this.radius * this.radius; }
}
print Circle("c1", 2).describe();
`
	stmts, errs := Parse(lexer.Tokenize(src))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	var dump strings.Builder
	for _, s := range stmts {
		fmt.Fprintf(&dump, "%#v\n", s)
	}
	snaps.MatchSnapshot(t, dump.String())
}

func TestParseSnapshotLoopsAndCollections(t *testing.T) {
	src := `
var items = [1, 2, 3];
for (var i = 0; i < #items; i = i + 1) {
  if (i == 1) continue;
  print items[i];
}
foreach (var x in items) {
  print x;
}
`
	stmts, errs := Parse(lexer.Tokenize(src))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	var dump strings.Builder
	for _, s := range stmts {
		fmt.Fprintf(&dump, "%#v\n", s)
	}
	snaps.MatchSnapshot(t, dump.String())
}
