package hwreset

import "testing"

func TestUnwiredLineIsNoOp(t *testing.T) {
	l, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\"): %v", err)
	}
	if l.Wired() {
		t.Fatalf("Wired() = true for an empty pin name")
	}
	if err := l.Pulse(0); err != nil {
		t.Fatalf("Pulse on unwired line: %v", err)
	}
}
