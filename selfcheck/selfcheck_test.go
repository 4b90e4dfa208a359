package selfcheck

import (
	"context"
	"testing"
)

func TestAllChecksPass(t *testing.T) {
	results := Run(context.Background())
	if len(results) != len(Checks()) {
		t.Fatalf("got %d results, want %d", len(results), len(Checks()))
	}
	for _, r := range results {
		if !r.Passed() {
			t.Errorf("check %q failed: %v", r.Name, r.Err)
		}
	}
}

func TestSmallScalarBytesLowBytes(t *testing.T) {
	b := smallScalarBytes(300)
	want := byte(300 % 256)
	if b[len(b)-1] != want {
		t.Errorf("smallScalarBytes low byte: got %d, want %d", b[len(b)-1], want)
	}
	if b[len(b)-2] != byte(300>>8) {
		t.Errorf("smallScalarBytes second-lowest byte: got %d, want %d", b[len(b)-2], byte(300>>8))
	}
}
