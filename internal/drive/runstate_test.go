// internal/drive/runstate_test.go
package drive

import "testing"

func TestDecodeRunState(t *testing.T) {
	cases := []struct {
		word uint16
		want RunState
	}{
		{0x0000, Stopped},
		{0x0001, RunForward},
		{0x0002, Stopped}, // direction bit without run bit
		{0x0003, RunReverse},
		{0x0005, RunForward}, // upper bits ignored
		{0x001B, RunReverse},
		{0x0018, Stopped}, // fault bits only
	}

	for _, c := range cases {
		if got := DecodeRunState(c.word); got != c.want {
			t.Errorf("DecodeRunState(%#04x)=%v want %v", c.word, got, c.want)
		}
	}
}

func TestRunState_EncodeRoundTrip(t *testing.T) {
	for _, r := range []RunState{Stopped, RunForward, RunReverse} {
		if got := DecodeRunState(r.Encode()); got != r {
			t.Errorf("decode(encode(%v))=%v", r, got)
		}
	}
}

func TestRunState_Running(t *testing.T) {
	if Stopped.Running() {
		t.Error("Stopped.Running()=true")
	}
	if !RunForward.Running() || !RunReverse.Running() {
		t.Error("forward/reverse must report running")
	}
}
