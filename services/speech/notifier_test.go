package speech

import (
	"testing"
)

func TestAnnounceEmptyTextIsSkipped(t *testing.T) {
	n := NewNotifier(true, "")
	// Must return without spawning playback or panicking.
	n.Announce("")
}

func TestAnnounceDisabledReturnsImmediately(t *testing.T) {
	n := NewNotifier(false, "")
	n.Announce("Your booking is confirmed.")
}
