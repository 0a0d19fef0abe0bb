package emoji

import "testing"

func TestGetEmojiFallback(t *testing.T) {
	t.Cleanup(func() { SetEmojiDisabled(false) })

	SetEmojiDisabled(false)
	if got := GetEmoji("copy"); got != "📋" {
		t.Errorf("Expected copy emoji, got %s", got)
	}

	SetEmojiDisabled(true)
	if !IsEmojiDisabled() {
		t.Error("Expected emoji to be disabled")
	}
	if got := GetEmoji("copy"); got != "[CPY]" {
		t.Errorf("Expected copy fallback, got %s", got)
	}
	if got := GetEmoji("no-such-key"); got != "[?]" {
		t.Errorf("Expected unknown key marker, got %s", got)
	}
}

func TestStars(t *testing.T) {
	t.Cleanup(func() { SetEmojiDisabled(false) })
	SetEmojiDisabled(true)

	tests := map[int]string{
		-1: "",
		0:  "",
		3:  "***",
		5:  "*****",
		9:  "*****",
	}
	for rating, want := range tests {
		if got := Stars(rating); got != want {
			t.Errorf("Stars(%d) = %q, expected %q", rating, got, want)
		}
	}
}
