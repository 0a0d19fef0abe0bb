package emoji

// emojiMap holds emoji and fallback mappings
var emojiMap = map[string][2]string{
	// [emoji, fallback]
	"error":     {"❌", "[ERR]"},
	"warning":   {"⚠️", "[WRN]"},
	"info":      {"ℹ️", "[INF]"},
	"success":   {"✅", "[OK]"},
	"star":      {"⭐", "*"},
	"trophy":    {"🏆", "[TH]"},
	"rocket":    {"🚀", "[GO]"},
	"mail":      {"📧", "[@]"},
	"link":      {"🔗", "[URL]"},
	"copy":      {"📋", "[CPY]"},
	"download":  {"📥", "[DL]"},
	"code":      {"💻", "</>"},
	"users":     {"👥", "[USR]"},
	"chart":     {"📈", "[UP]"},
	"calendar":  {"📅", "[CAL]"},
	"settings":  {"⚙️", "[CFG]"},
	"quote":     {"💬", "[\"]"},
	"back":      {"⬅️", "<-"},
	"door":      {"🚪", "[EXIT]"},
	"help":      {"❓", "[?]"},
	"sparkles":  {"✨", "[*]"},
	"heart":     {"💜", "<3"},
	"clipboard": {"📎", "[CLP]"},
}

var emojiDisabled bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled {
			return mapping[1]
		}
		return mapping[0]
	}
	return "[?]"
}

// Stars renders a rating as a row of filled stars. Ratings outside 0..5
// are clamped.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	star := GetEmoji("star")
	out := ""
	for i := 0; i < rating; i++ {
		out += star
	}
	return out
}
