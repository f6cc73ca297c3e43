package playback

import (
	"net/url"
	"strings"
)

var imageSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"}

var audioSuffixes = []string{".mp3", ".wav", ".ogg", ".m4a", ".aac"}

// Classify resolves a tag's string value to its playable form. The type is
// always derived from the string's shape; there is no persisted
// discriminator, so a literal phrase that happens to look like a filename
// (e.g. "cat.png") classifies as an image reference. That ambiguity is
// inherited from the stored data layout and is not corrected here.
//
// Audio values that are not absolute URLs and not already under
// audioPathPrefix get the prefix prepended to form the source URL.
func Classify(value, audioPathPrefix string) Media {
	trimmed := strings.TrimSpace(value)
	candidate := strings.ToLower(pathPart(trimmed))

	for _, suffix := range imageSuffixes {
		if strings.HasSuffix(candidate, suffix) {
			return Media{Kind: KindImage, Source: trimmed}
		}
	}

	for _, suffix := range audioSuffixes {
		if strings.HasSuffix(candidate, suffix) {
			return Media{Kind: KindAudio, Source: audioSource(trimmed, audioPathPrefix)}
		}
	}

	return Media{Kind: KindText, Text: trimmed}
}

// pathPart strips query and fragment from URL-shaped values so suffix
// matching sees only the path.
func pathPart(value string) string {
	if !isAbsoluteURL(value) {
		return value
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return value
	}
	return parsed.Path
}

// audioSource builds the playable URL for an audio tag value.
func audioSource(value, prefix string) string {
	if isAbsoluteURL(value) || (prefix != "" && strings.HasPrefix(value, prefix)) {
		return value
	}
	if prefix == "" {
		return value
	}
	return strings.TrimSuffix(prefix, "/") + "/" + value
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

// ContainsDevanagari reports whether the text contains Devanagari-range
// runes, which selects the Hindi synthesis voice.
func ContainsDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}
