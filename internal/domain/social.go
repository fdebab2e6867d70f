package domain

import "fmt"

// SocialContext is the viewing situation. It acts both as a hard
// admission gate and as a soft ranking nudge.
type SocialContext string

const (
	ContextSoloNight       SocialContext = "Solo Night"
	ContextDateNight       SocialContext = "Date Night"
	ContextFamilyTime      SocialContext = "Family Time"
	ContextFriendGroup     SocialContext = "Friend Group"
	ContextBackgroundNoise SocialContext = "Background Noise"
)

// SocialContexts lists every selectable context in display order.
func SocialContexts() []SocialContext {
	return []SocialContext{
		ContextSoloNight, ContextDateNight, ContextFamilyTime,
		ContextFriendGroup, ContextBackgroundNoise,
	}
}

// ParseSocialContext validates a user-supplied context name.
func ParseSocialContext(s string) (SocialContext, error) {
	for _, c := range SocialContexts() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown social context %q", s)
}
