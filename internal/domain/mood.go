package domain

import "fmt"

// Mood is the emotional intent driving genre and attribute affinity.
type Mood string

const (
	MoodGoodCry      Mood = "Need a Good Cry"
	MoodBrainFood    Mood = "Brain Food"
	MoodMindlessFun  Mood = "Mindless Fun"
	MoodEdgeOfSeat   Mood = "Edge of Seat"
	MoodFeelGood     Mood = "Feel Good Vibes"
	MoodDeepThoughts Mood = "Deep Thoughts"
)

// Moods lists every selectable mood in display order.
func Moods() []Mood {
	return []Mood{
		MoodGoodCry, MoodBrainFood, MoodMindlessFun,
		MoodEdgeOfSeat, MoodFeelGood, MoodDeepThoughts,
	}
}

// ParseMood validates a user-supplied mood name.
func ParseMood(s string) (Mood, error) {
	for _, m := range Moods() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mood %q", s)
}
