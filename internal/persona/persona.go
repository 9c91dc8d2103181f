// Package persona generates the study buddy's voice: encouragement,
// chat fallbacks, phase announcements and session feedback, all shaped
// by a personality and a celebrity tone. Message selection takes an
// injected random source so callers can make it deterministic.
package persona

import (
	"strings"

	"github.com/ckarenz/bodybuddy/internal/errors"
)

// Personality controls how hard the buddy pushes.
type Personality string

const (
	Gentle Personality = "gentle"
	Funny  Personality = "funny"
	Pushy  Personality = "pushy"
)

// IsValid reports whether p is a known personality.
func (p Personality) IsValid() bool {
	switch p {
	case Gentle, Funny, Pushy:
		return true
	}
	return false
}

// String returns the personality name.
func (p Personality) String() string {
	return string(p)
}

// ParsePersonality converts a config or CLI string to a Personality.
func ParsePersonality(s string) (Personality, error) {
	p := Personality(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", errors.NewValidationError("unknown personality").
			WithField("personality").
			WithValue(s)
	}
	return p, nil
}

// Tone selects which celebrity voice the buddy speaks in.
type Tone string

const (
	ToneAriana Tone = "ariana"
	ToneGordon Tone = "gordon"
	ToneSnoop  Tone = "snoop"
)

// IsValid reports whether t is a known tone.
func (t Tone) IsValid() bool {
	switch t {
	case ToneAriana, ToneGordon, ToneSnoop:
		return true
	}
	return false
}

// String returns the tone name.
func (t Tone) String() string {
	return string(t)
}

// ParseTone converts a config or CLI string to a Tone.
func ParseTone(s string) (Tone, error) {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", errors.NewValidationError("unknown voice tone").
			WithField("tone").
			WithValue(s)
	}
	return t, nil
}

// DisplayName returns the tone's human-readable name.
func (t Tone) DisplayName() string {
	switch t {
	case ToneAriana:
		return "Ariana Grande"
	case ToneGordon:
		return "Gordon Ramsay"
	case ToneSnoop:
		return "Snoop Dogg"
	}
	return string(t)
}

// Voice synthesis model IDs for each tone.
var toneModelIDs = map[Tone]string{
	ToneAriana: "5d8f5b86a3144c87b1dd1ecff9b86295",
	ToneGordon: "b0247335c9a043b3ab0b21dabb6a9d60",
	ToneSnoop:  "1a3dfc8c9f68498994a27f3f9b963d1c",
}

// VoiceModelID returns the synthesis model ID for the tone, or the
// ariana model when the tone is unknown.
func (t Tone) VoiceModelID() string {
	if id, ok := toneModelIDs[t]; ok {
		return id
	}
	return toneModelIDs[ToneAriana]
}

// ToneForVoiceModelID maps a synthesis model ID back to its tone.
func ToneForVoiceModelID(id string) (Tone, bool) {
	for tone, modelID := range toneModelIDs {
		if modelID == id {
			return tone, true
		}
	}
	return "", false
}

// Personalities lists all known personalities.
func Personalities() []Personality {
	return []Personality{Gentle, Funny, Pushy}
}

// Tones lists all known tones.
func Tones() []Tone {
	return []Tone{ToneAriana, ToneGordon, ToneSnoop}
}
