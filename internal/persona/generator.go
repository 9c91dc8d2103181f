package persona

import (
	"fmt"
	"math/rand"
	"time"
)

// Feedback is a session summary card.
type Feedback struct {
	Title   string
	Message string
}

// Titles and copy for sessions that ended without finishing the task.
const (
	consolationTitle   = "Keep Going! 💪"
	consolationMessage = "That's okay! Every study session is progress, even if you didn't finish. The key is to keep trying and adjust your approach."
)

// Generator picks messages for one personality and tone combination.
// It is not safe for concurrent use; each session owns its own.
type Generator struct {
	personality Personality
	tone        Tone
	rng         *rand.Rand
}

// NewGenerator creates a generator. Unknown personality or tone values
// fall back to gentle ariana. A nil rng gets a time-seeded source.
func NewGenerator(p Personality, t Tone, rng *rand.Rand) *Generator {
	if !p.IsValid() {
		p = Gentle
	}
	if !t.IsValid() {
		t = ToneAriana
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{personality: p, tone: t, rng: rng}
}

// Personality returns the generator's personality.
func (g *Generator) Personality() Personality {
	return g.personality
}

// Tone returns the generator's tone.
func (g *Generator) Tone() Tone {
	return g.tone
}

// Encouragement picks a mid-session cheer.
func (g *Generator) Encouragement() string {
	return g.pick(encouragementMessages[g.personality][g.tone])
}

// ChatResponse picks a canned chat reply. The chat bridge uses this as
// the fallback when the backend cannot answer.
func (g *Generator) ChatResponse() string {
	return g.pick(chatResponses[g.personality][g.tone])
}

// BreakStarting returns the announcement for a finished study phase.
func (g *Generator) BreakStarting() string {
	return breakStartMessages[g.personality][g.tone]
}

// BackToWork returns the announcement for a finished break.
func (g *Generator) BackToWork() string {
	return backToWorkMessages[g.personality][g.tone]
}

// RestRecommendation picks a wind-down suggestion for a session where
// the task got finished.
func (g *Generator) RestRecommendation() string {
	return g.pick(restRecommendations)
}

// EfficiencyTip picks a focus suggestion for a session where the task
// did not get finished.
func (g *Generator) EfficiencyTip() string {
	return g.pick(efficiencyTips)
}

// SessionAdvice returns rest advice after a finished task and an
// efficiency tip otherwise.
func (g *Generator) SessionAdvice(taskCompleted bool) string {
	if taskCompleted {
		return g.RestRecommendation()
	}
	return g.EfficiencyTip()
}

// SessionFeedback builds the end-of-session card. When the task was not
// finished the persona copy is replaced with a fixed consolation;
// otherwise the card depends deterministically on the completion rate,
// with thresholds at everything done and more than half done.
func (g *Generator) SessionFeedback(completed, total, durationMinutes int, taskCompleted bool) Feedback {
	if !taskCompleted {
		return Feedback{Title: consolationTitle, Message: consolationMessage}
	}
	return sessionFeedback(g.personality, g.tone, completed, total, durationMinutes)
}

func (g *Generator) pick(messages []string) string {
	if len(messages) == 0 {
		return ""
	}
	return messages[g.rng.Intn(len(messages))]
}

func sessionFeedback(p Personality, t Tone, completed, total, durationMinutes int) Feedback {
	var rate float64
	if total > 0 {
		rate = float64(completed) / float64(total)
	}

	switch p {
	case Gentle:
		switch t {
		case ToneAriana:
			if rate == 1 {
				return Feedback{
					Title:   "You're literally PERFECT! 🌟",
					Message: fmt.Sprintf("Yuh! You finished ALL %d tasks, babe! I'm so proud! ✨💕", total),
				}
			}
			if rate > 0.5 {
				return Feedback{
					Title:   "Great job, sweetie! 💖",
					Message: fmt.Sprintf("You did %d out of %d tasks! That's amazing! Keep shining! ✨", completed, total),
				}
			}
			return Feedback{
				Title:   "You tried, and that matters! 💕",
				Message: fmt.Sprintf("%d tasks done! Every step counts, babe! I believe in you! 🥰", completed),
			}
		case ToneGordon:
			if rate == 1 {
				return Feedback{
					Title:   "Excellent Work!",
					Message: fmt.Sprintf("All %d tasks completed. That's the standard I expect. Well done!", total),
				}
			}
			if rate > 0.5 {
				return Feedback{
					Title:   "Good Progress!",
					Message: fmt.Sprintf("%d out of %d tasks. Solid effort. Keep it up!", completed, total),
				}
			}
			return Feedback{
				Title:   "Decent Effort!",
				Message: fmt.Sprintf("%d tasks completed. There's room for improvement, but you showed up!", completed),
			}
		case ToneSnoop:
			if rate == 1 {
				return Feedback{
					Title:   "Yo, you killed it! 🎉",
					Message: fmt.Sprintf("All %d tasks done, homie! That's what I'm talkin' bout! Keep it real! 💯", total),
				}
			}
			if rate > 0.5 {
				return Feedback{
					Title:   "Nice work, dawg! ✌️",
					Message: fmt.Sprintf("%d outta %d! You vibin' smooth! Keep that energy! 😎", completed, total),
				}
			}
			return Feedback{
				Title:   "You showed up! 🎵",
				Message: fmt.Sprintf("%d tasks done! Keep grindin', homie! Rome wasn't built in a day! 💪", completed),
			}
		}
	case Funny:
		switch t {
		case ToneAriana:
			if rate == 1 {
				return Feedback{
					Title:   "OMG, did you actually...? 😱",
					Message: fmt.Sprintf("You finished EVERYTHING?! %d tasks?! Is this real life?! 💅✨", total),
				}
			}
			if rate > 0.5 {
				return Feedback{
					Title:   "Not too shabby! 😏",
					Message: fmt.Sprintf("%d out of %d! I've seen worse, babe! Keep it up, I guess! 💕", completed, total),
				}
			}
			return Feedback{
				Title:   "Well, that was... something! 🙃",
				Message: fmt.Sprintf("%d tasks? That's cute! At least you tried! 😂", completed),
			}
		case ToneGordon:
			if rate == 1 {
				return Feedback{
					Title:   "Bloody Hell!",
					Message: fmt.Sprintf("You actually finished all %d! I'm genuinely shocked! Don't let it go to your head!", total),
				}
			}
			if rate > 0.5 {
				return Feedback{
					Title:   "Could Be Worse!",
					Message: fmt.Sprintf("%d out of %d. Not terrible. But not great either!", completed, total),
				}
			}
			return Feedback{
				Title:   "Is That It?!",
				Message: fmt.Sprintf("Only %d tasks?! I've seen snails move faster! But fine, whatever!", completed),
			}
		case ToneSnoop:
			if rate == 1 {
				return Feedback{
					Title:   "Hold up, wait a minute! 😂",
					Message: fmt.Sprintf("You finished all %d?! Damn, didn't see that comin'! Respect! 🎯", total),
				}
			}
			if rate > 0.5 {
				return Feedback{
					Title:   "Aight, aight! 😆",
					Message: fmt.Sprintf("%d outta %d! Not bad for someone who looked sleepy earlier! 💤", completed, total),
				}
			}
			return Feedback{
				Title:   "Bruh... really? 🤔",
				Message: fmt.Sprintf("%d tasks? That's all you got? Come on now, I know you better! 😏", completed),
			}
		}
	case Pushy:
		switch t {
		case ToneAriana:
			if rate == 1 {
				return Feedback{
					Title:   "FINALLY! 💪",
					Message: fmt.Sprintf("ALL %d tasks DONE! That's what I expect! Now keep this energy! 🔥", total),
				}
			}
			if rate > 0.5 {
				return Feedback{
					Title:   "Not enough! 💢",
					Message: fmt.Sprintf("Only %d out of %d?! You can do BETTER! Next time, finish ALL of them! ⚡", completed, total),
				}
			}
			return Feedback{
				Title:   "Disappointing! 😤",
				Message: fmt.Sprintf("%d tasks?! That's pathetic! I KNOW you're capable of more! Step it UP! 💥", completed),
			}
		case ToneGordon:
			if rate == 1 {
				return Feedback{
					Title:   "THAT'S IT!",
					Message: fmt.Sprintf("ALL %d DONE! That's the standard! Maintain it or you're OUT!", total),
				}
			}
			if rate > 0.5 {
				return Feedback{
					Title:   "NOT GOOD ENOUGH!",
					Message: fmt.Sprintf("%d out of %d?! Why not ALL?! I want 100%% next time! MOVE IT!", completed, total),
				}
			}
			return Feedback{
				Title:   "PATHETIC!",
				Message: fmt.Sprintf("%d tasks?! This is UNACCEPTABLE! You're better than this! GET IT TOGETHER!", completed),
			}
		case ToneSnoop:
			if rate == 1 {
				return Feedback{
					Title:   "Now THAT'S what I'm talkin' bout! 🔥",
					Message: fmt.Sprintf("ALL %d done! Keep that hustle goin', dawg! Don't slack now! 💯", total),
				}
			}
			if rate > 0.5 {
				return Feedback{
					Title:   "Come on now! 💪",
					Message: fmt.Sprintf("%d outta %d?! I know you got more in the tank! Push harder, homie! ⚡", completed, total),
				}
			}
			return Feedback{
				Title:   "Yo, that ain't it! 😤",
				Message: fmt.Sprintf("%d tasks?! Come ON! You can do way better! Stop playin' around! 🎯", completed),
			}
		}
	}

	return Feedback{
		Title:   "Session Complete",
		Message: fmt.Sprintf("You completed %d out of %d tasks in %d minutes!", completed, total, durationMinutes),
	}
}
