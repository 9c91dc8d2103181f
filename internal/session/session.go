// Package session coordinates one focus session: the subtask being
// worked on, the study/break timer, the encouragement cadence and the
// end-of-session summary. It is the only writer back into the task
// store, marking the worked subtask complete when the user says they
// finished.
package session

import (
	"context"
	"time"

	"github.com/ckarenz/bodybuddy/internal/bridge"
	"github.com/ckarenz/bodybuddy/internal/daily"
	"github.com/ckarenz/bodybuddy/internal/errors"
	"github.com/ckarenz/bodybuddy/internal/logging"
	"github.com/ckarenz/bodybuddy/internal/notes"
	"github.com/ckarenz/bodybuddy/internal/persona"
	"github.com/ckarenz/bodybuddy/internal/pomodoro"
	"github.com/ckarenz/bodybuddy/internal/task"
)

// Event is something the session wants announced: an encouragement or
// a phase switch. The TUI renders it; the speaker may voice it.
type Event struct {
	Text          string
	PhaseSwitched bool
	NewPhase      pomodoro.Phase
}

// Summary is the end-of-session report.
type Summary struct {
	Feedback        persona.Feedback
	Advice          string
	CompletedCount  int
	TotalCount      int
	DurationMinutes int
	TaskCompleted   bool
}

// Session drives one focus session over a selected subtask.
type Session struct {
	tasks     *task.Store
	selection *daily.Store
	noteLog   *notes.Store
	gen       *persona.Generator
	logger    *logging.Logger
	now       func() time.Time

	timer        *pomodoro.Timer
	subtaskID    string
	taskTitle    string
	subtaskTitle string
	startedAt    time.Time
	active       bool

	encourageEvery int
	tickCount      int
}

// Config carries the session's collaborators and tuning.
type Config struct {
	Tasks     *task.Store
	Selection *daily.Store
	Notes     *notes.Store
	Generator *persona.Generator
	Logger    *logging.Logger

	StudyMinutes     int
	BreakMinutes     int
	EncourageSeconds int
}

// defaultEncourageSeconds matches the two minute cadence the buddy
// uses between spontaneous encouragements.
const defaultEncourageSeconds = 120

// New creates an idle session.
func New(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	encourage := cfg.EncourageSeconds
	if encourage <= 0 {
		encourage = defaultEncourageSeconds
	}
	gen := cfg.Generator
	if gen == nil {
		gen = persona.NewGenerator(persona.Gentle, persona.ToneAriana, nil)
	}
	return &Session{
		tasks:          cfg.Tasks,
		selection:      cfg.Selection,
		noteLog:        cfg.Notes,
		gen:            gen,
		logger:         logger,
		now:            time.Now,
		timer:          pomodoro.New(cfg.StudyMinutes, cfg.BreakMinutes),
		encourageEvery: encourage,
	}
}

// SetClock overrides the session's notion of now.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// Active reports whether a session is in progress.
func (s *Session) Active() bool {
	return s.active
}

// Timer exposes the countdown for rendering.
func (s *Session) Timer() *pomodoro.Timer {
	return s.timer
}

// SubtaskID returns the subtask being worked on.
func (s *Session) SubtaskID() string {
	return s.subtaskID
}

// SubtaskTitle returns the worked subtask's title.
func (s *Session) SubtaskTitle() string {
	return s.subtaskTitle
}

// TaskTitle returns the parent task's title.
func (s *Session) TaskTitle() string {
	return s.taskTitle
}

// Start begins a focus session on the given subtask. Starting without
// a subtask, with an unknown one, or while a session is active fails.
func (s *Session) Start(subtaskID string) error {
	if s.active {
		return errors.NewSessionError("session already running", errors.ErrSessionActive)
	}
	if subtaskID == "" {
		return errors.NewSessionError("no subtask selected", errors.ErrNoSubtaskSelected)
	}

	parent, sub, ok := s.tasks.FindSubtask(subtaskID)
	if !ok {
		return errors.NewSessionError("cannot start session", errors.ErrSubtaskNotFound).WithSubtaskID(subtaskID)
	}

	s.subtaskID = subtaskID
	s.taskTitle = parent.Title
	s.subtaskTitle = sub.Title
	s.startedAt = s.now()
	s.active = true
	s.tickCount = 0
	// The timer survives between sessions and may have been left
	// mid-break; every session opens with a full study phase.
	s.timer.ResetToStudy()
	s.timer.Start()

	s.logger.Info("focus session started", "subtask_id", subtaskID, "task", parent.Title)
	return nil
}

// Tick advances the session by one second. It returns events to
// announce: an encouragement on the configured cadence, and a persona
// line whenever the timer switches phases.
func (s *Session) Tick() []Event {
	if !s.active {
		return nil
	}

	var events []Event

	res := s.timer.Tick()
	if res.Completed {
		text := s.gen.BackToWork()
		if res.PhaseCompleted == pomodoro.PhaseStudy {
			text = s.gen.BreakStarting()
		}
		events = append(events, Event{
			Text:          text,
			PhaseSwitched: true,
			NewPhase:      s.timer.Phase(),
		})
	}

	// The cadence follows wall-clock session time, not the countdown:
	// the buddy keeps piping up through breaks and pauses.
	s.tickCount++
	if s.tickCount%s.encourageEvery == 0 {
		events = append(events, Event{Text: s.gen.Encouragement()})
	}

	return events
}

// Pause freezes the timer.
func (s *Session) Pause() error {
	if !s.active {
		return errors.NewSessionError("no session running", errors.ErrSessionNotRunning)
	}
	s.timer.Pause()
	return nil
}

// Resume continues a paused timer.
func (s *Session) Resume() error {
	if !s.active {
		return errors.NewSessionError("no session running", errors.ErrSessionNotRunning)
	}
	s.timer.Resume()
	return nil
}

// End finishes the session. When the user reports the subtask done it
// is marked complete in the task store and removed from the daily
// selection. The summary is built from the persona feedback tables and
// the day's completion stats.
func (s *Session) End(taskCompleted bool) (Summary, error) {
	if !s.active {
		return Summary{}, errors.NewSessionError("no session running", errors.ErrSessionNotRunning)
	}

	if taskCompleted {
		if err := s.tasks.CompleteSubtask(s.subtaskID); err != nil {
			s.logger.Warn("could not mark subtask complete", "subtask_id", s.subtaskID, "error", err)
		}
		if s.selection != nil {
			if err := s.selection.Remove(s.subtaskID); err != nil {
				s.logger.Warn("could not update daily selection", "error", err)
			}
		}
	}

	completed, total := s.dailyStats()
	duration := int(s.now().Sub(s.startedAt).Minutes())

	summary := Summary{
		Feedback:        s.gen.SessionFeedback(completed, total, duration, taskCompleted),
		Advice:          s.gen.SessionAdvice(taskCompleted),
		CompletedCount:  completed,
		TotalCount:      total,
		DurationMinutes: duration,
		TaskCompleted:   taskCompleted,
	}

	s.active = false
	s.timer.Pause()
	s.logger.Info("focus session ended",
		"subtask_id", s.subtaskID,
		"completed", taskCompleted,
		"duration_minutes", duration)
	return summary, nil
}

// SaveNote records the teach-back for the session that just ended. An
// empty teach-back saves nothing, without error.
func (s *Session) SaveNote(teachback, reflection string) (notes.Note, bool, error) {
	if s.noteLog == nil || teachback == "" {
		return notes.Note{}, false, nil
	}

	duration := int(s.now().Sub(s.startedAt).Minutes())
	note, err := s.noteLog.Append(notes.Note{
		Timestamp:       s.startedAt,
		DurationMinutes: duration,
		SubtaskID:       s.subtaskID,
		TaskTitle:       s.taskTitle,
		SubtaskTitle:    s.subtaskTitle,
		Teachback:       teachback,
		Reflection:      reflection,
	})
	if err != nil {
		return notes.Note{}, false, err
	}
	return note, true, nil
}

// dailyStats counts how many of today's selected subtasks are done.
func (s *Session) dailyStats() (completed, total int) {
	if s.selection == nil || s.tasks == nil {
		return 0, 0
	}

	// Removed-on-completion IDs no longer appear in the selection, so
	// completed work is counted from the task store.
	ids := s.selection.IDs()
	total = len(ids)
	for _, id := range ids {
		if _, sub, ok := s.tasks.FindSubtask(id); ok && sub.Completed {
			completed++
		}
	}

	// The subtask just finished may have left the selection already.
	if s.subtaskID != "" {
		if _, sub, ok := s.tasks.FindSubtask(s.subtaskID); ok && sub.Completed && !contains(ids, s.subtaskID) {
			completed++
			total++
		}
	}
	return completed, total
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Announce lets callers voice an event through a speaker when one is
// configured. Kept here so the TUI does not need to know about voice.
func Announce(ctx context.Context, speaker *bridge.Speaker, ev Event) {
	if speaker == nil {
		return
	}
	speaker.Say(ctx, ev.Text)
}
