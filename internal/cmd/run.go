package cmd

import (
	"fmt"
	"os/user"

	"github.com/ckarenz/bodybuddy/internal/account"
	"github.com/ckarenz/bodybuddy/internal/api"
	"github.com/ckarenz/bodybuddy/internal/bridge"
	"github.com/ckarenz/bodybuddy/internal/config"
	"github.com/ckarenz/bodybuddy/internal/daily"
	"github.com/ckarenz/bodybuddy/internal/logging"
	"github.com/ckarenz/bodybuddy/internal/notes"
	"github.com/ckarenz/bodybuddy/internal/persona"
	"github.com/ckarenz/bodybuddy/internal/session"
	"github.com/ckarenz/bodybuddy/internal/storage"
	"github.com/ckarenz/bodybuddy/internal/task"
	"github.com/ckarenz/bodybuddy/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.PersistentFlags().StringP("user", "u", "", "backend user id for chat history")
	_ = viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dataDir := cfg.Paths.ResolveDataDir()

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(dataDir, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
	}
	defer logger.Close()

	backend, err := storage.NewFileBackend(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}

	tasks := task.NewStore(logger)

	selection := daily.NewStore(backend, logger)
	if err := selection.Load(); err != nil {
		logger.Warn("daily selection load failed", "error", err)
	}

	noteLog := notes.NewStore(backend, logger)
	if err := noteLog.Load(); err != nil {
		logger.Warn("session notes load failed", "error", err)
	}

	// Config validation already rejected unknown values; the parse
	// errors here only fire on a hand-edited file, and the generator
	// falls back to gentle/ariana anyway.
	personality, _ := persona.ParsePersonality(cfg.Persona.Personality)
	tone, _ := persona.ParseTone(cfg.Persona.Tone)
	gen := persona.NewGenerator(personality, tone, nil)

	username := resolveUsername(backend)
	client := api.NewClient(cfg.API, logger)
	chat := bridge.NewChat(client, gen, username, logger)
	speaker := bridge.NewSpeaker(client, nil, tone, cfg.Persona.VoiceEnabled, logger)

	sess := session.New(session.Config{
		Tasks:            tasks,
		Selection:        selection,
		Notes:            noteLog,
		Generator:        gen,
		Logger:           logger,
		StudyMinutes:     cfg.Timer.StudyMinutes,
		BreakMinutes:     cfg.Timer.BreakMinutes,
		EncourageSeconds: cfg.Timer.EncourageIntervalSeconds,
	})

	app := tui.New(tui.Deps{
		Config:    *cfg,
		Tasks:     tasks,
		Selection: selection,
		Session:   sess,
		Chat:      chat,
		Speaker:   speaker,
		Generator: gen,
		Client:    client,
		Logger:    logger,
		Username:  username,
	})
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// resolveUsername prefers the --user flag, then the saved login, then
// the OS account name.
func resolveUsername(backend storage.Backend) string {
	if name := viper.GetString("user"); name != "" {
		return name
	}
	if st, ok := account.Load(backend); ok {
		return st.Username
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "friend"
}
