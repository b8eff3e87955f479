package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rcliao/event-repeater/internal/config"
	"github.com/rcliao/event-repeater/internal/console"
	"github.com/rcliao/event-repeater/internal/content"
	"github.com/rcliao/event-repeater/internal/host"
	"github.com/rcliao/event-repeater/internal/logging"
	"github.com/rcliao/event-repeater/internal/repeater"
	"github.com/rcliao/event-repeater/internal/store"
)

// session is one launch of the host: the save is loaded, packs are
// aggregated, and every command runs against the same in-memory state until
// persist writes it back.
type session struct {
	cfg      config.Config
	log      *slog.Logger
	store    *store.SQLiteStore
	game     *host.Game
	lc       *host.Lifecycle
	packs    content.Registry
	repeater *repeater.Repeater
	registry *console.Registry
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if modsDir != "" {
		cfg.ModsDir = modsDir
	}
	if workDir != "" {
		cfg.WorkDir = workDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	st, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s, err := newSession(ctx, cfg, log, st)
	if err != nil {
		st.Close()
		return nil, err
	}
	return s, nil
}

func newSession(ctx context.Context, cfg config.Config, log *slog.Logger, st *store.SQLiteStore) (*session, error) {
	g, err := st.LoadGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}

	rep, err := repeater.New(g, repeater.Options{
		ManualDir: cfg.ManualDir(),
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}

	manual, err := st.ManualRepeaters(ctx)
	if err != nil {
		return nil, fmt.Errorf("load manual repeaters: %w", err)
	}
	rep.RestoreManual(manual)

	last, err := st.LastEvent(ctx)
	if err != nil {
		return nil, fmt.Errorf("load last event: %w", err)
	}
	rep.RestoreLastEvent(last)

	s := &session{
		cfg:      cfg,
		log:      log,
		store:    st,
		game:     g,
		lc:       host.NewLifecycle(g),
		packs:    content.NewDirRegistry(cfg.ModsDir, log),
		repeater: rep,
		registry: console.NewRegistry(),
	}
	rep.Attach(s.lc, s.packs, cfg.ModID)

	if err := rep.Register(s.registry); err != nil {
		return nil, err
	}
	if err := s.registerHostCommands(); err != nil {
		return nil, err
	}

	s.lc.Launch()
	return s, nil
}

// persist writes the game and the repeater's session state back to the save.
func (s *session) persist(ctx context.Context) error {
	if err := s.store.SaveGame(ctx, s.game); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	if err := s.store.SetManualRepeaters(ctx, s.repeater.Manual()); err != nil {
		return fmt.Errorf("save manual repeaters: %w", err)
	}
	if err := s.store.SetLastEvent(ctx, s.repeater.LastEvent()); err != nil {
		return fmt.Errorf("save last event: %w", err)
	}
	return nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// withSession opens a session, runs fn, persists and closes. fn's error is
// reported after the state has been saved.
func withSession(ctx context.Context, fn func(s *session) error) {
	s, err := openSession(ctx)
	if err != nil {
		exitErr("open session", err)
	}

	runErr := fn(s)
	persistErr := s.persist(ctx)
	s.Close()

	if persistErr != nil {
		exitErr("persist", persistErr)
	}
	if runErr != nil {
		exitErr("command", runErr)
	}
}
