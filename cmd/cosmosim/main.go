// Command cosmosim runs the cosmogenesis core engine headless: a frame loop
// driving the physics tick, periodic status reports, and SQLite saves.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/cosmogenesis/internal/config"
	"github.com/talgya/cosmogenesis/internal/cosmos"
	"github.com/talgya/cosmogenesis/internal/engine"
	"github.com/talgya/cosmogenesis/internal/entropy"
	"github.com/talgya/cosmogenesis/internal/persistence"
)

func main() {
	var (
		dbPath     = flag.String("db", "data/universe.db", "path to the session database")
		cfgPath    = flag.String("config", "", "optional balance override file (YAML)")
		seed       = flag.Uint64("seed", 0, "deterministic entropy seed (0 = OS entropy)")
		interval   = flag.Duration("interval", 100*time.Millisecond, "frame interval")
		reportSecs = flag.Int("report", 60, "seconds between status reports")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("COSMOGENESIS — core simulation host")

	if *interval <= 0 {
		slog.Error("frame interval must be positive", "interval", *interval)
		os.Exit(1)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			slog.Error("failed to load config", "path", *cfgPath, "error", err)
			os.Exit(1)
		}
		slog.Info("balance overrides loaded", "path", *cfgPath)
	}

	var source entropy.Source
	if *seed != 0 {
		source = entropy.Seeded(*seed)
		slog.Info("entropy source", "kind", "seeded", "seed", *seed)
	} else {
		source = entropy.Crypto()
		slog.Info("entropy source", "kind", "crypto")
	}

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(*dbPath), 0755)
	db, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", *dbPath)

	// ── Load or Create Session ────────────────────────────────────────
	eng := engine.New(cfg, source)
	if db.HasState() {
		st, err := db.LoadState()
		if err != nil {
			slog.Error("failed to load session", "error", err)
			os.Exit(1)
		}
		eng.RestoreState(st)
		slog.Info("session restored",
			"session", eng.SessionID,
			"cosmic_time", engine.EpochTime(eng.GetCosmicTime()),
			"entropy", fmt.Sprintf("%.2f", eng.GetEntropyLevel()),
		)
	} else {
		slog.Info("new universe created", "session", eng.SessionID)
	}

	// ── Frame Loop ────────────────────────────────────────────────────
	loop := engine.NewLoop()
	loop.Interval = *interval
	loop.ReportEvery = reportEvery(time.Duration(*reportSecs)*time.Second, *interval)

	loop.OnFrame = func(dt float64) {
		eng.UpdatePhysics(dt)
	}
	loop.OnReport = func(frame uint64) {
		report(eng, frame)
		if err := db.SaveState(eng.Snapshot()); err != nil {
			slog.Error("periodic save failed", "error", err)
		}
	}

	// The signal handler only requests the stop; the loop runs on this
	// goroutine, so the final snapshot below happens strictly after the
	// last frame finished touching the engine.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		loop.Stop()
	}()

	loop.Run()

	// ── Shutdown ──────────────────────────────────────────────────────
	if err := db.SaveState(eng.Snapshot()); err != nil {
		slog.Error("final save failed", "error", err)
		os.Exit(1)
	}
	slog.Info("session saved, goodbye", "session", eng.SessionID)
}

// reportEvery converts a report period into a frame count. Zero disables
// reporting; sub-interval periods report every frame.
func reportEvery(period, interval time.Duration) uint64 {
	if period <= 0 || interval <= 0 {
		return 0
	}
	frames := uint64(period / interval)
	if frames == 0 {
		frames = 1
	}
	return frames
}

// report logs the state of the universe in human units.
func report(eng *engine.Engine, frame uint64) {
	res := eng.GetResources()
	status := eng.GetProgressionStatus()

	slog.Info("universe report",
		"frame", frame,
		"age", engine.EpochTime(eng.GetCosmicTime()),
		"entropy", fmt.Sprintf("%.2f", eng.GetEntropyLevel()),
		"hydrogen", humanize.CommafWithDigits(res[cosmos.HydrogenFuel], 1),
		"dark_energy", humanize.CommafWithDigits(res[cosmos.DarkEnergy], 1),
		"dark_matter", humanize.CommafWithDigits(res[cosmos.DarkMatter], 1),
		"information", humanize.CommafWithDigits(res[cosmos.CosmicInformation], 1),
		"tier", status.CurrentTier.Name,
		"mastery", humanize.CommafWithDigits(status.TotalMastery, 0),
		"achievements", len(eng.GetCompletedAchievements()),
		"effects", len(eng.GetActiveEffects()),
	)
}
