// Command twentyfour deals four numbers between 1 and 9; combine them
// with + - * / and parentheses to make 24.
package main

import (
	"fmt"
	"os"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driven/config/file"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driven/storage/memory"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driven/storage/sqlite"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driving/cli"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driven"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/services"
)

// version is stamped by the release build.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configStore := newConfigStore()
	sessionStore, cleanup := newSessionStore()
	defer cleanup()

	settingsService := services.NewSettingsService(configStore)
	solverService := services.NewSolverService(settingsService)
	checkerService := services.NewCheckerService()
	generatorService := services.NewGeneratorService(solverService, settingsService, nil)
	sessionService := services.NewSessionService(sessionStore)
	gameService := services.NewGameService(generatorService, solverService, checkerService, sessionService)

	cli.SetServices(cli.Services{
		Game:      gameService,
		Solver:    solverService,
		Checker:   checkerService,
		Generator: generatorService,
		Session:   sessionService,
		Settings:  settingsService,
	})
	cli.SetTUIConfig(&cli.TUIConfig{
		GameService:     gameService,
		SessionService:  sessionService,
		SettingsService: settingsService,
	})
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		// Cobra already printed the error.
		return 1
	}
	return 0
}

// newConfigStore opens the TOML config store under ~/.twentyfour,
// falling back to an in-memory store when the directory is unusable.
func newConfigStore() driven.ConfigStore {
	store, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config file unavailable, settings will not persist: %v\n", err)
		return memory.NewConfigStore()
	}
	return store
}

// newSessionStore opens the SQLite session store under
// ~/.twentyfour/data, falling back to an in-memory store when the
// database is unusable.
func newSessionStore() (driven.SessionStore, func()) {
	store, err := sqlite.NewStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: session database unavailable, statistics will not persist: %v\n", err)
		return memory.NewSessionStore(), func() {}
	}
	return store.SessionStore(), func() {
		store.Close() //nolint:errcheck
	}
}
