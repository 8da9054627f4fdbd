package cli

import (
	"math/rand"

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driven/storage/memory"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/services"
)

// setupTestServices wires the commands to real services over in-memory
// stores and returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldGame := gameService
	oldSolver := solverService
	oldChecker := checkerService
	oldGenerator := generatorService
	oldSession := sessionService
	oldSettings := settingsService

	settings := services.NewSettingsService(memory.NewConfigStore())
	solver := services.NewSolverService(settings)
	checker := services.NewCheckerService()
	generator := services.NewGeneratorService(solver, settings,
		rand.New(rand.NewSource(1))) //nolint:gosec // G404: fixed seed keeps deals reproducible
	session := services.NewSessionService(memory.NewSessionStore())
	game := services.NewGameService(generator, solver, checker, session)

	SetServices(Services{
		Game:      game,
		Solver:    solver,
		Checker:   checker,
		Generator: generator,
		Session:   session,
		Settings:  settings,
	})

	return func() {
		gameService = oldGame
		solverService = oldSolver
		checkerService = oldChecker
		generatorService = oldGenerator
		sessionService = oldSession
		settingsService = oldSettings
	}
}
