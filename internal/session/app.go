// Package session runs the console: it owns the active phase and routes each
// input line to that phase's command registry.
package session

import (
	"github.com/vytor/fergusquiz/internal/auth"
	"github.com/vytor/fergusquiz/internal/catalog"
	"github.com/vytor/fergusquiz/internal/console"
	"github.com/vytor/fergusquiz/internal/quiz"
	"github.com/vytor/fergusquiz/internal/report"
	"github.com/vytor/fergusquiz/internal/roster"
)

// App is everything a command handler may touch.
type App struct {
	Console console.Console
	Roster  *roster.Roster
	Catalog catalog.Catalog
	Hasher  auth.PasswordHasher
	Quiz    *quiz.Engine
	Reports *report.Generator
}

// NewApp wires the quiz engine and report generator over the given roster
// and catalog. Reports go to reportPath unless a command names another file.
func NewApp(c console.Console, r *roster.Roster, cat catalog.Catalog, h auth.PasswordHasher, reportPath string) *App {
	return &App{
		Console: c,
		Roster:  r,
		Catalog: cat,
		Hasher:  h,
		Quiz:    quiz.NewEngine(c, r),
		Reports: report.NewGenerator(r, cat, reportPath),
	}
}
