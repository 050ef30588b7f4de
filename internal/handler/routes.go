package handler

import (
	"verse-journal/internal/middleware"
	"verse-journal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every HTTP handler of the API.
type Handlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Verse   *VerseHandler
	Journal *JournalHandler
	Quiz    *QuizHandler
	Bible   *BibleHandler
	Health  *HealthHandler
}

// SetupRoutes mounts the API under /api. Everything except auth, Bible
// lookups and the health check requires an access token.
func SetupRoutes(app *fiber.App, h Handlers, authService service.AuthService) {
	vm := middleware.NewValidationMiddleware()
	protected := middleware.Protected(authService)

	if h.Health != nil {
		app.Get("/health", h.Health.Health)
	}

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	api.Get("/users/me", protected, h.User.GetMyProfile)
	api.Get("/journal", protected, h.Journal.GetJournal)

	verses := api.Group("/verses", protected)
	verses.Get("/", h.Verse.ListVerses)
	verses.Post("/", h.Verse.CreateVerse)
	verses.Get("/:id", vm.ValidateIDParam("id"), h.Verse.GetVerse)
	verses.Delete("/:id", vm.ValidateIDParam("id"), h.Verse.DeleteVerse)

	notes := api.Group("/sermon-notes", protected)
	notes.Get("/", h.Journal.ListSermonNotes)
	notes.Post("/", h.Journal.CreateSermonNote)
	notes.Delete("/:id", vm.ValidateIDParam("id"), h.Journal.DeleteSermonNote)

	quiet := api.Group("/quiet-time", protected)
	quiet.Get("/", h.Journal.ListQuietTime)
	quiet.Post("/", h.Journal.CreateQuietTime)
	quiet.Delete("/:id", vm.ValidateIDParam("id"), h.Journal.DeleteQuietTime)

	quiz := api.Group("/quiz", protected)
	quiz.Get("/attempts", vm.ValidatePagination(), h.User.GetMyAttempts)
	quiz.Post("/sessions", h.Quiz.StartSession)
	quiz.Post("/sessions/:sessionId/answer", vm.ValidateSessionParam(), h.Quiz.SubmitAnswer)
	quiz.Get("/sessions/:sessionId/reveal", vm.ValidateSessionParam(), h.Quiz.RevealAnswer)
	quiz.Post("/sessions/:sessionId/next", vm.ValidateSessionParam(), h.Quiz.NextQuestion)
	quiz.Delete("/sessions/:sessionId", vm.ValidateSessionParam(), h.Quiz.EndSession)

	bible := api.Group("/bible")
	bible.Get("/passage", h.Bible.GetPassage)
	bible.Get("/chapter", h.Bible.GetChapter)
	bible.Get("/books", h.Bible.ListBooks)
}
