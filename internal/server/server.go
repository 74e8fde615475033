package server

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/anrokk/SportMap-Client/internal/api"
	"github.com/anrokk/SportMap-Client/internal/auth"
	"github.com/anrokk/SportMap-Client/internal/config"
	"github.com/anrokk/SportMap-Client/internal/credstore"
	"github.com/anrokk/SportMap-Client/internal/gpsdata"
	"github.com/anrokk/SportMap-Client/internal/guard"
)

var validate = validator.New()

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	Auth  *auth.Store
	Data  *gpsdata.Store
	Creds credstore.Store
}

func NewServer(cfg config.Config, authStore *auth.Store, dataStore *gpsdata.Store, creds credstore.Store) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		Auth:  authStore,
		Data:  dataStore,
		Creds: creds,
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	guestOnly := guard.Middleware(guard.RequiresGuest, s.Auth, s.Creds)
	requiresAuth := guard.Middleware(guard.RequiresAuth, s.Auth, s.Creds)
	public := guard.Middleware(guard.Public, s.Auth, s.Creds)

	s.App.Get("/", public, s.home)
	s.App.Get("/login", guestOnly, s.loginPage)
	s.App.Post("/login", guestOnly, s.login)
	s.App.Get("/register", guestOnly, s.registerPage)
	s.App.Post("/register", guestOnly, s.register)
	s.App.Post("/logout", s.logout)

	mapGroup := s.App.Group("/map", requiresAuth)
	mapGroup.Get("/", s.mapPage)
	mapGroup.Get("/session-types", s.sessionTypes)
	mapGroup.Get("/location-types", s.locationTypes)
	mapGroup.Post("/sessions", s.createSession)
	mapGroup.Get("/sessions/:id", s.sessionDetail)
	mapGroup.Put("/sessions/:id", s.updateSession)
	mapGroup.Delete("/sessions/:id", s.deleteSession)
}

func (s *Server) home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"authenticated": s.Auth.IsAuthenticated(),
		"displayName":   s.Auth.UserDisplayName(),
	})
}

func (s *Server) loginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"loginError": s.Auth.LoginError(),
		"isLoading":  s.Auth.IsLoading(),
	})
}

func (s *Server) login(c *fiber.Ctx) error {
	var req api.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if !s.Auth.Login(c.Context(), req.Email, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, s.Auth.LoginError())
	}
	return c.Redirect(returnTarget(c), fiber.StatusFound)
}

func (s *Server) registerPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"registerError": s.Auth.RegisterError(),
		"isLoading":     s.Auth.IsLoading(),
	})
}

func (s *Server) register(c *fiber.Ctx) error {
	var req api.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if !s.Auth.Register(c.Context(), req.Email, req.Password, req.FirstName, req.LastName) {
		return fiber.NewError(fiber.StatusBadRequest, s.Auth.RegisterError())
	}
	return c.Redirect(returnTarget(c), fiber.StatusFound)
}

func (s *Server) logout(c *fiber.Ctx) error {
	s.Auth.Logout(c.Context())
	s.Data.ClearSelection()
	return c.Redirect("/login", fiber.StatusFound)
}

func (s *Server) mapPage(c *fiber.Ctx) error {
	s.Data.FetchSessions(c.Context())
	return c.JSON(fiber.Map{
		"sessions":    s.Data.Sessions(),
		"error":       s.Data.LastError(),
		"displayName": s.Auth.UserDisplayName(),
	})
}

func (s *Server) sessionDetail(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	s.Data.FetchSessionDetails(c.Context(), id)
	session := s.Data.SelectedSession()
	if session == nil {
		return fiber.NewError(fiber.StatusNotFound, s.Data.LastError())
	}
	s.Data.FetchLocations(c.Context(), id)

	return c.JSON(fiber.Map{
		"session":         session,
		"locations":       s.Data.SelectedSessionLocations(),
		"track":           s.Data.TrackCoordinates(),
		"trackDistanceKm": s.Data.TrackDistanceKm(),
		"error":           s.Data.LastError(),
	})
}

func (s *Server) createSession(c *fiber.Ctx) error {
	var req api.GpsSessionCreate
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	created, err := s.Data.CreateSession(c.Context(), req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) updateSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req api.GpsSessionUpdate
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.ID = id
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	updated, err := s.Data.UpdateSession(c.Context(), id, req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(updated)
}

func (s *Server) deleteSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	if err := s.Data.DeleteSession(c.Context(), id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) sessionTypes(c *fiber.Ctx) error {
	s.Data.FetchSessionTypes(c.Context())
	return c.JSON(fiber.Map{
		"sessionTypes": s.Data.SessionTypes(),
		"error":        s.Data.LastError(),
	})
}

func (s *Server) locationTypes(c *fiber.Ctx) error {
	s.Data.FetchLocationTypes(c.Context())
	return c.JSON(fiber.Map{
		"locationTypes": s.Data.LocationTypes(),
		"error":         s.Data.LastError(),
	})
}

func sessionID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}
	return id, nil
}

// returnTarget honors the redirect query the guard attached, but only for
// local paths.
func returnTarget(c *fiber.Ctx) string {
	target := c.Query("redirect")
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return target
	}
	return "/map"
}
