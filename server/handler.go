package server

import (
	"fmt"
	"time"

	"tecla/adapters/storage"
	"tecla/application"
	"tecla/domain"
	"tecla/logging"
	"tecla/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
)

// sessionModel wraps ui.Model to handle resource cleanup
type sessionModel struct {
	*ui.Model
	repo      *storage.SQLiteRepository
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check for quit message to trigger cleanup
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		if err := s.repo.Close(); err != nil {
			logging.Logger.Error("Failed to close repository for SSH session",
				"error", err,
				"session_id", s.sessionID,
				"duration", duration.String())
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	// Open shared database
	repo, err := storage.NewSQLiteRepository(s.dbPath)
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	// Validation context follows the lenient setting
	ctx := domain.DefaultValidationContext()
	if s.settings.Lenient != nil && *s.settings.Lenient {
		ctx = domain.LenientValidationContext()
	}
	validator := domain.Validator{Context: ctx, Reserved: s.settings.ReservedFunc()}

	service := application.NewBindingService(repo, validator)
	model := ui.NewModel(service, validator)

	wrappedModel := &sessionModel{
		Model:     model,
		repo:      repo,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
