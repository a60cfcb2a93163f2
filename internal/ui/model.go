package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ngmaloney/surf-terminal/internal/conditions"
	"github.com/ngmaloney/surf-terminal/internal/models"
	"github.com/ngmaloney/surf-terminal/internal/readings"
	"github.com/ngmaloney/surf-terminal/internal/spots"
)

// AppState represents the current state of the application
type AppState int

const (
	StateIdle    AppState = iota // Nothing requested yet
	StateLoading                 // Fetch in flight, nothing stale on screen
	StateDisplay                 // Conditions for the selected spot
	StateError                   // Last fetch failed
)

// Config wires the model to its collaborators. Store may be nil.
type Config struct {
	Fetcher conditions.Fetcher
	Store   readings.Store
	Log     zerolog.Logger
	Spot    models.Spot
}

// Model represents the application's state
type Model struct {
	session session
	width   int
	height  int

	spotList   list.Model
	pickerOpen bool
	spinner    spinner.Model

	fetcher conditions.Fetcher
	store   readings.Store
	log     zerolog.Logger

	lastReading *models.Reading
}

// NewModel creates the model and queues the first fetch for cfg.Spot,
// or the default spot when none is given
func NewModel(cfg Config) Model {
	spot := cfg.Spot
	if spot.ID == "" {
		spot = spots.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	l := createSpotList(spots.List(), 40, 20)
	l.Select(spots.IndexOf(spot.ID))

	m := Model{
		session:  newSession(spot),
		spotList: l,
		spinner:  s,
		fetcher:  cfg.Fetcher,
		store:    cfg.Store,
		log:      cfg.Log,
	}
	if m.fetcher != nil {
		m.session.begin(spot)
	}
	return m
}

// SetConditions shows conditions without fetching (used by the demo)
func (m *Model) SetConditions(vm *models.ConditionsViewModel, fetchedAt time.Time) {
	m.session.show(vm, fetchedAt)
}

// SetLastReading sets the previous-reading footer
func (m *Model) SetLastReading(r *models.Reading) {
	m.lastReading = r
}

// State returns the current application state
func (m Model) State() AppState {
	return m.session.state
}

// Spot returns the selected spot
func (m Model) Spot() models.Spot {
	return m.session.spot
}

// Init starts the first fetch queued by NewModel
func (m Model) Init() tea.Cmd {
	if m.session.state != StateLoading {
		return nil
	}
	return tea.Batch(m.spinner.Tick, fetchConditions(m.fetcher, m.session.spot, m.session.generation))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.spotList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case conditionsFetchedMsg:
		return m.handleFetched(msg)

	case readingRecordedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("spot", msg.spotID).Msg("recording reading failed")
		}
		if msg.spotID == m.session.spot.ID {
			m.lastReading = msg.previous
		}
		return m, nil

	case spinner.TickMsg:
		if m.session.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.pickerOpen {
			return m.handlePicker(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleFetched(msg conditionsFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if !m.session.fail(msg.generation, msg.err) {
			m.log.Debug().Str("spot", msg.spot.ID).Msg("dropping stale fetch error")
			return m, nil
		}
		m.log.Warn().Err(msg.err).Str("spot", msg.spot.ID).Msg("fetch failed")
		return m, nil
	}

	if !m.session.succeed(msg.generation, msg.conditions, msg.fetchedAt) {
		m.log.Debug().Str("spot", msg.spot.ID).Msg("dropping stale conditions")
		return m, nil
	}

	m.log.Info().
		Str("spot", msg.spot.ID).
		Float64("wave_height", msg.conditions.Current.WaveHeight).
		Msg("conditions loaded")

	if m.store == nil {
		return m, nil
	}
	return m, recordReading(m.store, msg.spot.ID, msg.conditions, msg.fetchedAt)
}

// handleKey handles keyboard input outside the spot picker
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit

	case "s", "tab":
		m.spotList.Select(spots.IndexOf(m.session.spot.ID))
		m.pickerOpen = true
		return m, nil

	case "r":
		return m.selectSpot(m.session.spot)

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if spot, ok := spots.ByID(key); ok {
			return m.selectSpot(spot)
		}
	}
	return m, nil
}

// handlePicker handles keyboard input while the spot list is open
func (m Model) handlePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.pickerOpen = false
		return m, nil

	case "enter":
		m.pickerOpen = false
		if item, ok := m.spotList.SelectedItem().(spotItem); ok {
			return m.selectSpot(item.spot)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.spotList, cmd = m.spotList.Update(msg)
	return m, cmd
}

// selectSpot starts a fresh fetch for spot. Any fetch still in flight is
// superseded and its result will be dropped.
func (m Model) selectSpot(spot models.Spot) (tea.Model, tea.Cmd) {
	if m.fetcher == nil {
		return m, nil
	}
	gen := m.session.begin(spot)
	m.lastReading = nil
	m.log.Debug().Str("spot", spot.ID).Uint64("generation", gen).Msg("spot selected")
	return m, tea.Batch(m.spinner.Tick, fetchConditions(m.fetcher, spot, gen))
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.pickerOpen {
		help := helpStyle.Render("↑/↓: Navigate • Enter: Select • Esc: Back")
		return lipgloss.JoinVertical(lipgloss.Left, m.spotList.View(), help)
	}

	var body string
	switch m.session.state {
	case StateIdle:
		body = mutedStyle.Render("Press S to choose a beach")
	case StateLoading:
		body = m.viewLoading()
	case StateDisplay:
		body = m.viewDisplay()
	case StateError:
		body = m.viewError()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.session.spot, m.session.fetchedAt),
		"",
		body,
		helpStyle.Render("1-9/S: Beach • R: Refresh • Q: Quit"),
	)
}

// viewLoading renders the spinner; nothing from a previous spot is shown
func (m Model) viewLoading() string {
	return fmt.Sprintf("%s Loading beach data for %s...", m.spinner.View(), m.session.spot.Label)
}

// viewError renders the failed fetch
func (m Model) viewError() string {
	errorMsg := "An unknown error occurred"
	if m.session.err != nil {
		errorMsg = m.session.err.Error()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		errorTitleStyle.Render("✗ Could not load conditions"),
		"",
		errorMsg,
		"",
		mutedStyle.Render("Press R to retry"),
	)
}

// viewDisplay renders the recommendation, main card and weekly forecast
func (m Model) viewDisplay() string {
	vm := m.session.conditions
	if vm == nil {
		return mutedStyle.Render("No conditions available")
	}

	sections := []string{
		renderRecommendation(vm.Recommendation()),
		"",
		renderCurrent(m.session.spot, vm.Current),
		sectionHeaderStyle.Render("📅 Forecast for the coming week"),
		renderWeek(vm.Daily),
	}
	if footer := renderLastReading(m.lastReading, m.session.spot); footer != "" {
		sections = append(sections, "", footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// String implements fmt.Stringer for debugging
func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateDisplay:
		return "display"
	case StateError:
		return "error"
	}
	return "AppState(" + strconv.Itoa(int(s)) + ")"
}
