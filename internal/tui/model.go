package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-card-validator/internal/controller"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusTTL       = 2 * time.Second
	maxDetailLength = 60
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// model renders the controller. It never caches controller state: every
// View reads a fresh snapshot, so a late refresh can not show a result that
// belongs to older input.
type model struct {
	ctx  context.Context
	ctrl *controller.Controller

	// changed receives a signal after every controller transition.
	changed <-chan struct{}

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	build        models.AppBuildInfo
	service      models.ServiceStatus
	serviceKnown bool

	status   string
	showInfo bool

	logger *logger.Logger
}

func newModel(ctx context.Context, ctrl *controller.Controller, changed <-chan struct{}, inputLimit int, build models.AppBuildInfo, logger *logger.Logger) model {
	in := textinput.New()
	in.Placeholder = "1234 5678 9012 3456"
	in.Prompt = ""
	in.CharLimit = inputLimit
	in.Width = inputLimit
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:     ctx,
		ctrl:    ctrl,
		changed: changed,
		input:   in,
		spinner: s,
		help:    help.New(),
		keys:    newKeyMap(),
		build:   build,
		logger:  logger,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChange(m.changed))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case stateChangedMsg:
		return m, waitForChange(m.changed)

	case serviceStatusMsg:
		m.service = msg.status
		m.serviceKnown = true
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied to clipboard"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.State().Phase != controller.PhaseInFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(msg, m.keys.clear) || key.Matches(msg, m.keys.submit) || key.Matches(msg, m.keys.buildInfo) {
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.buildInfo):
		m.showInfo = true
		return m, nil

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.submit):
		req, ok := m.ctrl.SubmitRequested()
		if !ok {
			return m, nil
		}
		return m, tea.Batch(m.spinner.Tick, cmdExecute(m.ctx, m.ctrl, req))

	case key.Matches(msg, m.keys.clear):
		m.ctrl.ClearRequested()
		m.input.SetValue("")
		return m, nil

	case key.Matches(msg, m.keys.copy):
		number := m.ctrl.State().Number.Formatted
		if number == "" {
			m.status = "Nothing to copy"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(number)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		st := m.ctrl.InputChanged(m.input.Value())
		m.input.SetValue(st.Number.Formatted)
		if m.input.Value() != st.Number.Formatted {
			// the separators pushed the value over the character limit
			st = m.ctrl.InputChanged(m.input.Value())
			m.input.SetValue(st.Number.Formatted)
		}
		m.input.CursorEnd()
	}
	return m, cmd
}

func (m model) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.build))
	}

	st := m.ctrl.State()

	var b strings.Builder
	b.WriteString("Card number\n")
	b.WriteString(inputBoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	line := helpStyle.Render(st.HelperText())
	if st.Phase == controller.PhaseSucceeded && st.HasKnownCardType() {
		line += "  " + issuerStyle.Render(st.CardType)
	}
	b.WriteString(line)
	b.WriteString("\n\n")

	if st.Phase == controller.PhaseInFlight {
		b.WriteString(m.spinner.View() + " Validating...")
	} else {
		b.WriteString(renderBanner(st.Banner()))
	}
	b.WriteString("\n\n")

	b.WriteString(m.serviceLine())
	if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status))
	}

	keys := m.keys
	keys.submit.SetEnabled(st.CanSubmit())
	keys.copy.SetEnabled(!st.Number.Empty())

	return appStyle.Render(renderPage("Credit Card Validator", b.String(), m.help.View(keys)))
}

func (m model) serviceLine() string {
	if !m.serviceKnown {
		return helpStyle.Render("Service: checking...")
	}
	if m.service.Healthy {
		return "Service: " + successStyle.Render("online")
	}
	detail := fitText(humanizeServiceDetail(m.service.Detail), maxDetailLength)
	return "Service: " + warningStyle.Render("offline") + helpStyle.Render(" ("+detail+")")
}

func renderBanner(b controller.Banner) string {
	switch b.Kind {
	case controller.BannerSuccess:
		return successStyle.Render(b.Text)
	case controller.BannerInvalid:
		return warningStyle.Render(b.Text)
	case controller.BannerError:
		return errorStyle.Render(b.Text)
	default:
		return ""
	}
}

// waitForChange blocks until the controller signals a transition.
func waitForChange(changed <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changed; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func cmdExecute(ctx context.Context, ctrl *controller.Controller, req controller.Request) tea.Cmd {
	return func() tea.Msg {
		ctrl.Execute(ctx, req)
		return nil
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
