package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/wifi-whitelist/pkg/app/errors"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/form"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/service/mocks"
)

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func press(t *testing.T, m Model, key tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(Model), cmd
}

func TestModel_TypingAndFocus(t *testing.T) {
	m := New(mocks.NewService(t))

	m = typeText(t, m, "Home")
	m, _ = press(t, m, tea.KeyTab)
	m = typeText(t, m, "AA:BB")

	assert.Equal(t, "Home", m.inputs[ssidInput].Value())
	assert.Equal(t, "AA:BB", m.inputs[macInput].Value())
	assert.Equal(t, macInput, m.focusIndex)

	m, _ = press(t, m, tea.KeyTab)
	assert.Equal(t, submitButton, m.focusIndex)
	m, _ = press(t, m, tea.KeyTab)
	assert.Equal(t, ssidInput, m.focusIndex)
	m, _ = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, submitButton, m.focusIndex)
}

func TestModel_InvalidSubmitShowsErrorWithoutCommand(t *testing.T) {
	m := New(mocks.NewService(t))

	m, cmd := press(t, m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, form.PhaseError, m.Form().Status().Phase)
	assert.Contains(t, m.View(), "Enter an SSID or a MAC address (at least one).")
}

func TestModel_SubmitRunsRegistrarInCommand(t *testing.T) {
	svc := mocks.NewService(t)
	entry := &whitelist.Entry{ID: uuid.New()}
	svc.EXPECT().
		Register(mock.Anything, &whitelist.RegisterRequest{SSID: "guest", MAC: ""}).
		Return(entry, nil).Once()

	inserted := 0
	m := New(svc, form.WithOnInserted(func() { inserted++ }))
	m = typeText(t, m, "guest")

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.Form().Status().Loading())
	assert.Contains(t, m.View(), "Checking...")

	// keys are ignored while checking
	m = typeText(t, m, "more")
	assert.Equal(t, "guest", m.inputs[ssidInput].Value())
	_, again := press(t, m, tea.KeyEnter)
	assert.Nil(t, again)

	msg := m.register(&whitelist.RegisterRequest{SSID: "guest"})()
	next, _ := m.Update(msg)
	m = next.(Model)

	assert.Equal(t, form.PhaseSuccess, m.Form().Status().Phase)
	assert.Equal(t, 1, inserted)
	assert.Empty(t, m.inputs[ssidInput].Value())
	assert.Empty(t, m.inputs[macInput].Value())
	assert.Equal(t, []*whitelist.Entry{entry}, m.Inserted())
	assert.Contains(t, m.View(), "Device successfully whitelisted!")
}

func TestModel_RegistrarErrorKeepsInput(t *testing.T) {
	svc := mocks.NewService(t)
	m := New(svc)
	m = typeText(t, m, "office")

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)

	next, _ := m.Update(registeredMsg{err: apperrors.ConflictError(whitelist.ErrDuplicateSSID, whitelist.ErrDuplicateSSID.Error())})
	m = next.(Model)

	assert.Equal(t, form.PhaseError, m.Form().Status().Phase)
	assert.Equal(t, "office", m.inputs[ssidInput].Value())
	assert.Contains(t, m.View(), "This SSID is already whitelisted.")
	assert.NotContains(t, m.View(), "Checking...")

	next, _ = m.Update(registeredMsg{err: errors.New("late duplicate result")})
	m = next.(Model)
	assert.Contains(t, m.View(), "This SSID is already whitelisted.")
}

func TestModel_QuitKeys(t *testing.T) {
	m := New(mocks.NewService(t))

	_, cmd := press(t, m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = press(t, m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ViewChrome(t *testing.T) {
	view := New(mocks.NewService(t)).View()

	for _, want := range []string{
		"Whitelist device",
		"Add trusted networks",
		"Network SSID",
		"Device MAC",
		"Add to whitelist",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
