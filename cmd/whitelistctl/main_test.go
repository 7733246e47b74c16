package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/wifi-whitelist/internal/i18n"
	"github.com/chainsafe/wifi-whitelist/pkg/config"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/service/mocks"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/tui"
)

func newTestCLI(t *testing.T) (*cli, *mocks.Service) {
	t.Helper()
	svc := mocks.NewService(t)
	c := &cli{
		cfg:    &config.Config{UI: config.UIConfig{Language: "en"}},
		logger: zap.NewNop(),
		svc:    svc,
	}
	t.Cleanup(func() { _ = i18n.Init("en") })
	return c, svc
}

func execute(c *cli, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(c)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func strPtr(s string) *string { return &s }

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd(&cli{})

	for _, name := range []string{"form", "add", "list", "migrate"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, found.Name())
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("lang"))
}

func TestAddCmd_Success(t *testing.T) {
	c, svc := newTestCLI(t)
	svc.EXPECT().
		Register(mock.Anything, &whitelist.RegisterRequest{SSID: "Office", MAC: "AA:BB:CC:DD:EE:FF"}).
		Return(&whitelist.Entry{ID: uuid.New()}, nil).Once()

	out, err := execute(c, "add", "--ssid", "Office", "--mac", "AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)
	assert.Contains(t, out, "Device successfully whitelisted!")
}

func TestAddCmd_InvalidInputNeverCallsService(t *testing.T) {
	c, _ := newTestCLI(t)

	out, err := execute(c, "add", "--mac", "AABBCCDDEEFF")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "Invalid MAC format. Use AA:BB:CC:DD:EE:FF")
}

func TestAddCmd_DuplicateInGerman(t *testing.T) {
	c, svc := newTestCLI(t)
	svc.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(nil, whitelist.ErrDuplicateSSID).Once()

	out, err := execute(c, "--lang", "de", "add", "--ssid", "home")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "Diese SSID steht bereits auf der Whitelist.")
}

func TestListCmd(t *testing.T) {
	c, svc := newTestCLI(t)
	svc.EXPECT().List(mock.Anything).Return([]*whitelist.Entry{
		{ID: uuid.New(), SSID: strPtr("guest")},
		{ID: uuid.New(), MAC: strPtr("aa:bb:cc:dd:ee:ff")},
	}, nil).Once()

	out, err := execute(c, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "SSID")
	assert.Contains(t, out, "guest")
	assert.Contains(t, out, "aa:bb:cc:dd:ee:ff")
}

func TestListCmd_Empty(t *testing.T) {
	c, svc := newTestCLI(t)
	svc.EXPECT().List(mock.Anything).Return(nil, nil).Once()

	out, err := execute(c, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No whitelisted entries.")
}

func TestListCmd_Failure(t *testing.T) {
	c, svc := newTestCLI(t)
	svc.EXPECT().List(mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := execute(c, "list")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errReported)
}

func TestRootCmd_RunsForm(t *testing.T) {
	c, _ := newTestCLI(t)

	var started bool
	c.runProgram = func(m tea.Model) (tea.Model, error) {
		_, started = m.(tui.Model)
		return m, nil
	}

	out, err := execute(c)
	require.NoError(t, err)
	assert.True(t, started)
	assert.Empty(t, out)
}

func TestRootCmd_FormError(t *testing.T) {
	c, _ := newTestCLI(t)
	c.runProgram = func(tea.Model) (tea.Model, error) {
		return nil, errors.New("no tty")
	}

	_, err := execute(c, "form")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tty")
}

func TestCLI_SQLiteEndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfgYAML := "database:\n" +
		"  driver: sqlite\n" +
		"  database: " + filepath.Join(dir, "whitelist.db") + "\n" +
		"logging:\n" +
		"  level: error\n" +
		"  format: console\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o600))

	c := &cli{}
	t.Cleanup(c.close)
	t.Cleanup(func() { _ = i18n.Init("en") })

	_, err := execute(c, "--config", cfgPath, "migrate", "init")
	require.NoError(t, err)
	_, err = execute(c, "--config", cfgPath, "migrate", "up")
	require.NoError(t, err)

	out, err := execute(c, "--config", cfgPath, "add", "--ssid", " Home-WiFi ")
	require.NoError(t, err)
	assert.Contains(t, out, "Device successfully whitelisted!")

	out, err = execute(c, "--config", cfgPath, "add", "--ssid", "home-wifi")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "This SSID is already whitelisted.")

	_, err = execute(c, "--config", cfgPath, "add", "--mac", "AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)

	out, err = execute(c, "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "home-wifi")
	assert.Contains(t, out, "aa:bb:cc:dd:ee:ff")
	assert.Equal(t, "stderr", c.cfg.Logging.OutputPath)
}
