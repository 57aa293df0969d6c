package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/javajack/cardxlsx"
	"github.com/javajack/cardxlsx/internal/clierr"
)

const cardJSON = `{
  "name": "Sprint Review",
  "desc": "Agenda",
  "idList": "list-1",
  "labels": [{"name": "meeting"}],
  "checklists": [{"name": "Prep", "pos": 1, "checkItems": [
    {"name": "slides", "pos": 1, "state": "complete"}
  ]}],
  "actions": [{"type": "commentCard", "date": "2024-02-01T10:00:00.000Z",
    "memberCreator": {"fullName": "Ada"}, "data": {"text": "ready"}}]
}`

// workspace chdirs into a temp dir holding a default preferences file with
// one list and the given card as card.json.
func workspace(t *testing.T, card string) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	prefs := cardxlsx.DefaultPreferences()
	prefs.Dates.ToZone = "UTC"
	prefs.Lists["list-1"] = "Done"
	require.NoError(t, prefs.Save(cardxlsx.DefaultPreferencesFile))
	require.NoError(t, os.WriteFile("card.json", []byte(card), 0o600))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	cliErr := classify(err)
	assert.Equal(t, code, cliErr.Code, "error: %v", err)
}

func TestRender_DefaultOutputName(t *testing.T) {
	dir := workspace(t, cardJSON)

	out, err := run(t, "card.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Done: file Sprint-Review.xlsx created")

	f, err := excelize.OpenFile(filepath.Join(dir, "Sprint-Review.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Card", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Sprint Review", v)
	v, err = f.GetCellValue("Card", "A4")
	require.NoError(t, err)
	assert.Equal(t, "In list Done", v)
}

func TestRender_ReplacesExistingOutput(t *testing.T) {
	workspace(t, cardJSON)
	require.NoError(t, os.WriteFile("out.xlsx", []byte("stale"), 0o600))

	_, err := run(t, "card.json", "-o", "out.xlsx")
	require.NoError(t, err)

	f, err := excelize.OpenFile("out.xlsx")
	require.NoError(t, err)
	f.Close()
}

func TestRender_OutputIsDirectory(t *testing.T) {
	workspace(t, cardJSON)
	require.NoError(t, os.Mkdir("out.xlsx", 0o755))

	_, err := run(t, "card.json", "-o", "out.xlsx")
	requireCode(t, err, clierr.OutputExists)
	assert.Contains(t, err.Error(), "You should rename or delete it.")
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name  string
		card  string
		args  []string
		setup func(t *testing.T)
		code  string
	}{
		{name: "no args", card: cardJSON, args: nil, code: clierr.Usage},
		{name: "too many args", card: cardJSON, args: []string{"a", "b"}, code: clierr.Usage},
		{name: "unknown flag", card: cardJSON, args: []string{"--bogus", "card.json"}, code: clierr.Usage},
		{name: "missing card", card: cardJSON, args: []string{"nope.json"}, code: clierr.NotFound},
		{name: "missing preferences", card: cardJSON, args: []string{"-c", "other.yml", "card.json"}, code: clierr.NotFound},
		{name: "malformed card", card: `{"name": `, args: []string{"card.json"}, code: clierr.ParseError},
		{name: "missing field", card: `{"name": "x"}`, args: []string{"card.json"}, code: clierr.ParseError},
		{
			name: "invalid preferences",
			card: cardJSON,
			args: []string{"card.json"},
			setup: func(t *testing.T) {
				require.NoError(t, os.WriteFile(cardxlsx.DefaultPreferencesFile, []byte("labels: {}\n"), 0o600))
			},
			code: clierr.InvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workspace(t, tt.card)
			if tt.setup != nil {
				tt.setup(t)
			}
			_, err := run(t, tt.args...)
			requireCode(t, err, tt.code)
		})
	}
}

func TestDescribeCommand(t *testing.T) {
	workspace(t, cardJSON)
	out, err := run(t, "describe", "card.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Card: Sprint Review")
	assert.Contains(t, out, "List: Done")
	assert.Contains(t, out, "Prep (1/1, 100%)")
	assert.Contains(t, out, "Ada: ready")

	_, err = os.Stat("Sprint-Review.xlsx")
	assert.True(t, os.IsNotExist(err), "describe does not write a workbook")
}

func TestValidateCommand(t *testing.T) {
	workspace(t, cardJSON)
	out, err := run(t, "validate", "card.json")
	require.NoError(t, err)
	assert.Contains(t, out, "OK: no issues")

	require.NoError(t, os.WriteFile("warn.json", []byte(`{"name": "w", "desc": "", "idList": "other"}`), 0o600))
	out, err = run(t, "validate", "warn.json")
	require.NoError(t, err)
	assert.Contains(t, out, "[WARN] idList:")
}

func TestValidateCommand_ErrorsExitSilently(t *testing.T) {
	workspace(t, cardJSON)
	prefs := cardxlsx.DefaultPreferences()
	prefs.Labels.Activity = ""
	require.NoError(t, prefs.Save("partial.yml"))

	out, err := run(t, "validate", "-c", "partial.yml", "card.json")
	var silent *clierr.SilentError
	require.ErrorAs(t, err, &silent)
	assert.Equal(t, 1, silent.Code)
	assert.Contains(t, out, "[ERROR] preferences:")
	assert.Contains(t, out, "labels.activity")

	// Rendering with the same file fails before drawing anything.
	_, err = run(t, "-c", "partial.yml", "card.json")
	requireCode(t, err, clierr.InvalidConfig)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created config.yml")

	prefs, err := cardxlsx.LoadPreferences(cardxlsx.DefaultPreferencesFile)
	require.NoError(t, err)
	assert.Equal(t, cardxlsx.DefaultPreferences().Labels, prefs.Labels)

	_, err = run(t, "init")
	requireCode(t, err, clierr.OutputExists)

	_, err = run(t, "init", "--force")
	require.NoError(t, err)

	_, err = run(t, "init", "custom.yml")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "custom.yml"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{fmt.Errorf("x: %w", cardxlsx.ErrCardNotFound), clierr.NotFound},
		{fmt.Errorf("x: %w", cardxlsx.ErrPreferencesNotFound), clierr.NotFound},
		{fmt.Errorf("x: %w", cardxlsx.ErrMalformedCard), clierr.ParseError},
		{fmt.Errorf("x: %w", cardxlsx.ErrMissingField), clierr.ParseError},
		{fmt.Errorf("x: %w", cardxlsx.ErrInvalidDate), clierr.ParseError},
		{fmt.Errorf("x: %w", cardxlsx.ErrInvalidPreferences), clierr.InvalidConfig},
		{fmt.Errorf("x: %w", cardxlsx.ErrOutputExists), clierr.OutputExists},
		{errors.New("boom"), clierr.InternalError},
		{clierr.New(clierr.Invalid, "kept"), clierr.Invalid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, classify(tt.err).Code, "%v", tt.err)
	}
}

// chdir changes the working directory to dir and restores it when the test
// finishes (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
