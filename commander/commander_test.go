//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package commander

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/te/editor"
	te "github.com/timburks/te/types"
)

func setup(t *testing.T, text string) (*Commander, string) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if text != "" {
		require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	}
	c := NewCommander(editor.NewEditor(), path)
	require.NoError(t, c.Load())
	return c, path
}

func typeKeys(t *testing.T, c *Commander, text string) {
	for _, ch := range text {
		require.NoError(t, c.ProcessEvent(&te.Event{Type: te.EventKey, Ch: ch}))
	}
}

func press(t *testing.T, c *Commander, key te.Key) {
	require.NoError(t, c.ProcessEvent(&te.Event{Type: te.EventKey, Key: key}))
}

func TestEditingKeys(t *testing.T) {
	c, _ := setup(t, "")
	typeKeys(t, c, "hi")
	press(t, c, te.KeySpace)
	typeKeys(t, c, "there")
	press(t, c, te.KeyEnter)
	typeKeys(t, c, "xy")
	press(t, c, te.KeyBackspace)
	press(t, c, te.KeyArrowUp)
	press(t, c, te.KeyArrowRight)
	press(t, c, te.KeyArrowLeft)
	press(t, c, te.KeyArrowLeft)
	press(t, c, te.KeyArrowDown)
	assert.Equal(t, []string{"hi there", "x"}, c.Lines())
	assert.Equal(t, te.Point{Row: 1, Col: 0}, c.Cursor())
}

func TestUnsupportedKeysAreIgnored(t *testing.T) {
	c, _ := setup(t, "abc\n")
	press(t, c, te.KeyTab)
	press(t, c, te.KeyEsc)
	press(t, c, te.KeyUnsupported)
	require.NoError(t, c.ProcessEvent(&te.Event{Type: te.EventResize}))
	assert.Equal(t, []string{"abc"}, c.Lines())
	assert.Equal(t, te.ModeEdit, c.Mode())
	assert.Equal(t, "", c.Message())
}

func TestStatusShowsDirty(t *testing.T) {
	c, path := setup(t, "")
	assert.Equal(t, path, c.Status())
	typeKeys(t, c, "a")
	assert.Equal(t, path+" *", c.Status())
	press(t, c, te.KeyCtrlS)
	assert.Equal(t, path, c.Status())
	assert.Equal(t, "Saved 1 lines to "+path, c.Message())

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(written))
}

func TestQuitWhenClean(t *testing.T) {
	c, _ := setup(t, "abc\n")
	press(t, c, te.KeyCtrlQ)
	assert.Equal(t, te.ModeQuit, c.Mode())
	assert.False(t, c.IsRunning())
}

func TestQuitWhenDirtyAsksFirst(t *testing.T) {
	c, path := setup(t, "abc\n")
	typeKeys(t, c, "X")
	press(t, c, te.KeyCtrlQ)
	assert.Equal(t, te.ModeConfirmQuit, c.Mode())
	assert.Equal(t, confirmQuitMessage, c.Message())

	// only y and n are answers
	typeKeys(t, c, "q")
	press(t, c, te.KeyEnter)
	press(t, c, te.KeyCtrlS)
	assert.Equal(t, te.ModeConfirmQuit, c.Mode())
	assert.Equal(t, []string{"Xabc"}, c.Lines())

	typeKeys(t, c, "Y")
	assert.False(t, c.IsRunning())

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc\n", string(written))
}

func TestDeclineQuitReturnsToEditing(t *testing.T) {
	c, _ := setup(t, "abc\n")
	press(t, c, te.KeyArrowRight)
	typeKeys(t, c, "X")
	press(t, c, te.KeyCtrlQ)
	typeKeys(t, c, "n")
	assert.Equal(t, te.ModeEdit, c.Mode())
	assert.True(t, c.IsRunning())
	assert.Equal(t, []string{"aXbc"}, c.Lines())
	assert.Equal(t, te.Point{Row: 0, Col: 2}, c.Cursor())
	assert.Equal(t, "", c.Message())

	// editing resumes
	typeKeys(t, c, "Y")
	assert.Equal(t, []string{"aXYbc"}, c.Lines())
}

func TestSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "notes.txt")
	c := NewCommander(editor.NewEditor(), path)
	require.NoError(t, c.Load())
	typeKeys(t, c, "a")
	err := c.ProcessEvent(&te.Event{Type: te.EventKey, Key: te.KeyCtrlS})
	assert.ErrorIs(t, err, ErrSave)
	assert.Equal(t, path+" *", c.Status())
	assert.Equal(t, te.ModeEdit, c.Mode())
}

func TestLoadReportsTruncation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tall.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n3\n"), 0644))
	c := NewCommander(editor.NewEditorWithLimits(te.Limits{MaxRows: 2, MaxCols: 10}), path)
	require.NoError(t, c.Load())
	assert.Equal(t, []string{"1", "2"}, c.Lines())
	assert.Equal(t, path+" truncated to fit 2 rows of 10 columns", c.Message())
	assert.Equal(t, path, c.Status())
}

func TestLoadFailure(t *testing.T) {
	c := NewCommander(editor.NewEditor(), t.TempDir())
	assert.Error(t, c.Load())
}

func TestRejectedEditsLeaveSessionClean(t *testing.T) {
	c, path := setup(t, "abc\n")
	press(t, c, te.KeyBackspace)
	press(t, c, te.KeyTab)
	press(t, c, te.KeyArrowDown)
	press(t, c, te.KeyArrowRight)
	typeKeys(t, c, "\x01é")
	assert.False(t, c.Dirty())
	assert.Equal(t, path, c.Status())

	press(t, c, te.KeyCtrlQ)
	assert.False(t, c.IsRunning())
}

func TestRejectedMergeLeavesSessionClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc\ndef\n"), 0644))
	c := NewCommander(editor.NewEditorWithLimits(te.Limits{MaxRows: 10, MaxCols: 5}), path)
	require.NoError(t, c.Load())
	press(t, c, te.KeyArrowDown)
	assert.False(t, c.Backspace())
	assert.False(t, c.Dirty())
	assert.Equal(t, te.Point{Row: 1, Col: 0}, c.Cursor())
}

func TestLoadClearsDirty(t *testing.T) {
	c, _ := setup(t, "abc\n")
	require.True(t, c.NewLine())
	assert.True(t, c.Dirty())
	require.NoError(t, c.Load())
	assert.False(t, c.Dirty())
	assert.Equal(t, []string{"abc"}, c.Lines())
}

func TestFileNameComesFromBuffer(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e, "notes.txt")
	assert.Equal(t, "notes.txt", e.Buffer.GetFileName())
	assert.Equal(t, "notes.txt", c.Status())
}

func TestTerminalErrorEndsSession(t *testing.T) {
	c, _ := setup(t, "")
	err := c.ProcessEvent(&te.Event{Type: te.EventError, Err: errors.New("input closed")})
	assert.ErrorIs(t, err, ErrTerminal)
	assert.Contains(t, err.Error(), "input closed")
}
