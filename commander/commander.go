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
	"fmt"
	"log"

	"github.com/timburks/te/editor"
	te "github.com/timburks/te/types"
)

// ErrSave is wrapped by the error returned when the buffer cannot be saved.
// The session cannot continue safely after it.
var ErrSave = errors.New("save failed")

// ErrTerminal is wrapped by the error returned when the terminal stops
// delivering input.
var ErrTerminal = errors.New("terminal failed")

const confirmQuitMessage = "do you really want to quit without saving? (y/n)"

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor  *editor.Editor
	mode    int    // session mode
	message string // status message
	dirty   bool   // true when the buffer has unsaved changes
}

func NewCommander(e *editor.Editor, fileName string) *Commander {
	e.Buffer.SetFileName(fileName)
	return &Commander{editor: e, mode: te.ModeEdit}
}

func (c *Commander) fileName() string {
	return c.editor.Buffer.GetFileName()
}

// Load reads the session's file into the editor.
func (c *Commander) Load() error {
	truncated, err := c.editor.ReadFile(c.fileName())
	if err != nil {
		return err
	}
	c.dirty = false
	if truncated {
		limits := c.editor.Buffer.Limits()
		c.message = fmt.Sprintf("%s truncated to fit %d rows of %d columns",
			c.fileName(), limits.MaxRows, limits.MaxCols)
		log.Printf("%s", c.message)
	}
	return nil
}

func (c *Commander) Mode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != te.ModeQuit
}

// Dirty reports whether the buffer has changed since it was last loaded
// or saved.
func (c *Commander) Dirty() bool {
	return c.dirty
}

func (c *Commander) Message() string {
	return c.message
}

func (c *Commander) Lines() []string {
	return c.editor.Lines()
}

func (c *Commander) Cursor() te.Point {
	return c.editor.GetCursor()
}

// Status names the file and marks it when there are unsaved changes.
func (c *Commander) Status() string {
	if c.dirty {
		return c.fileName() + " *"
	}
	return c.fileName()
}

// These edits mark the session dirty only when they change the buffer.

func (c *Commander) TypeChar(ch rune) bool {
	return c.edited(c.editor.TypeChar(ch))
}

func (c *Commander) NewLine() bool {
	return c.edited(c.editor.NewLine())
}

func (c *Commander) Backspace() bool {
	return c.edited(c.editor.Backspace())
}

func (c *Commander) edited(changed bool) bool {
	if changed {
		c.dirty = true
	}
	return changed
}

func (c *Commander) ProcessEvent(event *te.Event) error {
	switch event.Type {
	case te.EventKey:
		return c.ProcessKey(event)
	case te.EventError:
		return fmt.Errorf("%w: %v", ErrTerminal, event.Err)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *te.Event) error {
	switch c.mode {
	case te.ModeEdit:
		return c.ProcessKeyEditMode(event)
	case te.ModeConfirmQuit:
		return c.ProcessKeyConfirmQuitMode(event)
	}
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *te.Event) error {
	e := c.editor
	switch event.Key {
	case te.KeyArrowUp:
		e.MoveUp()
	case te.KeyArrowDown:
		e.MoveDown()
	case te.KeyArrowLeft:
		e.MoveLeft()
	case te.KeyArrowRight:
		e.MoveRight()
	case te.KeyEnter:
		c.NewLine()
	case te.KeyBackspace:
		c.Backspace()
	case te.KeySpace:
		c.TypeChar(' ')
	case te.KeyCtrlS:
		_, err := c.Save()
		return err
	case te.KeyCtrlQ:
		c.Quit()
	case te.KeyNone:
		if event.Ch != 0 {
			c.TypeChar(event.Ch)
		}
	}
	return nil
}

func (c *Commander) ProcessKeyConfirmQuitMode(event *te.Event) error {
	switch event.Ch {
	case 'y', 'Y':
		log.Printf("quitting with unsaved changes to %s", c.fileName())
		c.mode = te.ModeQuit
	case 'n', 'N':
		c.message = ""
		c.mode = te.ModeEdit
	}
	return nil
}

// Quit ends the session, or asks for confirmation first when there are
// unsaved changes.
func (c *Commander) Quit() {
	if c.dirty {
		c.message = confirmQuitMessage
		c.mode = te.ModeConfirmQuit
		return
	}
	c.mode = te.ModeQuit
}

// Save writes the buffer to the session's file and returns the number
// of rows written. The session stays dirty if the write fails.
func (c *Commander) Save() (int, error) {
	if err := c.editor.WriteFile(c.fileName()); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSave, err)
	}
	c.dirty = false
	n := c.editor.Buffer.RowCount()
	c.message = fmt.Sprintf("Saved %d lines to %s", n, c.fileName())
	log.Printf("%s", c.message)
	return n, nil
}
