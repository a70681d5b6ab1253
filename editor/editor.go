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
package editor

import (
	te "github.com/timburks/te/types"
)

// The Editor applies edits to a Buffer at the cursor position.
type Editor struct {
	Cursor te.Point // cursor position
	Buffer *Buffer  // the buffer being edited
}

func NewEditor() *Editor {
	return NewEditorWithLimits(te.DefaultLimits())
}

func NewEditorWithLimits(limits te.Limits) *Editor {
	return &Editor{Buffer: NewBuffer(limits)}
}

func (e *Editor) GetCursor() te.Point {
	return e.Cursor
}

func (e *Editor) Lines() []string {
	return e.Buffer.Lines()
}

// TypeChar inserts c at the cursor and advances past it.
func (e *Editor) TypeChar(c rune) bool {
	if !e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c) {
		return false
	}
	e.Cursor.Col++
	return true
}

// NewLine splits the current row at the cursor and moves to the start
// of the new row.
func (e *Editor) NewLine() bool {
	if !e.Buffer.Split(e.Cursor.Row, e.Cursor.Col) {
		return false
	}
	e.Cursor.Row++
	e.Cursor.Col = 0
	return true
}

// Backspace deletes the character before the cursor, or joins the
// current row to the previous one when the cursor is at the start of a row.
func (e *Editor) Backspace() bool {
	switch {
	case e.Cursor.Col > 0:
		if !e.Buffer.DeleteCharacter(e.Cursor.Row, e.Cursor.Col-1) {
			return false
		}
		e.Cursor.Col--
	case e.Cursor.Row > 0:
		previousLength := e.Buffer.RowLength(e.Cursor.Row - 1)
		if !e.Buffer.Merge(e.Cursor.Row) {
			return false
		}
		e.Cursor.Row--
		e.Cursor.Col = previousLength
	default:
		return false
	}
	return true
}
