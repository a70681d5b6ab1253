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

// MoveCursor moves the cursor one step in direction.
// Horizontal moves stop at the ends of the current row and never wrap.
// Vertical moves keep the column unless the destination row is shorter,
// in which case the cursor lands just after its last character.
func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case te.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		}
	case te.MoveRight:
		if e.Cursor.Col < e.Buffer.RowLength(e.Cursor.Row) {
			e.Cursor.Col++
		}
	case te.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.clampColumn()
		}
	case te.MoveDown:
		if e.Cursor.Row < e.Buffer.RowCount()-1 {
			e.Cursor.Row++
			e.clampColumn()
		}
	}
}

func (e *Editor) MoveLeft()  { e.MoveCursor(te.MoveLeft) }
func (e *Editor) MoveRight() { e.MoveCursor(te.MoveRight) }
func (e *Editor) MoveUp()    { e.MoveCursor(te.MoveUp) }
func (e *Editor) MoveDown()  { e.MoveCursor(te.MoveDown) }

func (e *Editor) clampColumn() {
	if rowLength := e.Buffer.RowLength(e.Cursor.Row); e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
}
