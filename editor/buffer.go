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

// A Buffer holds the rows of the file being edited.
// It always contains at least one row, and every mutation is checked
// against its Limits. A mutation that would exceed a limit leaves the
// buffer unchanged and reports false.
type Buffer struct {
	rows     []*Row
	limits   te.Limits
	fileName string
}

func NewBuffer(limits te.Limits) *Buffer {
	b := &Buffer{limits: limits}
	b.rows = []*Row{NewRow("")}
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) Limits() te.Limits {
	return b.limits
}

func (b *Buffer) RowCount() int {
	return len(b.rows)
}

func (b *Buffer) RowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) RowText(i int) string {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].DisplayText()
	}
	return ""
}

// Lines returns a copy of the text of every row, in order.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.DisplayText()
	}
	return lines
}

func (b *Buffer) validPosition(row, col int) bool {
	return row >= 0 && row < len(b.rows) && col >= 0 && col <= b.rows[row].Length()
}

// IsPrintable reports whether c can be stored in a row.
func IsPrintable(c rune) bool {
	return c >= 0x20 && c < 0x7f
}

// InsertCharacter inserts c at col in row.
// One column of every row is held in reserve, so a row accepts
// characters only while it is shorter than MaxCols-1.
func (b *Buffer) InsertCharacter(row, col int, c rune) bool {
	if !IsPrintable(c) || !b.validPosition(row, col) {
		return false
	}
	if b.rows[row].Length() >= b.limits.MaxCols-1 {
		return false
	}
	b.rows[row].InsertChar(col, byte(c))
	return true
}

// DeleteCharacter removes the character at col in row.
func (b *Buffer) DeleteCharacter(row, col int) bool {
	if row < 0 || row >= len(b.rows) || col < 0 || col >= b.rows[row].Length() {
		return false
	}
	b.rows[row].DeleteChar(col)
	return true
}

// Split moves the text of row from col onward into a new row below it.
func (b *Buffer) Split(row, col int) bool {
	if !b.validPosition(row, col) || len(b.rows) >= b.limits.MaxRows {
		return false
	}
	newRow := b.rows[row].Split(col)
	i := row + 1
	// add a dummy row at the end, then move rows to make room
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = newRow
	return true
}

// Merge appends row to the row above it and removes row.
// The merge is rejected if the joined row would be wider than MaxCols.
func (b *Buffer) Merge(row int) bool {
	if row < 1 || row >= len(b.rows) {
		return false
	}
	if b.rows[row-1].Length()+b.rows[row].Length() > b.limits.MaxCols {
		return false
	}
	b.rows[row-1].Join(b.rows[row])
	b.rows = append(b.rows[:row], b.rows[row+1:]...)
	return true
}

// LoadBytes replaces the contents of the buffer with the lines in bs.
// Rows past MaxRows and columns past MaxCols are dropped; truncated
// reports whether anything was dropped.
func (b *Buffer) LoadBytes(bs []byte) (truncated bool) {
	rows := make([]*Row, 0)
	start := 0
	for i := 0; i <= len(bs); i++ {
		if i < len(bs) && bs[i] != '\n' {
			continue
		}
		if i == len(bs) && start == len(bs) && len(rows) > 0 {
			// the final newline does not start another row
			break
		}
		line := bs[start:i]
		start = i + 1
		if len(rows) == b.limits.MaxRows {
			truncated = true
			break
		}
		if len(line) > b.limits.MaxCols {
			line = line[:b.limits.MaxCols]
			truncated = true
		}
		text := make([]byte, len(line))
		copy(text, line)
		rows = append(rows, &Row{Text: text})
	}
	if len(rows) == 0 {
		rows = append(rows, NewRow(""))
	}
	b.rows = rows
	return truncated
}

// Bytes returns the buffer as text with every row terminated by a newline.
func (b *Buffer) Bytes() []byte {
	size := 0
	for _, row := range b.rows {
		size += row.Length() + 1
	}
	bs := make([]byte, 0, size)
	for _, row := range b.rows {
		bs = append(bs, row.Text...)
		bs = append(bs, '\n')
	}
	return bs
}
