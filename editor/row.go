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

// A row of text in the editor. The length of Text is the length of the row.
type Row struct {
	Text []byte
}

func NewRow(text string) *Row {
	return &Row{Text: []byte(text)}
}

func (r *Row) DisplayText() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// insert c at col, shifting the rest of the row right
func (r *Row) InsertChar(col int, c byte) {
	r.Text = append(r.Text, 0)
	copy(r.Text[col+1:], r.Text[col:])
	r.Text[col] = c
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) byte {
	c := r.Text[col]
	r.Text = append(r.Text[:col], r.Text[col+1:]...)
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	after := make([]byte, len(r.Text)-col)
	copy(after, r.Text[col:])
	r.Text = r.Text[:col]
	return &Row{Text: after}
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.Text = append(r.Text, other.Text...)
}
