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
package screen

import (
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	te "github.com/timburks/te/types"
)

const helpText = "Ctrl+S = Save | Ctrl+Q = Quit | "

// The Screen draws the state of an editing session.
type Screen struct {
	size   te.Size // screen size
	offset te.Size // display offset
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(session te.Session) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()

	editSize := s.size
	editSize.Rows -= 2
	cursor := session.Cursor()
	s.offset = scroll(s.offset, cursor, editSize)

	lines := session.Lines()
	for i := 0; i < editSize.Rows; i++ {
		var line string
		if i+s.offset.Rows < len(lines) {
			line = visibleText(lines[i+s.offset.Rows], s.offset.Cols, editSize.Cols)
		} else {
			line = "~"
		}
		for j := 0; j < len(line); j++ {
			termbox.SetCell(j, i, rune(line[j]), termbox.ColorWhite, termbox.ColorBlack)
		}
	}
	s.RenderInfoBar(session)
	s.RenderMessageBar(session)
	termbox.SetCursor(cursor.Col-s.offset.Cols, cursor.Row-s.offset.Rows)
	termbox.Flush()
}

func (s *Screen) RenderInfoBar(session te.Session) {
	if s.size.Rows < 2 {
		return
	}
	text := infoText(session, s.size.Cols)
	for x, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) RenderMessageBar(session te.Session) {
	if s.size.Rows < 1 {
		return
	}
	line := runewidth.Truncate(session.Message(), s.size.Cols, "")
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
	}
}

// infoText is the reverse-video bar: key help, file name and a dirty
// marker, padded or cut to width.
func infoText(session te.Session, width int) string {
	text := helpText + session.Status()
	if session.Mode() == te.ModeConfirmQuit {
		text = session.Message()
	}
	return runewidth.FillRight(runewidth.Truncate(text, width, ""), width)
}

// visibleText returns the part of line that fits in width columns after
// skipping offset columns. Bytes that cannot be displayed are shown as '?'.
func visibleText(line string, offset, width int) string {
	if offset >= len(line) || width <= 0 {
		return ""
	}
	line = line[offset:]
	if len(line) > width {
		line = line[:width]
	}
	b := []byte(line)
	for i, c := range b {
		if c < 0x20 || c >= 0x7f {
			b[i] = '?'
		}
	}
	return string(b)
}

// scroll returns the display offset that keeps cursor inside an area of size.
func scroll(offset te.Size, cursor te.Point, size te.Size) te.Size {
	if cursor.Row < offset.Rows {
		offset.Rows = cursor.Row
	}
	if size.Rows > 0 && cursor.Row-offset.Rows >= size.Rows {
		offset.Rows = cursor.Row - size.Rows + 1
	}
	if cursor.Col < offset.Cols {
		offset.Cols = cursor.Col
	}
	if size.Cols > 0 && cursor.Col-offset.Cols >= size.Cols {
		offset.Cols = cursor.Col - size.Cols + 1
	}
	return offset
}

// GetNextEvent blocks until the terminal delivers an event.
func (s *Screen) GetNextEvent() *te.Event {
	return convert(termbox.PollEvent())
}

func convert(event termbox.Event) *te.Event {
	switch event.Type {
	case termbox.EventKey:
		if event.Ch != 0 {
			return &te.Event{Type: te.EventKey, Key: te.KeyNone, Ch: event.Ch}
		}
		return &te.Event{Type: te.EventKey, Key: key(event.Key)}
	case termbox.EventResize:
		termbox.Flush()
		return &te.Event{Type: te.EventResize}
	case termbox.EventError:
		return &te.Event{Type: te.EventError, Err: event.Err}
	default:
		return &te.Event{Type: te.EventNone}
	}
}

func key(k termbox.Key) te.Key {
	switch k {
	case termbox.KeyArrowDown:
		return te.KeyArrowDown
	case termbox.KeyArrowLeft:
		return te.KeyArrowLeft
	case termbox.KeyArrowRight:
		return te.KeyArrowRight
	case termbox.KeyArrowUp:
		return te.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return te.KeyBackspace
	case termbox.KeyEnter, termbox.KeyCtrlJ:
		return te.KeyEnter
	case termbox.KeyEsc:
		return te.KeyEsc
	case termbox.KeySpace:
		return te.KeySpace
	case termbox.KeyTab:
		return te.KeyTab
	case termbox.KeyCtrlQ:
		return te.KeyCtrlQ
	case termbox.KeyCtrlS:
		return te.KeyCtrlS
	default:
		return te.KeyUnsupported
	}
}
