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
package types

// Session modes
const (
	ModeEdit        = 0
	ModeConfirmQuit = 1
	ModeQuit        = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Capacity defaults
const (
	DefaultMaxRows    = 1000
	DefaultMaxCols    = 200
	MaxFileNameLength = 30
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Limits bounds the shape of a buffer. Operations that would exceed
// either limit are rejected as no-ops.
type Limits struct {
	MaxRows int
	MaxCols int
}

func DefaultLimits() Limits {
	return Limits{MaxRows: DefaultMaxRows, MaxCols: DefaultMaxCols}
}

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventError  = 2
	EventNone   = 3
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
	Err  error // set for EventError
}

type Key int

const (
	KeyNone Key = iota // a character event, see Event.Ch
	KeyUnsupported
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
	KeyCtrlQ
	KeyCtrlS
)

// Session is the state a screen needs to draw the editor.
type Session interface {
	Lines() []string
	Cursor() Point
	Status() string
	Message() string
	Mode() int
}
