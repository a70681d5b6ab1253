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
	"errors"
	"fmt"
	"io/fs"
	"os"

	te "github.com/timburks/te/types"
)

// ErrNoFileName is returned when a buffer is written without a file name.
var ErrNoFileName = errors.New("no file name")

// ReadFile loads path into the buffer and resets the cursor.
// A file that does not exist loads as an empty buffer.
// truncated reports whether the file did not fit within the buffer limits.
func (e *Editor) ReadFile(path string) (truncated bool, err error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		b, err = nil, nil
	}
	if err != nil {
		return false, err
	}
	truncated = e.Buffer.LoadBytes(b)
	e.Buffer.SetFileName(path)
	e.Cursor = te.Point{}
	return truncated, nil
}

// WriteFile saves the buffer to path.
func (e *Editor) WriteFile(path string) error {
	if path == "" {
		return ErrNoFileName
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = f.Write(e.Buffer.Bytes())
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
