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
	"log"

	"github.com/steelseries/golisp"

	te "github.com/timburks/te/types"
)

// golisp primitives are global, so scripts act on the commander that
// is currently evaluating one.
var scripted *Commander

func init() {
	golisp.MakePrimitiveFunction("type-text", "1", TypeTextImpl)
	golisp.MakePrimitiveFunction("split-line", "0", SplitLineImpl)
	golisp.MakePrimitiveFunction("backspace", "0", BackspaceImpl)
	golisp.MakePrimitiveFunction("move-cursor", "1", MoveCursorImpl)
	golisp.MakePrimitiveFunction("save-file", "0", SaveFileImpl)
	golisp.MakePrimitiveFunction("quit-editor", "0", QuitEditorImpl)
	golisp.MakePrimitiveFunction("cursor-row", "0", CursorRowImpl)
	golisp.MakePrimitiveFunction("cursor-col", "0", CursorColImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("line-text", "1", LineTextImpl)
	golisp.MakePrimitiveFunction("dirty?", "0", DirtyImpl)
}

var errNoSession = errors.New("no editing session")

func session() (*Commander, error) {
	if scripted == nil {
		return nil, errNoSession
	}
	return scripted, nil
}

// ParseEval evaluates a script against this commander and returns the
// printed value of its last expression.
func (c *Commander) ParseEval(script string) (string, error) {
	scripted = c
	defer func() { scripted = nil }()
	value, err := golisp.ParseAndEvalAll(script)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	return golisp.String(value), nil
}

func TypeTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := session()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("type-text requires a string argument")
	}
	typed := 0
	for _, ch := range golisp.StringValue(val) {
		switch ch {
		case '\n':
			if c.NewLine() {
				typed++
			}
		default:
			if c.TypeChar(ch) {
				typed++
			}
		}
	}
	return golisp.IntegerWithValue(int64(typed)), nil
}

func SplitLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := session()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.NewLine()), nil
}

func BackspaceImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := session()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.Backspace()), nil
}

func MoveCursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := session()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) && !golisp.SymbolP(val) {
		return nil, errors.New("move-cursor requires a direction")
	}
	switch golisp.StringValue(val) {
	case "up":
		c.editor.MoveCursor(te.MoveUp)
	case "down":
		c.editor.MoveCursor(te.MoveDown)
	case "left":
		c.editor.MoveCursor(te.MoveLeft)
	case "right":
		c.editor.MoveCursor(te.MoveRight)
	default:
		return nil, errors.New("move-cursor direction must be up, down, left or right")
	}
	return golisp.BooleanWithValue(true), nil
}

func SaveFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := session()
	if err != nil {
		return nil, err
	}
	n, err := c.Save()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(n)), nil
}

func QuitEditorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := session()
	if err != nil {
		return nil, err
	}
	c.Quit()
	return golisp.BooleanWithValue(!c.IsRunning()), nil
}

func CursorRowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := session()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.Cursor().Row)), nil
}

func CursorColImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := session()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.Cursor().Col)), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := session()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.Buffer.RowCount())), nil
}

func LineTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := session()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("line-text requires an integer argument")
	}
	return golisp.StringWithValue(c.editor.Buffer.RowText(int(golisp.IntegerValue(val)))), nil
}

func DirtyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := session()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.Dirty()), nil
}
