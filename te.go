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
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/timburks/te/commander"
	"github.com/timburks/te/editor"
	"github.com/timburks/te/screen"
	te "github.com/timburks/te/types"
)

const usage = "Usage: te [--eval SCRIPT] FILE"

type options struct {
	fileName string
	script   string
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	filenames := make([]string, 0)
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--eval": // eval program
			i++
			if i >= len(args) {
				return nil, errors.New("no script specified for --eval option")
			}
			opts.script = args[i]
		default:
			filenames = append(filenames, args[i])
		}
	}
	if len(filenames) != 1 {
		return nil, errors.New(usage)
	}
	if len(filenames[0]) > te.MaxFileNameLength {
		return nil, fmt.Errorf("max file name size is %d", te.MaxFileNameLength)
	}
	opts.fileName = filenames[0]
	if fileinfo, err := os.Stat(opts.fileName); err == nil && fileinfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory", opts.fileName)
	}
	return opts, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, opts.fileName)
	if err = c.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if opts.script != "" {
		// Run a script and exit.
		out, err := c.ParseEval(opts.script)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(out)
		return 0
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "te must be run in a terminal")
		return 1
	}

	// Open a log file.
	home, _ := os.UserHomeDir()
	f, err := os.OpenFile(filepath.Join(home, ".telog"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Output(1, err.Error())
		return 1
	}
	defer f.Close()
	log.SetOutput(f)

	if err = edit(c); err != nil {
		log.Printf("%+v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// edit runs the main event loop until the session ends or fails.
func edit(c *commander.Commander) error {
	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		return err
	}
	defer s.Close()

	for c.IsRunning() {
		s.Render(c)
		if err = c.ProcessEvent(s.GetNextEvent()); err != nil {
			return err
		}
	}
	return nil
}
