package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
)

var errExit = errors.New("exit")

type shellController struct {
	l   *readline.Instance
	app *app
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func newShellController(a *app) (*shellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mwebwords>\033[0m ",
		HistoryFile:     "/tmp/webwords-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &shellController{l: l, app: a}, nil
}

const shellHelp = `commands:
  check WORD...   check words (also: any line not starting with a command)
  info            show the dictionary in use
  lexicon NAME    switch to another word list under the lexicon path
  help            show this message
  exit            leave the shell`

// execute runs one shell line and returns its output.
func (sc *shellController) execute(ctx context.Context, line string) (string, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return "", err
	}
	if len(fields) == 0 {
		return "", nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "exit", "quit":
		return "", errExit
	case "help":
		return shellHelp, nil
	case "info":
		dict, err := sc.app.dictionary()
		if err != nil {
			return "", err
		}
		return describe(dict), nil
	case "lexicon":
		if len(args) != 1 {
			return "", errors.New("usage: lexicon NAME")
		}
		dict, err := sc.app.useLexicon(args[0])
		if err != nil {
			return "", err
		}
		return describe(dict), nil
	case "check":
		if len(args) == 0 {
			return "", errors.New("usage: check WORD...")
		}
	default:
		args = fields
	}
	var out strings.Builder
	if _, err := sc.app.check(ctx, args, &out); err != nil {
		return "", err
	}
	return strings.TrimRight(out.String(), "\n"), nil
}

func (sc *shellController) loop(ctx context.Context) error {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}

		out, err := sc.execute(ctx, strings.TrimSpace(line))
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			log.Error().Err(err).Msg("")
			continue
		}
		if out != "" {
			showMessage(out, sc.l.Stdout())
		}
	}
}
