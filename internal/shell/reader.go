package shell

import (
	"io"

	"github.com/peterh/liner"
)

type linerReader struct {
	state *liner.State
}

// NewLinerReader returns a LineReader with line editing and history backed
// by the terminal.
func NewLinerReader() LineReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &linerReader{state: state}
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if line != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

func (r *linerReader) Close() error {
	return r.state.Close()
}
