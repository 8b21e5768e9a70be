package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

const (
	inputPrompt  = "5etools JSON file: "
	outputPrompt = "Output directory: "

	invalidInput  = "Invalid file path."
	invalidOutput = "Invalid output directory."
)

// prompter asks for paths on an interactive terminal
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// InputFile asks until the answer names an existing path
func (p *prompter) InputFile() (string, error) {
	return p.ask(inputPrompt, invalidInput, pathExists)
}

// OutputDir asks until the answer names an existing directory
func (p *prompter) OutputDir() (string, error) {
	return p.ask(outputPrompt, invalidOutput, isDir)
}

func (p *prompter) ask(prompt, invalid string, valid func(string) bool) (string, error) {
	for {
		fmt.Fprint(p.out, prompt)

		line, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return "", errors.Canceled("no answer to prompt: " + strings.TrimSpace(prompt))
			}
			return "", errors.Wrap(err, "failed to read answer")
		}

		path := sanitizePath(line)
		if path != "" && valid(path) {
			return path, nil
		}
		fmt.Fprintln(p.out, invalid)

		if err == io.EOF {
			return "", errors.Canceled("no valid answer to prompt: " + strings.TrimSpace(prompt))
		}
	}
}

// sanitizePath trims whitespace and one pair of matching surrounding quotes,
// as left behind by dragging a file into a terminal. A lone quote counts as
// its own pair and leaves nothing.
func sanitizePath(line string) string {
	s := strings.TrimSpace(line)
	if s == "" {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first != last || (first != '"' && first != '\'') {
		return s
	}
	if len(s) == 1 {
		return ""
	}
	return s[1 : len(s)-1]
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
