package model

import "strings"

// Fragment is the start requirement shown by the game for the current turn.
// A value like "녘(역)" carries an alternative reading in parentheses; only
// the part before the parenthesis is a required prefix.
type Fragment string

// Prefix returns the prefix a candidate word must start with
func (f Fragment) Prefix() string {
	prefix, _ := f.split()
	return prefix
}

// Hint returns the parenthetical alternative, or "" if there is none
func (f Fragment) Hint() string {
	_, hint := f.split()
	return hint
}

func (f Fragment) split() (prefix, hint string) {
	s := strings.Replace(string(f), ")", "", 1)
	prefix, hint, _ = strings.Cut(s, "(")
	return prefix, hint
}
