// Package dispatch routes actions to the application's stores one tick at a time.
package dispatch

import "github.com/verte-zerg/tokitype/internal/model"

// Action is a closed set of events the stores react to.
type Action interface {
	isAction()
}

// CharTyped reports a printable character. The separator advances the cursor.
type CharTyped struct {
	Char rune
}

// BackspacePressed removes the last character or retreats to the previous word.
type BackspacePressed struct{}

// NavigateTo switches the visible page.
type NavigateTo struct {
	Page model.Page
}

// ApplySelection starts a new session from the given criteria.
type ApplySelection struct {
	Criteria model.Criteria
}

// RequestExit asks the application to terminate.
type RequestExit struct{}

func (CharTyped) isAction()        {}
func (BackspacePressed) isAction() {}
func (NavigateTo) isAction()       {}
func (ApplySelection) isAction()   {}
func (RequestExit) isAction()      {}
