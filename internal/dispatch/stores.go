package dispatch

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/tokitype/internal/corpus"
	"github.com/verte-zerg/tokitype/internal/model"
	"github.com/verte-zerg/tokitype/internal/selector"
	"github.com/verte-zerg/tokitype/internal/session"
)

// Store is one of PageStore, ExitStore or SessionStore.
type Store interface {
	store()
}

func (*PageStore) store()    {}
func (*ExitStore) store()    {}
func (*SessionStore) store() {}

// PageStore holds the visible page.
type PageStore struct {
	page model.Page
}

// NewPageStore returns a store showing p.
func NewPageStore(p model.Page) *PageStore {
	return &PageStore{page: p}
}

func (s *PageStore) update(a Action) {
	if nav, ok := a.(NavigateTo); ok {
		s.page = nav.Page
	}
}

// PageView is a copy of the page state.
type PageView struct {
	Page model.Page
}

// ExitStore latches once exit is requested.
type ExitStore struct {
	exit bool
}

// NewExitStore returns an unset exit flag.
func NewExitStore() *ExitStore {
	return &ExitStore{}
}

func (s *ExitStore) update(a Action) {
	if _, ok := a.(RequestExit); ok {
		s.exit = true
	}
}

// SessionStore owns the current typing session.
type SessionStore struct {
	corpus   *corpus.Corpus
	selector *selector.Selector
	opts     session.Options
	now      session.Clock
	log      zerolog.Logger

	session  *session.Session
	criteria model.Criteria
	notified bool
}

// SessionStoreConfig wires a SessionStore.
type SessionStoreConfig struct {
	Corpus   *corpus.Corpus
	Selector *selector.Selector
	Options  session.Options
	Clock    session.Clock
	Logger   *zerolog.Logger
}

// NewSessionStore returns a store with no session until ApplySelection arrives.
func NewSessionStore(cfg SessionStoreConfig) *SessionStore {
	if cfg.Selector == nil {
		cfg.Selector = selector.New()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &SessionStore{
		corpus:   cfg.Corpus,
		selector: cfg.Selector,
		opts:     cfg.Options,
		now:      cfg.Clock,
		log:      log,
	}
}

func (s *SessionStore) update(a Action, out *Queue) {
	switch act := a.(type) {
	case ApplySelection:
		records := s.selector.Select(act.Criteria, s.corpus)
		s.session = session.New(records, s.opts, s.now)
		s.criteria = act.Criteria
		s.notified = false
		s.log.Info().
			Str("session", s.session.ID).
			Int("words", s.session.Len()).
			Int("requested", act.Criteria.Size).
			Str("deprecation", act.Criteria.Deprecation.String()).
			Msg("selection applied")
		out.Push(NavigateTo{Page: model.PageGame})
	case CharTyped:
		if s.session == nil {
			return
		}
		s.session.TypeRune(act.Char)
	case BackspacePressed:
		if s.session == nil {
			return
		}
		s.session.Backspace()
	default:
		return
	}

	if s.session.Complete() && !s.notified {
		s.notified = true
		s.log.Info().
			Str("session", s.session.ID).
			Dur("active", s.session.ActiveTime()).
			Msg("session complete")
		out.Push(NavigateTo{Page: model.PageResults})
	}
}

func (s *SessionStore) view() SessionView {
	if s.session == nil {
		return SessionView{Criteria: s.criteria}
	}
	return SessionView{
		Ready:    true,
		Criteria: s.criteria,
		Snapshot: s.session.Snapshot(),
	}
}

// SessionView is a copy of the session state.
type SessionView struct {
	Ready    bool
	Criteria model.Criteria
	session.Snapshot
}
