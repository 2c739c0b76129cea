package models

const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashDanger  = "danger"
)

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Session is the server-side state behind one browser's session cookie.
// Handlers receive it by pointer and the session middleware persists it.
type Session struct {
	ID        string  `json:"id"`
	UserID    int     `json:"user_id,omitempty"`
	Username  string  `json:"username,omitempty"`
	CSRFToken string  `json:"csrf_token"`
	Cart      Cart    `json:"cart"`
	Flashes   []Flash `json:"flashes,omitempty"`

	modified bool
}

// NewSession starts unmodified so a visit that changes nothing is never
// stored.
func NewSession(id, csrfToken string) *Session {
	return &Session{ID: id, CSRFToken: csrfToken}
}

func (s *Session) Authenticated() bool {
	return s.UserID != 0
}

func (s *Session) Login(user *User) {
	s.UserID = user.ID
	s.Username = user.Username
	s.modified = true
}

func (s *Session) Logout() {
	s.UserID = 0
	s.Username = ""
	s.modified = true
}

func (s *Session) AddFlash(category, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
	s.modified = true
}

func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	if len(flashes) > 0 {
		s.Flashes = nil
		s.modified = true
	}
	return flashes
}

// MarkModified flags state changed outside the session's own methods,
// such as cart edits.
func (s *Session) MarkModified() {
	s.modified = true
}

func (s *Session) Modified() bool {
	return s.modified
}

func (s *Session) ClearModified() {
	s.modified = false
}
