package core

import tea "github.com/charmbracelet/bubbletea"

// Screen is a modal layer drawn over the active tab. It receives keys before
// the tab does and returns done=true to close itself.
type Screen interface {
	Update(msg tea.Msg) (next Screen, cmd tea.Cmd, done bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// ScreenStack holds open modal screens; the last pushed one is on top.
type ScreenStack []Screen

func (s *ScreenStack) Push(screen Screen) {
	if screen != nil {
		*s = append(*s, screen)
	}
}

func (s *ScreenStack) Pop() Screen {
	top := s.Top()
	if top != nil {
		*s = (*s)[:len(*s)-1]
	}
	return top
}

// Replace swaps the top screen for screen. No-op on an empty stack.
func (s *ScreenStack) Replace(screen Screen) {
	if n := len(*s); n > 0 && screen != nil {
		(*s)[n-1] = screen
	}
}

func (s ScreenStack) Top() Screen {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

func (s ScreenStack) Len() int { return len(s) }
