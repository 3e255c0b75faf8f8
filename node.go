package teaform

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// node points callbacks at the running program's message queue. It
// stands in for a rendered element reference: attached while the form
// is wired to a program, empty otherwise. Callbacks hold the node, so
// one attach covers every callback the form ever builds.
type node struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (n *node) attach(send func(tea.Msg)) {
	n.mu.Lock()
	n.send = send
	n.mu.Unlock()
}

func (n *node) detach() {
	n.mu.Lock()
	n.send = nil
	n.mu.Unlock()
}

// dispatch forwards msg to the attached program and reports whether
// one was attached. Dispatching while unattached is a silent no-op.
func (n *node) dispatch(msg tea.Msg) bool {
	n.mu.Lock()
	send := n.send
	n.mu.Unlock()

	if send == nil {
		return false
	}
	send(msg)
	return true
}
