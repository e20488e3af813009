package mapkit

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Listener is a registered event handler. Handlers are compared by identity,
// so removing a listener needs the same *Listener that was added.
type Listener struct {
	fn func() tea.Cmd
}

func NewListener(fn func() tea.Cmd) *Listener { return &Listener{fn: fn} }

// Node is one interactive piece of a rendered popup.
type Node struct {
	Class string
	Label string
	Href  string

	listeners map[string][]*Listener
}

func (n *Node) AddEventListener(event string, l *Listener) {
	if n.listeners == nil {
		n.listeners = make(map[string][]*Listener)
	}
	for _, x := range n.listeners[event] {
		if x == l {
			return
		}
	}
	n.listeners[event] = append(n.listeners[event], l)
}

func (n *Node) RemoveEventListener(event string, l *Listener) {
	ls := n.listeners[event]
	for i, x := range ls {
		if x == l {
			n.listeners[event] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Listeners returns how many handlers are registered for event.
func (n *Node) Listeners(event string) int { return len(n.listeners[event]) }

// Click dispatches a click: every click listener runs, and a node with an
// Href also emits a LinkMsg.
func (n *Node) Click() tea.Cmd {
	var cmds []tea.Cmd
	for _, l := range append([]*Listener(nil), n.listeners["click"]...) {
		if l.fn != nil {
			cmds = append(cmds, l.fn())
		}
	}
	if n.Href != "" {
		href := n.Href
		cmds = append(cmds, func() tea.Msg { return LinkMsg{URL: href} })
	}
	return tea.Batch(cmds...)
}

// Element is the rendered content of an open popup.
type Element struct {
	Nodes []*Node
}

// Query returns the first node whose class matches selector (".name" or
// "name"), or nil.
func (e *Element) Query(selector string) *Node {
	if e == nil {
		return nil
	}
	class := strings.TrimPrefix(selector, ".")
	for _, n := range e.Nodes {
		if n.Class == class {
			return n
		}
	}
	return nil
}

// LinkMsg asks the host to open an external link.
type LinkMsg struct {
	URL string
}
