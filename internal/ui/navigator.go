package ui

import (
	"log"
	"net/url"
	"strings"
)

// Navigator is the routing capability the search input needs
type Navigator interface {
	// Pathname returns the current route
	Pathname() string
	// Push navigates to route
	Push(route string)
	// SetParams replaces parameters of the current route
	SetParams(params map[string]string)
}

// SearchRoute returns the route that shows results for query
func SearchRoute(query string) string {
	return RouteSearch + "/" + url.PathEscape(query)
}

// QueryFromRoute extracts the query from a search route
func QueryFromRoute(route string) (string, bool) {
	rest, ok := strings.CutPrefix(route, RouteSearch+"/")
	if !ok {
		return "", false
	}
	query, err := url.PathUnescape(rest)
	if err != nil {
		return rest, true
	}
	return query, true
}

// StackNavigator is a minimal in-memory route stack. Listeners are called
// after every change.
type StackNavigator struct {
	stack     []string
	listeners []func(route string)
}

// NewStackNavigator creates a navigator positioned at root
func NewStackNavigator(root string) *StackNavigator {
	return &StackNavigator{stack: []string{root}}
}

// OnChange registers a listener
func (n *StackNavigator) OnChange(listener func(route string)) {
	n.listeners = append(n.listeners, listener)
}

// Pathname returns the current route
func (n *StackNavigator) Pathname() string {
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of routes on the stack
func (n *StackNavigator) Depth() int {
	return len(n.stack)
}

// Push navigates to route
func (n *StackNavigator) Push(route string) {
	log.Printf("Navigate to %s", route)
	n.stack = append(n.stack, route)
	n.notify()
}

// SetParams replaces the query of the current search route. Other routes
// have no parameters.
func (n *StackNavigator) SetParams(params map[string]string) {
	query, ok := params["query"]
	if !ok || !isSearchRoute(n.Pathname()) {
		return
	}
	n.stack[len(n.stack)-1] = SearchRoute(query)
	n.notify()
}

// Back pops the current route. The root route stays.
func (n *StackNavigator) Back() bool {
	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	n.notify()
	return true
}

// Reset drops every route above the root
func (n *StackNavigator) Reset() {
	if len(n.stack) == 1 {
		return
	}
	n.stack = n.stack[:1]
	n.notify()
}

func (n *StackNavigator) notify() {
	route := n.Pathname()
	for _, l := range n.listeners {
		l(route)
	}
}
