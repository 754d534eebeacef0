package ui

import "testing"

func TestSearchRouteRoundTrip(t *testing.T) {
	tests := []string{"cats", "funny cats", "a/b", "100%"}

	for _, query := range tests {
		t.Run(query, func(t *testing.T) {
			got, ok := QueryFromRoute(SearchRoute(query))
			if !ok || got != query {
				t.Errorf("QueryFromRoute(SearchRoute(%q)) = (%q, %v)", query, got, ok)
			}
		})
	}

	if _, ok := QueryFromRoute(RouteHome); ok {
		t.Error("home route has no query")
	}
}

func TestStackNavigator(t *testing.T) {
	nav := NewStackNavigator(RouteHome)

	var routes []string
	nav.OnChange(func(route string) { routes = append(routes, route) })

	if nav.Pathname() != RouteHome || nav.Depth() != 1 {
		t.Fatalf("initial state = (%s, %d)", nav.Pathname(), nav.Depth())
	}
	if nav.Back() {
		t.Error("Back() at root should do nothing")
	}

	// params outside a search route are ignored
	nav.SetParams(map[string]string{"query": "x"})
	if nav.Pathname() != RouteHome {
		t.Errorf("SetParams changed home route to %s", nav.Pathname())
	}

	nav.Push(SearchRoute("cats"))
	nav.SetParams(map[string]string{"query": "dogs"})
	if nav.Pathname() != "/search/dogs" || nav.Depth() != 2 {
		t.Errorf("after SetParams = (%s, %d), expected (/search/dogs, 2)", nav.Pathname(), nav.Depth())
	}

	nav.Push(SearchRoute("birds"))
	nav.Reset()
	if nav.Pathname() != RouteHome || nav.Depth() != 1 {
		t.Errorf("after Reset = (%s, %d)", nav.Pathname(), nav.Depth())
	}

	expected := []string{"/search/cats", "/search/dogs", "/search/birds", RouteHome}
	if len(routes) != len(expected) {
		t.Fatalf("listener saw %v, expected %v", routes, expected)
	}
	for i := range expected {
		if routes[i] != expected[i] {
			t.Errorf("routes[%d] = %s, expected %s", i, routes[i], expected[i])
		}
	}
}
