package cli

import "testing"

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	if root.Use != "hbnb" {
		t.Errorf("use = %q", root.Use)
	}

	want := []string{"login", "logout", "status", "places", "place", "reviews", "review", "browse", "serve", "version"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	if root.PersistentFlags().Lookup("format") == nil {
		t.Error("missing persistent --format flag")
	}
}
