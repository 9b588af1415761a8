// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		ConfigLoadFailedId,
		InvalidSeedId,
		UnknownGroupId,
		DuplicateGroupId,
		SourceTreeNotFoundId,
		SourceUnreadableId,
		OutputWriteFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true

		if Get(id) == nil {
			t.Errorf("Get(%d) returned nil", id)
		}
	}

	if ConfigLoadFailedId != 1 {
		t.Errorf("ConfigLoadFailedId = %d, want 1", ConfigLoadFailedId)
	}
}

func TestValues(t *testing.T) {
	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Errorf("Values() not ordered at %d", i)
		}
	}
}

func TestIssue_Render(t *testing.T) {
	for _, issue := range Values() {
		if !strings.HasPrefix(strings.TrimSpace(string(issue.MarkdownMsg())), "#") {
			t.Errorf("issue %d does not start with a heading", issue.Id())
		}

		rendered, err := issue.Render("notty")
		if err != nil {
			t.Fatalf("Render() for issue %d failed: %v", issue.Id(), err)
		}
		if strings.TrimSpace(rendered) == "" {
			t.Errorf("Render() for issue %d is empty", issue.Id())
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	if Get(Id(999)) != nil {
		t.Error("Get(999) should return nil")
	}
}
