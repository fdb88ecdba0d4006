package models

import "testing"

func TestMuscleGroupCatalogMapping(t *testing.T) {
	expected := map[string]int{
		"chest":      4,
		"biceps":     1,
		"abs":        14,
		"shoulders":  2,
		"quads":      10,
		"traps":      9,
		"back":       12,
		"triceps":    5,
		"calves":     7,
		"hamstrings": 11,
		"glutes":     8,
	}

	groups := MuscleGroups()
	if len(groups) != len(expected) {
		t.Fatalf("expected %d muscle groups, got %d", len(expected), len(groups))
	}

	for key, wgerID := range expected {
		group, ok := MuscleGroupByKey(key)
		if !ok {
			t.Fatalf("missing muscle group %q", key)
		}
		if group.WgerID != wgerID {
			t.Fatalf("%s: expected wger id %d, got %d", key, wgerID, group.WgerID)
		}
		if group.DisplayName == "" || group.PhotoURL == "" || group.DiagramURL == "" || group.OverviewURL == "" {
			t.Fatalf("%s: incomplete display metadata", key)
		}
	}
}

func TestMuscleGroupByKeyUnknown(t *testing.T) {
	if _, ok := MuscleGroupByKey("forearms"); ok {
		t.Fatal("unknown key must not resolve")
	}
}

func TestMuscleGroupsReturnsCopy(t *testing.T) {
	groups := MuscleGroups()
	groups[0].WgerID = 999

	fresh, _ := MuscleGroupByKey("chest")
	if fresh.WgerID != 4 {
		t.Fatal("catalog must not be mutable through the returned slice")
	}
}
