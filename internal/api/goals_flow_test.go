package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/mwhitlam/liftlog/internal/models"
)

func TestCreateGoalStoresWeights(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "alice", "alice-password")
	cookie := loginAndExtractAuthCookie(t, app, "alice", "alice-password")

	form := url.Values{
		"current_weight": {"82.5"},
		"target_weight":  {"75"},
	}
	response := postForm(t, app, "/user/alice/goals", form, cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/user/alice" {
		t.Fatalf("expected redirect to /user/alice, got %q", location)
	}

	var goal models.Goal
	if err := database.Where("username = ?", "alice").First(&goal).Error; err != nil {
		t.Fatalf("load goal: %v", err)
	}
	if goal.CurrentWeight != 82.5 {
		t.Fatalf("expected current weight 82.5, got %v", goal.CurrentWeight)
	}
	if goal.TargetWeight == nil || *goal.TargetWeight != 75 {
		t.Fatalf("expected target weight 75, got %v", goal.TargetWeight)
	}
}

func TestCreateGoalTargetWeightOptional(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "alice", "alice-password")
	cookie := loginAndExtractAuthCookie(t, app, "alice", "alice-password")

	form := url.Values{"current_weight": {"82.5"}}
	response := postForm(t, app, "/user/alice/goals", form, cookie)
	response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}

	var goal models.Goal
	if err := database.Where("username = ?", "alice").First(&goal).Error; err != nil {
		t.Fatalf("load goal: %v", err)
	}
	if goal.TargetWeight != nil {
		t.Fatalf("expected no target weight, got %v", *goal.TargetWeight)
	}
}

func TestCreateGoalRequiresCurrentWeight(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "alice", "alice-password")
	cookie := loginAndExtractAuthCookie(t, app, "alice", "alice-password")

	request := postFormJSONWithCookie(t, app, "/user/alice/goals", url.Values{"target_weight": {"75"}}, cookie)
	defer request.Body.Close()

	if request.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", request.StatusCode)
	}

	var count int64
	if err := database.Model(&models.Goal{}).Count(&count).Error; err != nil {
		t.Fatalf("count goals: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no goal rows, got %d", count)
	}
}

func TestUpdateGoalOverwritesInPlace(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "alice", "alice-password")
	cookie := loginAndExtractAuthCookie(t, app, "alice", "alice-password")

	create := postForm(t, app, "/user/alice/goals", url.Values{
		"current_weight": {"82.5"},
		"target_weight":  {"75"},
	}, cookie)
	create.Body.Close()

	update := postForm(t, app, "/user/alice/goals/update", url.Values{
		"current_weight": {"80"},
		"target_weight":  {"72"},
	}, cookie)
	update.Body.Close()
	if update.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", update.StatusCode)
	}

	var goals []models.Goal
	if err := database.Where("username = ?", "alice").Find(&goals).Error; err != nil {
		t.Fatalf("load goals: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("expected exactly one goal row, got %d", len(goals))
	}
	if goals[0].CurrentWeight != 80 {
		t.Fatalf("expected current weight 80, got %v", goals[0].CurrentWeight)
	}
	if goals[0].TargetWeight == nil || *goals[0].TargetWeight != 72 {
		t.Fatalf("expected target weight 72, got %v", goals[0].TargetWeight)
	}
}

func TestSecondGoalCreationConflicts(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "alice", "alice-password")
	cookie := loginAndExtractAuthCookie(t, app, "alice", "alice-password")

	first := postForm(t, app, "/user/alice/goals", url.Values{"current_weight": {"82.5"}}, cookie)
	first.Body.Close()

	second := postFormJSONWithCookie(t, app, "/user/alice/goals", url.Values{"current_weight": {"70"}}, cookie)
	defer second.Body.Close()

	if second.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", second.StatusCode)
	}

	var goal models.Goal
	if err := database.Where("username = ?", "alice").First(&goal).Error; err != nil {
		t.Fatalf("load goal: %v", err)
	}
	if goal.CurrentWeight != 82.5 {
		t.Fatalf("first goal must be unchanged, got %v", goal.CurrentWeight)
	}
}
