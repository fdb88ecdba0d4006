package api

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/mwhitlam/liftlog/internal/models"
	"gorm.io/gorm"
)

func TestDeleteAccountCascadesToGoal(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "alice", "alice-password")
	cookie := loginAndExtractAuthCookie(t, app, "alice", "alice-password")

	created := postForm(t, app, "/user/alice/goals", url.Values{"current_weight": {"82.5"}}, cookie)
	created.Body.Close()

	response := postForm(t, app, "/user/alice/delete", url.Values{}, cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/login" {
		t.Fatalf("expected redirect to /login, got %q", location)
	}

	var user models.User
	err := database.Where("username = ?", "alice").First(&user).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected account to be gone, got err=%v", err)
	}

	var goal models.Goal
	err = database.Where("username = ?", "alice").First(&goal).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected goal to cascade away, got err=%v", err)
	}
}

func TestDeletedSessionCookieIsRejectedAfterwards(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "alice", "alice-password")
	cookie := loginAndExtractAuthCookie(t, app, "alice", "alice-password")

	deleted := postForm(t, app, "/user/alice/delete", url.Values{}, cookie)
	deleted.Body.Close()

	// The old token no longer maps to an account.
	response := getPage(t, app, "/user/alice", cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/login" {
		t.Fatalf("expected redirect to /login, got %q", location)
	}
}
