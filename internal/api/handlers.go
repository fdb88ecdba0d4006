package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/mwhitlam/liftlog/internal/catalog"
	"github.com/mwhitlam/liftlog/internal/db"
	"github.com/mwhitlam/liftlog/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db             *gorm.DB
	repositories   *db.Repositories
	authService    *services.AuthService
	goalService    *services.GoalService
	commentService *services.CommentService
	exercises      *catalog.Client
	secretKey      []byte
	location       *time.Location
	cookieSecure   bool
	templates      map[string]*template.Template
}

const authTokenTTL = 7 * 24 * time.Hour

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, exercises *catalog.Client, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}
	if exercises == nil {
		exercises = catalog.NewClient(catalog.DefaultBaseURL, "")
	}

	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"formatFloat": func(value any) string {
			switch v := value.(type) {
			case float64:
				return fmt.Sprintf("%.1f", v)
			case *float64:
				if v == nil {
					return ""
				}
				return fmt.Sprintf("%.1f", *v)
			default:
				return ""
			}
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"home",
		"login",
		"register",
		"profile",
		"goal_new",
		"goal_edit",
		"delete_account",
		"muscles",
		"workout",
		"error",
	}
	for _, page := range pages {
		templatePath := filepath.Join(templateDir, page+".html")
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			templatePath,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:             database,
		repositories:   repositories,
		authService:    services.NewAuthService(repositories.Users),
		goalService:    services.NewGoalService(repositories.Goals),
		commentService: services.NewCommentService(repositories.Comments),
		exercises:      exercises,
		secretKey:      []byte(secret),
		location:       location,
		cookieSecure:   cookieSecure,
		templates:      templates,
	}, nil
}
