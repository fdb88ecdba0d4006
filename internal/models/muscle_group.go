package models

// MuscleGroup is a static catalog entry mapping a muscle-group key to
// its display metadata and the wger catalog's numeric muscle identifier.
type MuscleGroup struct {
	Key         string
	DisplayName string
	WgerID      int
	PhotoURL    string
	DiagramURL  string
	OverviewURL string
}

const (
	frontOverview = "/static/images/muscles/muscular_system_front.svg"
	backOverview  = "/static/images/muscles/muscular_system_back.svg"
)

var muscleGroups = []MuscleGroup{
	{Key: "chest", DisplayName: "Chest", WgerID: 4, PhotoURL: "https://thumbs.dreamstime.com/b/d-rendered-muscle-illustration-pectoralis-major-pectoralis-major-157612533.jpg", DiagramURL: "/static/images/muscles/main/muscle-4.svg", OverviewURL: frontOverview},
	{Key: "biceps", DisplayName: "Biceps", WgerID: 1, PhotoURL: "https://thumbs.dreamstime.com/b/d-rendered-muscle-illustration-biceps-biceps-157612447.jpg", DiagramURL: "/static/images/muscles/main/muscle-1.svg", OverviewURL: frontOverview},
	{Key: "abs", DisplayName: "Abs", WgerID: 14, PhotoURL: "https://thumbs.dreamstime.com/b/d-rendered-muscle-illustration-external-oblique-external-oblique-157612399.jpg", DiagramURL: "/static/images/muscles/main/muscle-14.svg", OverviewURL: frontOverview},
	{Key: "shoulders", DisplayName: "Shoulders", WgerID: 2, PhotoURL: "https://thumbs.dreamstime.com/b/deltoid-d-rendered-muscle-illustration-157612398.jpg", DiagramURL: "/static/images/muscles/main/muscle-2.svg", OverviewURL: frontOverview},
	{Key: "quads", DisplayName: "Quads", WgerID: 10, PhotoURL: "https://thumbs.dreamstime.com/b/d-rendered-muscle-illustration-vastus-lateralis-vastus-lateralis-157612633.jpg", DiagramURL: "/static/images/muscles/main/muscle-10.svg", OverviewURL: frontOverview},
	{Key: "traps", DisplayName: "Traps", WgerID: 9, PhotoURL: "https://thumbs.dreamstime.com/b/d-rendered-muscle-illustration-trapezius-trapezius-157612310.jpg", DiagramURL: "/static/images/muscles/main/muscle-9.svg", OverviewURL: backOverview},
	{Key: "back", DisplayName: "Back", WgerID: 12, PhotoURL: "https://thumbs.dreamstime.com/b/d-rendered-muscle-illustration-latissimus-dorsi-latissimus-dorsi-157612158.jpg", DiagramURL: "/static/images/muscles/main/muscle-12.svg", OverviewURL: backOverview},
	{Key: "triceps", DisplayName: "Triceps", WgerID: 5, PhotoURL: "https://thumbs.dreamstime.com/b/triceps-d-rendered-muscle-illustration-157612423.jpg", DiagramURL: "/static/images/muscles/main/muscle-5.svg", OverviewURL: backOverview},
	{Key: "calves", DisplayName: "Calves", WgerID: 7, PhotoURL: "https://thumbs.dreamstime.com/b/gastrocnemius-d-rendered-muscle-illustration-157612044.jpg", DiagramURL: "/static/images/muscles/main/muscle-7.svg", OverviewURL: backOverview},
	{Key: "hamstrings", DisplayName: "Hamstrings", WgerID: 11, PhotoURL: "https://thumbs.dreamstime.com/b/biceps-femoris-longus-d-rendered-muscle-illustration-157611954.jpg", DiagramURL: "/static/images/muscles/main/muscle-11.svg", OverviewURL: backOverview},
	{Key: "glutes", DisplayName: "Glutes", WgerID: 8, PhotoURL: "https://thumbs.dreamstime.com/b/d-rendered-muscle-illustration-gluteus-maximus-gluteus-maximus-157612061.jpg", DiagramURL: "/static/images/muscles/main/muscle-8.svg", OverviewURL: backOverview},
}

// MuscleGroups returns the catalog in display order.
func MuscleGroups() []MuscleGroup {
	groups := make([]MuscleGroup, len(muscleGroups))
	copy(groups, muscleGroups)
	return groups
}

// MuscleGroupByKey resolves a muscle-group key to its catalog entry.
func MuscleGroupByKey(key string) (MuscleGroup, bool) {
	for _, group := range muscleGroups {
		if group.Key == key {
			return group, true
		}
	}
	return MuscleGroup{}, false
}
