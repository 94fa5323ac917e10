package codewiki

import "github.com/wrenlabs/knowhub/internal/api"

// listedStatuses enumerates the generation statuses that qualify a project
// for the listing. Kept explicit rather than "any status" so that a future
// status can be excluded without restructuring the filter.
var listedStatuses = map[api.GenerationStatus]bool{
	api.GenerationPending:   true,
	api.GenerationRunning:   true,
	api.GenerationCompleted: true,
	api.GenerationFailed:    true,
	api.GenerationCancelled: true,
}

// Visible returns the projects owned by the user whose latest generation
// carries a listed status. Projects with no generations are hidden.
func Visible(projects []api.Project, username string) []api.Project {
	visible := make([]api.Project, 0, len(projects))
	for _, p := range projects {
		if p.Owner != username {
			continue
		}
		latest := p.LatestGeneration()
		if latest == nil {
			continue
		}
		if listedStatuses[latest.Status] {
			visible = append(visible, p)
		}
	}
	return visible
}
