package model

type RunStatus string

const (
	RunIdle      RunStatus = "idle"
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunStopped   RunStatus = "stopped"
	RunError     RunStatus = "error"
)

// RunStats tracks a single scraping run. It lives in memory only and is
// reset at the start of each run.
type RunStats struct {
	TotalFound int
	Processed  int
	Skipped    int
	Errors     int
	Regions    []string
	Categories []string
	Status     RunStatus
}

func (s *RunStats) AddRegion(region Region) {
	for _, r := range s.Regions {
		if r == string(region) {
			return
		}
	}
	s.Regions = append(s.Regions, string(region))
}

func (s *RunStats) AddCategory(category Category) {
	for _, c := range s.Categories {
		if c == string(category) {
			return
		}
	}
	s.Categories = append(s.Categories, string(category))
}
