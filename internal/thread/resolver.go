// Package thread maps a pipeline threading decision onto concrete
// parent/thread pointers.
package thread

import (
	"fmt"

	"github.com/satyaprakashdhfm/news-categorize/internal/enrich"
	"github.com/satyaprakashdhfm/news-categorize/internal/model"
)

// Finder looks an article up by id; (nil, nil) on miss.
type Finder interface {
	FindByID(id string) (*model.Article, error)
}

// Resolve turns a threading decision into (parentID, threadID). The first
// article of a chain becomes the thread root the moment a second one
// attaches: the root's own thread_id stays NULL, and every descendant points
// at the root via the parent's stored thread_id, propagated forward only.
func Resolve(decision string, finder Finder) (string, string, error) {
	if decision == "" || decision == enrich.DecisionNewThread {
		return "", "", nil
	}

	parent, err := finder.FindByID(decision)
	if err != nil {
		return "", "", fmt.Errorf("find parent %s: %w", decision, err)
	}

	// An id the provider made up is equivalent to NEW_THREAD.
	if parent == nil {
		return "", "", nil
	}

	threadID := parent.ThreadID
	if threadID == "" {
		threadID = parent.ID
	}

	return parent.ID, threadID, nil
}
