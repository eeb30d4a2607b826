package module

import "github-activity/internal/services/activity/domain"

// Ports defines activity module ports exposed via the registry
type Ports struct {
	Fetcher domain.FetcherPort
	Batch   domain.BatchPort
}
