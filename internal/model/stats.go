package model

// Overview aggregates persisted-article counts for the read API.
type Overview struct {
	TotalArticles  int
	RecentArticles int
	ActiveThreads  int
	RegionCounts   map[string]int
	CategoryCounts map[string]int
}
