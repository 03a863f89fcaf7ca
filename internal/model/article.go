package model

import (
	"strings"
	"time"
)

type Region string

const (
	RegionUSA     Region = "USA"
	RegionChina   Region = "CHINA"
	RegionGermany Region = "GERMANY"
	RegionIndia   Region = "INDIA"
	RegionJapan   Region = "JAPAN"
	RegionUK      Region = "UK"
	RegionFrance  Region = "FRANCE"
	RegionItaly   Region = "ITALY"
)

var regionNames = map[Region]string{
	RegionUSA:     "United States",
	RegionChina:   "China",
	RegionGermany: "Germany",
	RegionIndia:   "India",
	RegionJapan:   "Japan",
	RegionUK:      "United Kingdom",
	RegionFrance:  "France",
	RegionItaly:   "Italy",
}

// ParseRegion is strict: an unknown region code is a caller error,
// there is no safe default region to fall back to.
func ParseRegion(raw string) (Region, bool) {
	r := Region(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := regionNames[r]
	return r, ok
}

func (r Region) DisplayName() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return string(r)
}

type Category string

const (
	CategoryPolitics    Category = "POL"
	CategoryEconomy     Category = "ECO"
	CategoryBusiness    Category = "BUS"
	CategorySociety     Category = "SOC"
	CategoryTechnology  Category = "TEC"
	CategoryEnvironment Category = "ENV"
	CategoryHealth      Category = "HEA"
	CategorySports      Category = "SPO"
	CategorySecurity    Category = "SEC"
)

// DefaultCategory absorbs classifier failures and out-of-set responses.
const DefaultCategory = CategoryEconomy

var validCategories = map[Category]bool{
	CategoryPolitics:    true,
	CategoryEconomy:     true,
	CategoryBusiness:    true,
	CategorySociety:     true,
	CategoryTechnology:  true,
	CategoryEnvironment: true,
	CategoryHealth:      true,
	CategorySports:      true,
	CategorySecurity:    true,
}

// ParseCategory validates free-text classifier output against the closed
// category set. Raw provider text never passes this boundary unvalidated.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(raw)))
	if validCategories[c] {
		return c, true
	}
	return DefaultCategory, false
}

func AllCategories() []Category {
	return []Category{
		CategoryPolitics,
		CategoryEconomy,
		CategoryBusiness,
		CategorySociety,
		CategoryTechnology,
		CategoryEnvironment,
		CategoryHealth,
		CategorySports,
		CategorySecurity,
	}
}

// RawCandidate is a search result before validation and enrichment.
// Consumed once, never persisted directly.
type RawCandidate struct {
	Title         string
	Content       string
	URL           string
	PublishedDate string
	Region        Region
}

// Article is the persisted unit. ThreadID and ParentID use empty string
// for "not set"; the repository maps that to NULL.
type Article struct {
	ID          string
	DNACode     string
	Title       string
	Content     string
	Summary     string
	SourceURL   string
	PublishedAt time.Time
	ScrapedAt   time.Time
	Region      Region
	Category    Category
	Year        int
	SequenceNum int
	ThreadID    string
	ParentID    string
}

type StoryThread struct {
	ID           string
	Title        string
	Description  string
	Region       Region
	Category     Category
	StartDate    time.Time
	LastUpdate   time.Time
	ArticleCount int
}
