package domain

import "time"

// MaxRecentNextContent caps the recent next-content list of a daily bucket.
const MaxRecentNextContent = 25

// AnalyticsDaily is the per-content, per-UTC-day analytics bucket.
type AnalyticsDaily struct {
	ContentID            string    `json:"contentId"`
	Date                 time.Time `json:"date"`
	Views                int64     `json:"views"`
	UniqueUsers          int64     `json:"uniqueUsers"`
	Upvotes              int64     `json:"upvotes"`
	Downvotes            int64     `json:"downvotes"`
	Favorites            int64     `json:"favorites"`
	Bookmarks            int64     `json:"bookmarks"`
	TimeTotalMs          int64     `json:"timeTotalMs"`
	TimeSamples          int64     `json:"timeSamples"`
	RecentNextContentIDs []string  `json:"recentNextContentIds"`
}

// AvgTimeMs is the mean time-on-page of the bucket.
func (a AnalyticsDaily) AvgTimeMs() int64 {
	if a.TimeSamples == 0 {
		return 0
	}
	return a.TimeTotalMs / a.TimeSamples
}

// StartOfUTCDay truncates t to midnight UTC.
func StartOfUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DashboardStats summarises the caller's content.
type DashboardStats struct {
	TotalPosts    int64 `json:"totalPosts"`
	TotalViews    int64 `json:"totalViews"`
	FeaturedPosts int64 `json:"featuredPosts"`
	TotalComments int64 `json:"totalComments"`
}

// ContentReport is one exported row of the dashboard export.
type ContentReport struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Published bool      `json:"published"`
	Views     int64     `json:"views"`
	Comments  int64     `json:"comments"`
	Upvotes   int64     `json:"upvotes"`
	Downvotes int64     `json:"downvotes"`
	Favorites int64     `json:"favorites"`
	Bookmarks int64     `json:"bookmarks"`
	AvgTimeMs int64     `json:"avgTimeMs"`
	CreatedAt time.Time `json:"createdAt"`
}
