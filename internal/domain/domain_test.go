package domain

import (
	"testing"
	"time"
)

func TestIsValidResourceType(t *testing.T) {
	tests := []struct {
		resourceType string
		valid        bool
	}{
		{"users", true},
		{"content", true},
		{"comments", true},
		{"articles", false},
		{"", false},
		{"USERS", false},
	}

	for _, tt := range tests {
		t.Run(tt.resourceType, func(t *testing.T) {
			if got := IsValidResourceType(tt.resourceType); got != tt.valid {
				t.Errorf("IsValidResourceType(%q) = %v, want %v", tt.resourceType, got, tt.valid)
			}
		})
	}
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		format string
		valid  bool
	}{
		{"csv", true},
		{"ndjson", true},
		{"invalid", false},
		{"", false},
		{"CSV", false},
		{"json", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := IsValidFormat(tt.format); got != tt.valid {
				t.Errorf("IsValidFormat(%q) = %v, want %v", tt.format, got, tt.valid)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role  string
		valid bool
	}{
		{"admin", true},
		{"user", true},
		{"moderator", false},
		{"ADMIN", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := IsValidRole(tt.role); got != tt.valid {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.valid)
			}
		})
	}
}

func TestReactionType(t *testing.T) {
	if !ReactionUpvote.IsVote() || !ReactionDownvote.IsVote() {
		t.Error("UPVOTE and DOWNVOTE must be votes")
	}
	if ReactionFavorite.IsVote() {
		t.Error("FAVORITE must not be a vote")
	}
	if ReactionUpvote.Opposite() != ReactionDownvote {
		t.Errorf("Opposite(UPVOTE) = %s", ReactionUpvote.Opposite())
	}
	if ReactionDownvote.Opposite() != ReactionUpvote {
		t.Errorf("Opposite(DOWNVOTE) = %s", ReactionDownvote.Opposite())
	}
	if IsValidReactionType(ReactionBookmark) {
		t.Error("BOOKMARK has its own endpoint and must not be a valid reaction type")
	}
	if IsValidReactionType("LIKE") {
		t.Error("unknown type accepted")
	}
}

func TestIdentity_CanModify(t *testing.T) {
	var anonymous *Identity
	owner := &Identity{UserID: "u1", Role: RoleUser}
	other := &Identity{UserID: "u2", Role: RoleUser}
	admin := &Identity{UserID: "u3", Role: RoleAdmin}

	if anonymous.CanModify("u1") {
		t.Error("anonymous caller must not modify")
	}
	if anonymous.IsAdmin() {
		t.Error("anonymous caller is not admin")
	}
	if !owner.CanModify("u1") {
		t.Error("owner must modify own resource")
	}
	if other.CanModify("u1") {
		t.Error("other user must not modify")
	}
	if !admin.CanModify("u1") {
		t.Error("admin must modify any resource")
	}
}

func TestCommentRecord_IsRoot(t *testing.T) {
	empty := ""
	parent := "p"

	if !(CommentRecord{}).IsRoot() {
		t.Error("nil parent must be root")
	}
	if !(CommentRecord{ParentID: &empty}).IsRoot() {
		t.Error("empty parent must be root")
	}
	if (CommentRecord{ParentID: &parent}).IsRoot() {
		t.Error("set parent must not be root")
	}
}

func TestStartOfUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	in := time.Date(2024, 3, 10, 2, 30, 0, 0, loc) // 2024-03-09 21:30 UTC

	got := StartOfUTCDay(in)
	want := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfUTCDay() = %v, want %v", got, want)
	}
}

func TestAnalyticsDaily_AvgTimeMs(t *testing.T) {
	if got := (AnalyticsDaily{}).AvgTimeMs(); got != 0 {
		t.Errorf("AvgTimeMs() with no samples = %d, want 0", got)
	}
	if got := (AnalyticsDaily{TimeTotalMs: 9000, TimeSamples: 3}).AvgTimeMs(); got != 3000 {
		t.Errorf("AvgTimeMs() = %d, want 3000", got)
	}
}

func TestContentFilter_Normalize(t *testing.T) {
	f := ContentFilter{Take: 0, Skip: -3}
	f.Normalize()
	if f.Take != DefaultContentTake || f.Skip != 0 {
		t.Errorf("Normalize() = take %d skip %d", f.Take, f.Skip)
	}

	f = ContentFilter{Take: 1000}
	f.Normalize()
	if f.Take != MaxContentTake {
		t.Errorf("Normalize() take = %d, want %d", f.Take, MaxContentTake)
	}
}
