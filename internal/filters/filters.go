package filters

import (
	"strings"

	"careminer/internal/reddit"
	"careminer/internal/types"
)

// FilterFunc reports whether a submission should be kept.
type FilterFunc func(reddit.Submission) bool

type Filter struct {
	name     string
	reason   string
	filterFn FilterFunc
}

func New(name, reason string, filterFn FilterFunc) Filter {
	return Filter{
		name:     name,
		reason:   reason,
		filterFn: filterFn,
	}
}

// Chain applies filters in order; the first rejecting filter wins.
type Chain []Filter

// Apply returns nil if the submission passes every filter, otherwise a
// FilteredError naming the rejecting filter.
func (c Chain) Apply(s reddit.Submission) *types.FilteredError {
	for _, f := range c {
		if f.filterFn != nil && !f.filterFn(s) {
			return types.NewFilteredError(f.name, s.ID, f.reason)
		}
	}
	return nil
}

// Stickied rejects pinned submissions.
func Stickied() Filter {
	return New("stickied", "submission is stickied", func(s reddit.Submission) bool {
		return !s.Stickied
	})
}

// EmptyText rejects submissions whose combined display text trims to empty.
func EmptyText() Filter {
	return New("empty_text", "combined text is empty", func(s reddit.Submission) bool {
		return CombinedText(s.Title, s.Selftext) != ""
	})
}

// Default is the baseline chain: drop stickied posts, then empty ones.
func Default() Chain {
	return Chain{Stickied(), EmptyText()}
}

// CombinedText joins title and body with a blank line and trims the result.
// The untrimmed body still travels separately on the Post.
func CombinedText(title, body string) string {
	return strings.TrimSpace(title + "\n\n" + body)
}
