package types

// Post is the normalized output unit of one accepted submission. Once built
// by the collector it is never mutated; targets only read it.
type Post struct {
	Subreddit   string
	ID          string
	Title       string
	Body        string
	Score       int
	NumComments int
	CreatedUTC  float64
	Permalink   string
	Text        string
}
