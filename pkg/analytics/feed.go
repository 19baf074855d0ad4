package analytics

import (
	"fmt"
	"time"

	"github.com/matzehuels/ghinsight/pkg/integrations/github"
)

// FeedLimit is the maximum number of items in an activity feed.
const FeedLimit = 20

// FeedItem is one displayable line of recent activity.
type FeedItem struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Repo        string    `json:"repo"`
	Date        time.Time `json:"date"`
	Icon        string    `json:"icon"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Message     string    `json:"message,omitempty"`
}

var feedTypes = map[string]bool{
	github.EventPush:        true,
	github.EventPullRequest: true,
	github.EventIssues:      true,
	github.EventCreate:      true,
	github.EventFork:        true,
	github.EventWatch:       true,
	github.EventPublic:      true,
}

// BuildActivityFeed keeps the first FeedLimit events of a displayable
// type. Events are expected newest first, as the API returns them.
func BuildActivityFeed(events []github.Event) []FeedItem {
	items := make([]FeedItem, 0, min(len(events), FeedLimit))
	for _, e := range events {
		if !feedTypes[e.Type] {
			continue
		}
		item := FeedItem{ID: e.ID, Type: e.Type, Repo: e.Repo.Name, Date: e.CreatedAt}
		describe(&item, e.Payload)
		items = append(items, item)
		if len(items) == FeedLimit {
			break
		}
	}
	return items
}

func describe(item *FeedItem, p github.EventPayload) {
	switch item.Type {
	case github.EventPush:
		n := len(p.Commits)
		item.Icon, item.Action = "📤", "pushed"
		item.Description = fmt.Sprintf("%d commit%s", n, plural(n))
		if n > 0 {
			item.Message = p.Commits[0].Message
		}
	case github.EventPullRequest:
		item.Icon, item.Action = "🔀", p.Action
		item.Description = fmt.Sprintf("pull request #%d", p.Number)
		if p.PullRequest != nil {
			item.Message = p.PullRequest.Title
		}
	case github.EventIssues:
		item.Icon, item.Action = "🐛", p.Action
		if p.Issue != nil {
			item.Description = fmt.Sprintf("issue #%d", p.Issue.Number)
			item.Message = p.Issue.Title
		} else {
			item.Description = "issue"
		}
	case github.EventCreate:
		item.Icon, item.Action = "✨", "created"
		item.Description = p.RefType
		if item.Description == "" {
			item.Description = "repository"
		}
		item.Message = p.Description
	case github.EventFork:
		item.Icon, item.Action, item.Description = "🍴", "forked", "repository"
	case github.EventWatch:
		item.Icon, item.Action, item.Description = "⭐", "starred", "repository"
	case github.EventPublic:
		item.Icon, item.Action, item.Description = "🌍", "made public", "repository"
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
