// Package slack builds the JSON body Slack's outgoing webhooks post back to
// the channel.
package slack

// Reply is the webhook response body.
type Reply struct {
	Text      string `json:"text"`
	LinkNames int    `json:"link_names"`
	Username  string `json:"username,omitempty"`
	IconEmoji string `json:"icon_emoji,omitempty"`
}

// Responder stamps the bot's configured identity on every reply.
type Responder struct {
	Username  string
	IconEmoji string
}

func (r Responder) Reply(text string) Reply {
	return Reply{
		Text:      text,
		LinkNames: 1,
		Username:  r.Username,
		IconEmoji: r.IconEmoji,
	}
}
