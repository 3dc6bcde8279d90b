// Package guildcfg holds the persisted channel configuration document.
package guildcfg

// GuildConfig is the config document: which channels the bot posts to and
// which board message it keeps editing.
type GuildConfig struct {
	Channels Channels `json:"channels"`
}

// Channels maps each purpose to its destination.
type Channels struct {
	Activity *ActivityChannel `json:"activity,omitempty"`
	Stream   *StreamChannel   `json:"stream,omitempty"`
}

// ActivityChannel identifies where the board lives. MessageID is empty until
// the board message exists, and is reset whenever the channel is
// reconfigured so a fresh message gets created.
type ActivityChannel struct {
	ChannelID string `json:"channelId"`
	MessageID string `json:"messageId,omitempty"`
}

// StreamChannel is the destination for livestream announcements.
type StreamChannel struct {
	ChannelID string `json:"channelId"`
}
