// Package handler provides the bot command handlers. Handlers adapt
// telebot contexts to the string chat and sender identities the engines
// work with, convert domain errors to reply text, and never let an
// inbound command go unacknowledged.
package handler

import (
	"strconv"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
)

// GenericErrorReply is sent when a handler hits an unexpected failure
// (store I/O, mostly). Domain errors get their own messages.
const GenericErrorReply = "⚠️ Something went wrong — please try again."

// chatIdentity returns the stable string id of the chat.
func chatIdentity(c tele.Context) string {
	chat := c.Chat()
	if chat == nil {
		return ""
	}
	return strconv.FormatInt(chat.ID, 10)
}

// senderIdentity returns the stable string id of the sender, preferring
// the username when present so leaderboard and vote entries stay
// readable.
func senderIdentity(c tele.Context) string {
	sender := c.Sender()
	if sender == nil {
		return ""
	}
	if sender.Username != "" {
		return sender.Username
	}
	return strconv.FormatInt(sender.ID, 10)
}

// displayName returns a human-facing name for the sender.
func displayName(c tele.Context) string {
	sender := c.Sender()
	if sender == nil {
		return "You"
	}
	if sender.FirstName != "" {
		return sender.FirstName
	}
	if sender.Username != "" {
		return sender.Username
	}
	return "You"
}

// mentionedIdentity extracts the first mentioned user from the message,
// either a text @mention or a rich mention of a user without username.
// Returns "" when nothing is mentioned.
func mentionedIdentity(c tele.Context) string {
	msg := c.Message()
	if msg == nil {
		return ""
	}
	for _, ent := range msg.Entities {
		switch ent.Type {
		case tele.EntityTMention:
			if ent.User != nil {
				if ent.User.Username != "" {
					return ent.User.Username
				}
				return strconv.FormatInt(ent.User.ID, 10)
			}
		case tele.EntityMention:
			if ent.Offset >= 0 && ent.Offset+ent.Length <= len(msg.Text) {
				// Drop the leading '@'.
				return msg.Text[ent.Offset+1 : ent.Offset+ent.Length]
			}
		}
	}
	return ""
}

// replyError logs an unexpected error and sends the generic reply.
func replyError(c tele.Context, err error, op string) error {
	log.Error().Err(err).Str("op", op).Str("chat", chatIdentity(c)).Msg("Handler failed")
	return c.Reply(GenericErrorReply)
}
