package protocol

import (
	"encoding/json"
	"fmt"
)

const (
	TypeSync           = "sync"
	TypeUserCount      = "userCount"
	TypeReaction       = "reaction"
	TypeUserJoinedCall = "userJoinedCall"
	TypeUserLeftCall   = "userLeftCall"
)

type SyncEvent struct {
	Type string  `json:"type"`
	URL  string  `json:"url"`
	Time float64 `json:"time"`
}

func NewSyncEvent(url string, time float64) SyncEvent {
	return SyncEvent{Type: TypeSync, URL: url, Time: time}
}

type UserCountEvent struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

func NewUserCountEvent(count int) UserCountEvent {
	return UserCountEvent{Type: TypeUserCount, Count: count}
}

// ClockEvent carries play, pause and seek.
type ClockEvent struct {
	Type string  `json:"type"`
	Time float64 `json:"time"`
}

func NewClockEvent(action string, time float64) ClockEvent {
	return ClockEvent{Type: action, Time: time}
}

type ChangeURLEvent struct {
	Type string  `json:"type"`
	URL  string  `json:"url"`
	Time float64 `json:"time"`
}

func NewChangeURLEvent(url string) ChangeURLEvent {
	return ChangeURLEvent{Type: ActionChangeURL, URL: url, Time: 0}
}

type ChatEvent struct {
	Type      string          `json:"type"`
	Username  string          `json:"username"`
	Message   string          `json:"message"`
	MessageID MessageID       `json:"messageId"`
	ReplyTo   json.RawMessage `json:"replyTo,omitempty"`
}

func NewChatEvent(chat Chat) ChatEvent {
	return ChatEvent{
		Type:      ActionChat,
		Username:  chat.Username,
		Message:   chat.Message,
		MessageID: chat.MessageID,
		ReplyTo:   presentOrNil(chat.ReplyTo),
	}
}

type MediaMessageEvent struct {
	Type      string          `json:"type"`
	Username  string          `json:"username"`
	Message   string          `json:"message"`
	MessageID MessageID       `json:"messageId"`
	MediaType string          `json:"mediaType"`
	MediaData string          `json:"mediaData"`
	Filename  string          `json:"filename"`
	ReplyTo   json.RawMessage `json:"replyTo,omitempty"`
}

func NewMediaMessageEvent(msg MediaMessage) MediaMessageEvent {
	return MediaMessageEvent{
		Type:      ActionMediaMessage,
		Username:  msg.Username,
		Message:   msg.Message,
		MessageID: msg.MessageID,
		MediaType: msg.MediaType,
		MediaData: msg.MediaData,
		Filename:  msg.Filename,
		ReplyTo:   presentOrNil(msg.ReplyTo),
	}
}

type EditChatEvent struct {
	Type      string    `json:"type"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	MessageID MessageID `json:"messageId"`
}

func NewEditChatEvent(edit EditChat) EditChatEvent {
	return EditChatEvent{
		Type:      ActionEditChat,
		Username:  edit.Username,
		Message:   edit.Message,
		MessageID: edit.MessageID,
	}
}

type DeleteMessageEvent struct {
	Type      string    `json:"type"`
	MessageID MessageID `json:"messageId"`
}

func NewDeleteMessageEvent(messageID MessageID) DeleteMessageEvent {
	return DeleteMessageEvent{Type: ActionDeleteMessage, MessageID: messageID}
}

type VoiceNoteEvent struct {
	Type      string          `json:"type"`
	Username  string          `json:"username"`
	AudioData string          `json:"audioData"`
	Duration  float64         `json:"duration"`
	MessageID MessageID       `json:"messageId"`
	ReplyTo   json.RawMessage `json:"replyTo,omitempty"`
}

func NewVoiceNoteEvent(note VoiceNote) VoiceNoteEvent {
	return VoiceNoteEvent{
		Type:      ActionVoiceNote,
		Username:  note.Username,
		AudioData: note.AudioData,
		Duration:  note.Duration,
		MessageID: note.MessageID,
		ReplyTo:   presentOrNil(note.ReplyTo),
	}
}

type ReactionEvent struct {
	Type      string              `json:"type"`
	MessageID MessageID           `json:"messageId"`
	Reactions map[string][]string `json:"reactions"`
}

func NewReactionEvent(messageID MessageID, reactions map[string][]string) ReactionEvent {
	return ReactionEvent{Type: TypeReaction, MessageID: messageID, Reactions: reactions}
}

type CallEvent struct {
	Type         string   `json:"type"`
	Username     string   `json:"username"`
	Participants []string `json:"participants"`
}

func NewUserJoinedCallEvent(username string, participants []string) CallEvent {
	return CallEvent{Type: TypeUserJoinedCall, Username: username, Participants: participants}
}

func NewUserLeftCallEvent(username string, participants []string) CallEvent {
	return CallEvent{Type: TypeUserLeftCall, Username: username, Participants: participants}
}

// Forward returns the original frame with its type set to callSignal.
// Every other field, including from and to, is kept verbatim.
func (c CallSignal) Forward() (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(c.Frame, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal call signal: %w", err)
	}

	fields["type"] = json.RawMessage(`"` + ActionCallSignal + `"`)

	forwarded, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal call signal: %w", err)
	}

	return forwarded, nil
}

func presentOrNil(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	return raw
}
