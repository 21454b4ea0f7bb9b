package protocol

import "encoding/json"

const (
	ActionJoin           = "join"
	ActionPlay           = "play"
	ActionPause          = "pause"
	ActionSeek           = "seek"
	ActionChangeURL      = "changeUrl"
	ActionChat           = "chat"
	ActionMediaMessage   = "mediaMessage"
	ActionEditChat       = "editChat"
	ActionDeleteMessage  = "deleteMessage"
	ActionVoiceNote      = "voiceNote"
	ActionReaction       = "reaction"
	ActionRemoveReaction = "removeReaction"
	ActionJoinCall       = "joinCall"
	ActionLeaveCall      = "leaveCall"
	ActionCallSignal     = "callSignal"
)

// Action is one of the concrete inbound action types declared in this file.
type Action interface {
	Tag() string
	isAction()
}

type Join struct {
	Username string `json:"username"`
}

type Play struct {
	Time float64 `json:"time" validate:"gte=0"`
}

type Pause struct {
	Time float64 `json:"time" validate:"gte=0"`
}

type Seek struct {
	Time float64 `json:"time" validate:"gte=0"`
}

type ChangeURL struct {
	URL string `json:"url"`
}

type Chat struct {
	Username  string          `json:"username"`
	Message   string          `json:"message"`
	MessageID MessageID       `json:"messageId"`
	ReplyTo   json.RawMessage `json:"replyTo"`
}

type MediaMessage struct {
	Username  string          `json:"username"`
	Message   string          `json:"message"`
	MessageID MessageID       `json:"messageId"`
	MediaType string          `json:"mediaType"`
	MediaData string          `json:"mediaData"`
	Filename  string          `json:"filename"`
	ReplyTo   json.RawMessage `json:"replyTo"`
}

type EditChat struct {
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	MessageID MessageID `json:"messageId"`
}

type DeleteMessage struct {
	MessageID MessageID `json:"messageId"`
}

type VoiceNote struct {
	Username  string          `json:"username"`
	AudioData string          `json:"audioData"`
	Duration  float64         `json:"duration"`
	MessageID MessageID       `json:"messageId"`
	ReplyTo   json.RawMessage `json:"replyTo"`
}

type Reaction struct {
	Username  string    `json:"username" validate:"required"`
	MessageID MessageID `json:"messageId" validate:"required"`
	Emoji     string    `json:"emoji" validate:"required"`
}

type RemoveReaction struct {
	Username  string    `json:"username" validate:"required"`
	MessageID MessageID `json:"messageId" validate:"required"`
	Emoji     string    `json:"emoji" validate:"required"`
}

type JoinCall struct {
	Username string `json:"username" validate:"required"`
}

type LeaveCall struct {
	Username string `json:"username" validate:"required"`
}

// CallSignal keeps the whole inbound frame so it can be forwarded as is.
type CallSignal struct {
	From  string          `json:"from"`
	To    string          `json:"to" validate:"required"`
	Frame json.RawMessage `json:"-"`
}

func (Join) Tag() string           { return ActionJoin }
func (Play) Tag() string           { return ActionPlay }
func (Pause) Tag() string          { return ActionPause }
func (Seek) Tag() string           { return ActionSeek }
func (ChangeURL) Tag() string      { return ActionChangeURL }
func (Chat) Tag() string           { return ActionChat }
func (MediaMessage) Tag() string   { return ActionMediaMessage }
func (EditChat) Tag() string       { return ActionEditChat }
func (DeleteMessage) Tag() string  { return ActionDeleteMessage }
func (VoiceNote) Tag() string      { return ActionVoiceNote }
func (Reaction) Tag() string       { return ActionReaction }
func (RemoveReaction) Tag() string { return ActionRemoveReaction }
func (JoinCall) Tag() string       { return ActionJoinCall }
func (LeaveCall) Tag() string      { return ActionLeaveCall }
func (CallSignal) Tag() string     { return ActionCallSignal }

func (Join) isAction()           {}
func (Play) isAction()           {}
func (Pause) isAction()          {}
func (Seek) isAction()           {}
func (ChangeURL) isAction()      {}
func (Chat) isAction()           {}
func (MediaMessage) isAction()   {}
func (EditChat) isAction()       {}
func (DeleteMessage) isAction()  {}
func (VoiceNote) isAction()      {}
func (Reaction) isAction()       {}
func (RemoveReaction) isAction() {}
func (JoinCall) isAction()       {}
func (LeaveCall) isAction()      {}
func (CallSignal) isAction()     {}
