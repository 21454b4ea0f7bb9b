package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sharetube/syncroom/pkg/validator"
)

var (
	ErrInvalidEnvelope = errors.New("invalid envelope")
	ErrMissingRoomID   = errors.New("missing room id")
	ErrUnknownAction   = errors.New("unknown action")
)

type header struct {
	RoomID string `json:"roomId"`
	Action string `json:"action"`
}

// Envelope is a decoded inbound frame.
type Envelope struct {
	RoomID string
	Action Action
}

type decodeFunc func(*Decoder, []byte) (Action, error)

var decoders = map[string]decodeFunc{
	ActionJoin:           decodeAs[Join],
	ActionPlay:           decodeAs[Play],
	ActionPause:          decodeAs[Pause],
	ActionSeek:           decodeAs[Seek],
	ActionChangeURL:      decodeAs[ChangeURL],
	ActionChat:           decodeAs[Chat],
	ActionMediaMessage:   decodeAs[MediaMessage],
	ActionEditChat:       decodeAs[EditChat],
	ActionDeleteMessage:  decodeAs[DeleteMessage],
	ActionVoiceNote:      decodeAs[VoiceNote],
	ActionReaction:       decodeAs[Reaction],
	ActionRemoveReaction: decodeAs[RemoveReaction],
	ActionJoinCall:       decodeAs[JoinCall],
	ActionLeaveCall:      decodeAs[LeaveCall],
	ActionCallSignal:     decodeCallSignal,
}

type Decoder struct {
	validate *validator.Validator
}

func NewDecoder() *Decoder {
	return &Decoder{validate: validator.NewValidator()}
}

// PeekAction returns the action tag of a frame without validating it.
func PeekAction(frame []byte) string {
	var h header
	if err := json.Unmarshal(frame, &h); err != nil {
		return ""
	}

	return h.Action
}

// Decode parses a frame. For an unrecognized action tag it returns the
// envelope with a nil Action together with ErrUnknownAction.
func (d *Decoder) Decode(frame []byte) (Envelope, error) {
	var h header
	if err := json.Unmarshal(frame, &h); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	if h.RoomID == "" {
		return Envelope{}, ErrMissingRoomID
	}

	decode, ok := decoders[h.Action]
	if !ok {
		return Envelope{RoomID: h.RoomID}, fmt.Errorf("%w: %q", ErrUnknownAction, h.Action)
	}

	action, err := decode(d, frame)
	if err != nil {
		return Envelope{RoomID: h.RoomID}, fmt.Errorf("failed to decode %s: %w", h.Action, err)
	}

	return Envelope{RoomID: h.RoomID, Action: action}, nil
}

func decodeAs[T Action](d *Decoder, frame []byte) (Action, error) {
	var action T
	if err := json.Unmarshal(frame, &action); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	if errs, ok := d.validate.Validate(action); !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, errs)
	}

	return action, nil
}

func decodeCallSignal(d *Decoder, frame []byte) (Action, error) {
	action, err := decodeAs[CallSignal](d, frame)
	if err != nil {
		return nil, err
	}

	signal := action.(CallSignal)
	signal.Frame = append(json.RawMessage(nil), frame...)
	return signal, nil
}
