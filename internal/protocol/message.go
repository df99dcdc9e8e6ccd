package protocol

import (
	"encoding/json"

	"brisca-game/internal/shared"
)

// Message represents a generic event emitted while a round is played.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "card_played", "trick_end")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

const (
	TypeRoundStart    = "round_start"
	TypeCardPlayed    = "card_played"
	TypeTrickEnd      = "trick_end"
	TypeDeclaration   = "declaration"
	TypeTrumpExchange = "trump_exchange"
	TypeRoundEnd      = "round_end"
	TypeRoundAborted  = "round_aborted"
)

// SeatInfo describes the policy seated at a position.
type SeatInfo struct {
	Seat int    `json:"seat"`
	Team int    `json:"team"`
	Bot  string `json:"bot"`
}

// RoundStartPayload is sent once the cards are dealt.
type RoundStartPayload struct {
	RoundID   string      `json:"round_id"`
	Trump     shared.Card `json:"trump"`
	FirstSeat int         `json:"first_seat"`
	Seats     []SeatInfo  `json:"seats"`
}

// CardPlayedPayload is sent after every accepted play.
type CardPlayedPayload struct {
	Seat int         `json:"seat"`
	Card shared.Card `json:"card"`
}

// TrickEndPayload is sent when the fourth card of a trick resolves it.
type TrickEndPayload struct {
	Trick     int                 `json:"trick"` // 1-based trick number
	Winner    shared.PlayedCard   `json:"winner"`
	Cards     []shared.PlayedCard `json:"cards"`
	Points    int                 `json:"points"`
	DeckLeft  int                 `json:"deck_left"`
	TrumpGone bool                `json:"trump_dealt"`
}

// DeclarationPayload is sent for every accepted pair declaration.
type DeclarationPayload struct {
	Seat   int         `json:"seat"`
	Team   int         `json:"team"`
	Suit   shared.Suit `json:"suit"`
	Points int         `json:"points"`
}

// TrumpExchangePayload is sent when the 7 of trumps replaces the marker.
type TrumpExchangePayload struct {
	Seat     int         `json:"seat"`
	Given    shared.Card `json:"given"`    // The 7 of trumps, now the marker
	Received shared.Card `json:"received"` // The old marker, now in hand
}

// RoundEndPayload carries the final scores of a finished round.
type RoundEndPayload struct {
	RoundID    string `json:"round_id"`
	Outcome    string `json:"outcome"`
	Team0Score int    `json:"team0_score"`
	Team1Score int    `json:"team1_score"`
}

// RoundAbortedPayload is sent when a round stops before its last trick.
type RoundAbortedPayload struct {
	RoundID string `json:"round_id"`
	Reason  string `json:"reason"`
}

// Helper function to create a JSON message
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}

// Decode unpacks a message produced by NewMessage.
func Decode(data []byte) (Message, error) {
	var msg Message
	err := json.Unmarshal(data, &msg)
	return msg, err
}
