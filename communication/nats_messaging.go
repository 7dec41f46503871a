package communication

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Messenger encapsulates a NATS connection for mood event fan-out.
// Subjects: bot.<id>.mood carries a bot's mood stream, league.<id>.events
// carries league activity (matchups, trades, banter).
type Messenger struct {
	NC *nats.Conn
}

// NewMessenger connects to a NATS server.
func NewMessenger(url string) (*Messenger, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Messenger{NC: nc}, nil
}

// Close drains and closes the connection.
func (m *Messenger) Close() {
	if m == nil || m.NC == nil {
		return
	}
	m.NC.Close()
}

// PublishBotMood publishes a payload on a bot's mood subject.
func (m *Messenger) PublishBotMood(botID string, payload interface{}) error {
	return m.publishJSON(fmt.Sprintf("bot.%s.mood", botID), payload)
}

// PublishLeagueEvent publishes a payload on a league's event subject.
func (m *Messenger) PublishLeagueEvent(leagueID string, payload interface{}) error {
	return m.publishJSON(fmt.Sprintf("league.%s.events", leagueID), payload)
}

// SubscribeBotMood subscribes to one bot's mood stream.
func (m *Messenger) SubscribeBotMood(botID string, handler nats.MsgHandler) (*nats.Subscription, error) {
	return m.NC.Subscribe(fmt.Sprintf("bot.%s.mood", botID), handler)
}

// SubscribeAllMoods subscribes to every bot's mood stream.
func (m *Messenger) SubscribeAllMoods(handler nats.MsgHandler) (*nats.Subscription, error) {
	return m.NC.Subscribe("bot.*.mood", handler)
}

// SubscribeLeagueEvents subscribes to one league's activity.
func (m *Messenger) SubscribeLeagueEvents(leagueID string, handler nats.MsgHandler) (*nats.Subscription, error) {
	return m.NC.Subscribe(fmt.Sprintf("league.%s.events", leagueID), handler)
}

func (m *Messenger) publishJSON(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", subject, err)
	}
	return m.NC.Publish(subject, data)
}
