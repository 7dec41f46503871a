package core

// EventType identifies what happened to a bot. The engine resolves each
// type against the bot's trigger table to get an intensity delta.
// Unknown types are tolerated and resolve to a zero delta.
type EventType string

const (
	EventWinBoost           EventType = "win_boost"
	EventLossPenalty        EventType = "loss_penalty"
	EventPraiseBoost        EventType = "praise_boost"
	EventTrashTalkReceived  EventType = "trash_talk_received"
	EventTrashTalkDelivered EventType = "trash_talk_delivered"
	EventTradeSuccess       EventType = "trade_success"
	EventTradeFailure       EventType = "trade_failure"
	EventDraftSuccess       EventType = "draft_success"
	EventDraftBust          EventType = "draft_bust"
	EventHumanWatchTime     EventType = "human_watch_time"
	EventRivalryWin         EventType = "rivalry_win"
	EventRivalryLoss        EventType = "rivalry_loss"
)

// KnownEventTypes holds every event type the default trigger tables
// cover. The engine does not reject types outside this set; this exists
// so callers can warn about likely typos and the CLI can list options.
var KnownEventTypes = []EventType{
	EventWinBoost,
	EventLossPenalty,
	EventPraiseBoost,
	EventTrashTalkReceived,
	EventTrashTalkDelivered,
	EventTradeSuccess,
	EventTradeFailure,
	EventDraftSuccess,
	EventDraftBust,
	EventHumanWatchTime,
	EventRivalryWin,
	EventRivalryLoss,
}

// IsKnownEventType reports whether t appears in the default tables.
func IsKnownEventType(t EventType) bool {
	for _, known := range KnownEventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// MoodEvent is one thing that happened to a bot. Impact, when set,
// overrides the bot's trigger table entirely for this event. A set
// SourceBotID marks the event as a social interaction and can create or
// update a rivalry or alliance with that peer.
type MoodEvent struct {
	Type        EventType              `json:"type"`
	Impact      *int                   `json:"impact,omitempty"`
	SourceBotID string                 `json:"source_bot_id,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}
