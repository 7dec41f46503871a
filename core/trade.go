package core

import "time"

// TradeStatus tracks a trade through the veto vote.
type TradeStatus string

const (
	TradeUnderReview TradeStatus = "under_review"
	TradePassed      TradeStatus = "passed"
	TradeVetoed      TradeStatus = "vetoed"
)

// Vote values for trade review.
const (
	VotePass = "PASS"
	VoteVeto = "VETO"
)

// TradeVote is one league member's verdict on a proposed trade.
type TradeVote struct {
	BotID   string    `json:"bot_id"`
	Vote    string    `json:"vote"`
	Reason  string    `json:"reason,omitempty"`
	Comment string    `json:"comment,omitempty"`
	CastAt  time.Time `json:"cast_at"`
}

// Trade is a proposed asset swap between two league bots, reviewed by
// the rest of the league. It resolves VETOED once the veto threshold is
// hit, or PASSED once every eligible voter has voted without reaching
// it.
type Trade struct {
	ID            string   `json:"id"`
	LeagueID      string   `json:"league_id"`
	ProposerBotID string   `json:"proposer_bot_id"`
	ReceiverBotID string   `json:"receiver_bot_id"`
	ProposerGives []string `json:"proposer_gives"`
	ReceiverGives []string `json:"receiver_gives"`

	Status            TradeStatus `json:"status"`
	Votes             []TradeVote `json:"votes"`
	VotingBotIDs      []string    `json:"voting_bot_ids"`
	VetoVotesRequired int         `json:"veto_votes_required"`
	VotingEndsAt      time.Time   `json:"voting_ends_at"`

	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// VetoCount tallies VETO votes cast so far.
func (t *Trade) VetoCount() int {
	n := 0
	for _, v := range t.Votes {
		if v.Vote == VoteVeto {
			n++
		}
	}
	return n
}

// PassCount tallies PASS votes cast so far.
func (t *Trade) PassCount() int {
	n := 0
	for _, v := range t.Votes {
		if v.Vote == VotePass {
			n++
		}
	}
	return n
}

// HasVoted reports whether a bot already voted on this trade.
func (t *Trade) HasVoted(botID string) bool {
	for _, v := range t.Votes {
		if v.BotID == botID {
			return true
		}
	}
	return false
}

// EligibleVoter reports whether a bot may vote: enrolled as a voter and
// not a trade participant.
func (t *Trade) EligibleVoter(botID string) bool {
	if botID == t.ProposerBotID || botID == t.ReceiverBotID {
		return false
	}
	for _, id := range t.VotingBotIDs {
		if id == botID {
			return true
		}
	}
	return false
}
