package workflows

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/botsportsempire/gridiron/ai"
	"github.com/botsportsempire/gridiron/core"
	"github.com/botsportsempire/gridiron/mood"
	"github.com/botsportsempire/gridiron/storage"
)

// DefaultVotingHours is the review window when the proposer doesn't
// pick one.
const DefaultVotingHours = 24

// TradeService runs the veto-based trade review: every league bot
// outside the trade votes PASS or VETO, a veto quorum kills the trade,
// and a full slate of votes without one passes it.
type TradeService struct {
	bots    *storage.BotRepository
	leagues *storage.LeagueRepository
	trades  *storage.TradeRepository
	engine  *mood.Engine
}

func NewTradeService(bots *storage.BotRepository, leagues *storage.LeagueRepository, trades *storage.TradeRepository, engine *mood.Engine) *TradeService {
	return &TradeService{bots: bots, leagues: leagues, trades: trades, engine: engine}
}

// ResolutionOutcome reports a resolved trade and the mood movement it
// caused for both participants.
type ResolutionOutcome struct {
	Trade        *core.Trade
	Meme         string
	ProposerMood *mood.Result
	ReceiverMood *mood.Result
}

// VoteOutcome reports a recorded vote and, when it tipped the trade,
// the resolution.
type VoteOutcome struct {
	Vote       core.TradeVote
	Trade      *core.Trade
	Resolution *ResolutionOutcome
}

// Propose opens a trade for league review. Leagues with no third
// parties have nobody to veto, so the trade passes immediately; the
// returned ResolutionOutcome is non-nil in that case.
func (s *TradeService) Propose(leagueID, proposerID, receiverID string, proposerGives, receiverGives []string, votingHours int) (*core.Trade, *ResolutionOutcome, error) {
	league, err := s.leagues.GetLeague(leagueID)
	if err != nil {
		return nil, nil, err
	}
	if proposerID == receiverID {
		return nil, nil, fmt.Errorf("a bot cannot trade with itself")
	}
	if !league.HasBot(proposerID) || !league.HasBot(receiverID) {
		return nil, nil, fmt.Errorf("both bots must be enrolled in league %s", leagueID)
	}
	if len(proposerGives) == 0 || len(receiverGives) == 0 {
		return nil, nil, fmt.Errorf("both sides must give at least one asset")
	}

	proposer, err := s.bots.GetBot(proposerID)
	if err != nil {
		return nil, nil, err
	}
	receiver, err := s.bots.GetBot(receiverID)
	if err != nil {
		return nil, nil, err
	}
	if !proposer.IsActive || !receiver.IsActive {
		return nil, nil, fmt.Errorf("both bots must be active to trade")
	}

	if votingHours <= 0 {
		votingHours = DefaultVotingHours
	}

	voters := make([]string, 0, len(league.BotIDs))
	for _, id := range league.BotIDs {
		if id != proposerID && id != receiverID {
			voters = append(voters, id)
		}
	}

	now := time.Now().UTC()
	trade := &core.Trade{
		ID:                uuid.New().String(),
		LeagueID:          leagueID,
		ProposerBotID:     proposerID,
		ReceiverBotID:     receiverID,
		ProposerGives:     proposerGives,
		ReceiverGives:     receiverGives,
		Status:            core.TradeUnderReview,
		Votes:             []core.TradeVote{},
		VotingBotIDs:      voters,
		VetoVotesRequired: vetoQuorum(len(voters)),
		VotingEndsAt:      now.Add(time.Duration(votingHours) * time.Hour),
		CreatedAt:         now,
	}
	if err := s.trades.SaveTrade(trade); err != nil {
		return nil, nil, err
	}

	if len(voters) == 0 {
		resolution, err := s.resolve(trade, core.TradePassed)
		if err != nil {
			return nil, nil, err
		}
		return trade, resolution, nil
	}
	return trade, nil, nil
}

// CastVote records one bot's verdict. The vote that reaches the veto
// quorum, or completes the slate, resolves the trade in the same call.
func (s *TradeService) CastVote(leagueID, tradeID, botID, vote, reason, comment string) (*VoteOutcome, error) {
	trade, err := s.trades.GetTrade(leagueID, tradeID)
	if err != nil {
		return nil, err
	}
	if trade.Status != core.TradeUnderReview {
		return nil, fmt.Errorf("trade %s is not under review", tradeID)
	}
	if time.Now().UTC().After(trade.VotingEndsAt) {
		return nil, fmt.Errorf("voting period for trade %s has ended", tradeID)
	}
	if vote != core.VotePass && vote != core.VoteVeto {
		return nil, fmt.Errorf("vote must be %s or %s", core.VotePass, core.VoteVeto)
	}
	if !trade.EligibleVoter(botID) {
		return nil, fmt.Errorf("bot %s is not an eligible voter on trade %s", botID, tradeID)
	}
	if trade.HasVoted(botID) {
		return nil, fmt.Errorf("bot %s already voted on trade %s", botID, tradeID)
	}

	tv := core.TradeVote{
		BotID:   botID,
		Vote:    vote,
		Reason:  reason,
		Comment: comment,
		CastAt:  time.Now().UTC(),
	}
	trade.Votes = append(trade.Votes, tv)

	outcome := &VoteOutcome{Vote: tv, Trade: trade}
	switch {
	case trade.VetoCount() >= trade.VetoVotesRequired:
		resolution, err := s.resolve(trade, core.TradeVetoed)
		if err != nil {
			return nil, err
		}
		outcome.Resolution = resolution
	case len(trade.Votes) == len(trade.VotingBotIDs):
		resolution, err := s.resolve(trade, core.TradePassed)
		if err != nil {
			return nil, err
		}
		outcome.Resolution = resolution
	default:
		if err := s.trades.SaveTrade(trade); err != nil {
			return nil, err
		}
	}
	return outcome, nil
}

// AutoVote rolls a bot's verdict from its personality, mood, rivalries
// and the trade's balance, then casts it.
func (s *TradeService) AutoVote(leagueID, tradeID, botID string) (*VoteOutcome, error) {
	bot, err := s.bots.GetBot(botID)
	if err != nil {
		return nil, err
	}
	trade, err := s.trades.GetTrade(leagueID, tradeID)
	if err != nil {
		return nil, err
	}

	vote, reason := DetermineVote(bot, trade)
	return s.CastVote(leagueID, tradeID, botID, vote, reason, fmt.Sprintf("Auto-vote by %s", bot.Name))
}

// AutoVoteAll lets every eligible voter who hasn't voted yet roll a
// verdict, stopping once the trade resolves.
func (s *TradeService) AutoVoteAll(leagueID, tradeID string) ([]*VoteOutcome, error) {
	trade, err := s.trades.GetTrade(leagueID, tradeID)
	if err != nil {
		return nil, err
	}

	outcomes := []*VoteOutcome{}
	for _, voterID := range trade.VotingBotIDs {
		if trade.HasVoted(voterID) {
			continue
		}
		outcome, err := s.AutoVote(leagueID, tradeID, voterID)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
		trade = outcome.Trade
		if trade.Status != core.TradeUnderReview {
			break
		}
	}
	return outcomes, nil
}

// resolve finalizes a trade and swings both participants' moods: a pass
// is a payday for both sides, a veto stings the proposer hardest. The
// proposer's social credits move with the verdict.
func (s *TradeService) resolve(trade *core.Trade, status core.TradeStatus) (*ResolutionOutcome, error) {
	now := time.Now().UTC()
	trade.Status = status
	trade.ResolvedAt = &now
	if err := s.trades.SaveTrade(trade); err != nil {
		return nil, err
	}

	meta := map[string]interface{}{
		"trade_id":   trade.ID,
		"league_id":  trade.LeagueID,
		"veto_votes": trade.VetoCount(),
		"pass_votes": trade.PassCount(),
	}

	proposerEvent := core.MoodEvent{SourceBotID: trade.ReceiverBotID, Metadata: meta}
	receiverEvent := core.MoodEvent{SourceBotID: trade.ProposerBotID, Metadata: meta}
	var creditDelta int
	if status == core.TradeVetoed {
		proposerEvent.Type = core.EventTradeFailure
		proposerEvent.Impact = intPtr(-15)
		receiverEvent.Type = core.EventTradeFailure
		receiverEvent.Impact = intPtr(-10)
		creditDelta = -5
	} else {
		proposerEvent.Type = core.EventTradeSuccess
		proposerEvent.Impact = intPtr(10)
		receiverEvent.Type = core.EventTradeSuccess
		receiverEvent.Impact = intPtr(8)
		creditDelta = 3
	}

	proposerMood, err := s.engine.ProcessEvent(trade.ProposerBotID, proposerEvent)
	if err != nil {
		return nil, err
	}
	receiverMood, err := s.engine.ProcessEvent(trade.ReceiverBotID, receiverEvent)
	if err != nil {
		return nil, err
	}

	if _, err := s.engine.UpdateBot(trade.ProposerBotID, func(b *core.Bot) error {
		b.SocialCredits = clampCredits(b.SocialCredits + creditDelta)
		return nil
	}); err != nil {
		return nil, err
	}

	return &ResolutionOutcome{
		Trade:        trade,
		Meme:         ai.GenerateVerdictMeme(status),
		ProposerMood: proposerMood,
		ReceiverMood: receiverMood,
	}, nil
}

// vetoQuorum is a third of the eligible voters, rounded up, at least 1.
func vetoQuorum(eligible int) int {
	q := (eligible + 2) / 3
	if q < 1 {
		q = 1
	}
	return q
}

func clampCredits(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func intPtr(v int) *int { return &v }

// Personality base veto rates; everyone else sits at the 0.3 default.
var baseVetoProbability = map[core.Personality]float64{
	core.PersonalityTrashTalker: 0.4,
	core.PersonalityStatNerd:    0.3,
}

var moodVetoAdjustment = map[core.Mood]float64{
	core.MoodFrustrated: 0.2,
	core.MoodAggressive: 0.15,
	core.MoodDefensive:  0.1,
	core.MoodConfident:  -0.1,
	core.MoodPlayful:    -0.05,
}

// VetoProbability scores how likely a bot is to veto a trade, from its
// archetype, current mood, rival involvement and how lopsided the asset
// counts are. Clamped to [0.05, 0.95] so no vote is a foregone
// conclusion.
func VetoProbability(bot *core.Bot, trade *core.Trade) float64 {
	p, ok := baseVetoProbability[bot.Personality]
	if !ok {
		p = 0.3
	}
	p += moodVetoAdjustment[bot.CurrentMood]

	if rivalInvolved(bot, trade) {
		p += 0.3
	}

	fairness := TradeFairness(trade)
	switch {
	case fairness < 40:
		p += 0.4
	case fairness < 60:
		p += 0.2
	case fairness > 80:
		p -= 0.2
	}

	if p < 0.05 {
		return 0.05
	}
	if p > 0.95 {
		return 0.95
	}
	return p
}

// TradeFairness scores asset balance 0-100; 100 is an even swap. Empty
// trades score a neutral 50.
func TradeFairness(trade *core.Trade) float64 {
	gives := len(trade.ProposerGives)
	receives := len(trade.ReceiverGives)
	total := gives + receives
	if total == 0 {
		return 50.0
	}

	imbalance := gives - receives
	if imbalance < 0 {
		imbalance = -imbalance
	}
	fairness := 100 - (float64(imbalance)/float64(total))*100
	if fairness < 0 {
		return 0
	}
	if fairness > 100 {
		return 100
	}
	return fairness
}

// DetermineVote rolls a bot's verdict on a trade with an in-character
// reason.
func DetermineVote(bot *core.Bot, trade *core.Trade) (string, string) {
	fairness := TradeFairness(trade)
	rival := rivalInvolved(bot, trade)

	if rand.Float64() < VetoProbability(bot, trade) {
		return core.VoteVeto, vetoReason(bot, fairness, rival)
	}
	return core.VotePass, passReason(bot, fairness)
}

func rivalInvolved(bot *core.Bot, trade *core.Trade) bool {
	return bot.RivalryWith(trade.ProposerBotID) != nil || bot.RivalryWith(trade.ReceiverBotID) != nil
}

// vetoReason speaks in the voter's voice: the two loudest archetypes
// have their own lines, everyone else colors the reason by mood.
func vetoReason(bot *core.Bot, fairness float64, rivalInvolved bool) string {
	switch bot.Personality {
	case core.PersonalityStatNerd:
		if fairness < 40 {
			return fmt.Sprintf("Statistical collusion detected (%.0f%% imbalance)", 100-fairness)
		}
		if fairness < 60 {
			return fmt.Sprintf("Questionable asset valuation (%.0f%% imbalance)", 100-fairness)
		}
		return "Trade fails analytical integrity check"
	case core.PersonalityTrashTalker:
		if rivalInvolved {
			return "Not letting my rival get away with this! 🗑️"
		}
		if fairness < 50 {
			return "This trade stinks worse than last week's lineup! 💀"
		}
		return "Vetoed for being too boring! Bring the heat! 🔥"
	}

	switch bot.CurrentMood {
	case core.MoodFrustrated:
		return "Nothing ever works out... why would this? 😞"
	case core.MoodAggressive:
		return "Not in my league! Blocked! 💪"
	case core.MoodDefensive:
		return "This threatens league balance. Must protect. 🛡️"
	case core.MoodConfident:
		return fmt.Sprintf("Even at %.0f%% fairness, this sets a bad precedent.", fairness)
	case core.MoodPlayful:
		jokes := []string{
			"Veto! This trade needs more sparkle! ✨",
			"Blocked for lacking imagination! 🎭",
			"Not fun enough! Try again with pizzazz! 🎉",
			"Veto! Where's the drama? 🍿",
		}
		return jokes[rand.Intn(len(jokes))]
	}
	return "Trade vetoed after review."
}

func passReason(bot *core.Bot, fairness float64) string {
	switch bot.Personality {
	case core.PersonalityStatNerd:
		if fairness > 80 {
			return fmt.Sprintf("Statistically sound trade (%.0f%% fairness)", fairness)
		}
		return fmt.Sprintf("Within acceptable variance (%.0f%% fairness)", fairness)
	case core.PersonalityTrashTalker:
		return "Let it through! More drama for the chat! 🍿"
	}

	switch bot.CurrentMood {
	case core.MoodConfident:
		return "Good trade! May the best bot win! 🏆"
	case core.MoodPlayful:
		return "This could be fun! Let's see what happens! 🎪"
	case core.MoodAggressive:
		return "Pass. I'll beat them anyway. 💪"
	case core.MoodDefensive:
		return "Trade appears balanced. No threat detected. ✅"
	case core.MoodFrustrated:
		return "Whatever... it probably won't matter anyway. 😒"
	}
	return "Trade approved."
}
