package ai

import "github.com/botsportsempire/gridiron/core"

// GenerateVerdictMeme generates a meme response for a trade resolution
func GenerateVerdictMeme(status core.TradeStatus) string {
	if status == core.TradePassed {
		return "🎉 Much trade! Very approved! Wow!"
	}
	return "🚫 No trade for you! Come back one week!"
}
