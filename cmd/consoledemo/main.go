// Command consoledemo plays one full bot-only round in the terminal, printing
// the auction, the exchange and every trick as they happen.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"

	"napoleon/internal/app"
	"napoleon/internal/bot"
	"napoleon/internal/domain"
)

var (
	trumpColor  = color.New(color.FgYellow, color.Bold)
	redSuit     = color.New(color.FgRed)
	emperorTint = color.New(color.FgMagenta, color.Bold)
	winnerTint  = color.New(color.FgGreen, color.Bold)
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "shuffle seed")
	flag.Parse()

	svc := app.NewService(rand.New(rand.NewSource(*seed)))

	for {
		round, _, err := svc.StartRound()
		if err != nil {
			fmt.Fprintln(os.Stderr, "deal failed:", err)
			os.Exit(1)
		}
		if playRound(svc, round) {
			return
		}
		fmt.Println("all five seats passed; redealing")
		fmt.Println()
	}
}

// playRound drives one round with an agent at every seat. It returns false
// when the auction forced a redeal.
func playRound(svc *app.Service, round *domain.Round) bool {
	var agents [domain.NumSeats]*bot.Agent
	for seat := 0; seat < domain.NumSeats; seat++ {
		agents[seat] = bot.NewAgent(seat, round.Seating[seat])
	}

	fmt.Println("=== auction ===")
	for round.Phase == domain.PhaseAuction {
		seat := round.Auction.Turn
		v := svc.ViewFor(round, seat)
		if bid, ok := agents[seat].BidOrPass(v); ok {
			must(svc.SubmitBid(round, seat, bid))
			fmt.Printf("%s bids %d on %s\n", seatName(round, seat), bid.Count, suitName(bid.Suit))
		} else {
			must(svc.SubmitPass(round, seat))
			fmt.Printf("%s passes\n", seatName(round, seat))
		}
	}
	if round.Phase == domain.PhaseEnded {
		return false
	}

	emperor := round.Roles.EmperorSeat
	fmt.Println()
	emperorTint.Printf("%s is Emperor", seatName(round, emperor))
	fmt.Printf(" — trump %s, target %d\n", trumpColor.Sprint(suitName(round.TrumpSuit)), round.Target)

	spec := agents[emperor].Designate(svc.ViewFor(round, emperor))
	must(svc.DesignateAlly(round, emperor, spec))
	fmt.Printf("ally card: %s (holder stays secret)\n", cardLabel(spec.Card()))

	must(svc.TakeWidow(round, emperor))
	discard := agents[emperor].Discard(svc.ViewFor(round, emperor))
	must(svc.Discard(round, emperor, discard))
	fmt.Printf("%s takes the widow and returns four cards\n", seatName(round, emperor))

	fmt.Println()
	fmt.Println("=== tricks ===")
	for round.Phase == domain.PhasePlaying {
		seat := round.Trick.ExpectedSeat()
		card, declared := agents[seat].Play(svc.ViewFor(round, seat))
		events, err := svc.PlayCard(round, seat, card, declared)
		if err != nil {
			fmt.Fprintln(os.Stderr, "play failed:", err)
			os.Exit(1)
		}
		for _, ev := range events {
			printEvent(round, ev)
		}
	}

	result, err := round.Result()
	if err != nil {
		fmt.Fprintln(os.Stderr, "tally failed:", err)
		os.Exit(1)
	}
	printResult(round, result)
	return true
}

func printEvent(round *domain.Round, ev app.Event) {
	switch p := ev.Payload.(type) {
	case app.CardPlayedPayload:
		suffix := ""
		if p.Card.IsJoker() {
			suffix = fmt.Sprintf(" (as %s)", suitName(p.LeadSuit))
		}
		fmt.Printf("  %s plays %s%s\n", seatName(round, p.Seat), cardLabel(p.Card), suffix)
	case app.AllyRevealedPayload:
		winnerTint.Printf("  ** %s is the hidden ally **\n", seatName(round, p.Seat))
	case app.TrickResolvedPayload:
		fmt.Printf("  trick %d -> %s (%s)\n", p.TrickNo+1,
			winnerTint.Sprint(seatName(round, p.WinnerSeat)), p.Reason)
		for _, theft := range p.Thefts {
			fmt.Printf("  joker theft: %s takes %s from %s\n",
				seatName(round, theft.ToSeat), cardLabel(theft.Card), seatName(round, theft.FromSeat))
		}
		fmt.Println()
	}
}

func printResult(round *domain.Round, result domain.RoundResult) {
	fmt.Println("=== result ===")
	if result.SpecialSeat >= 0 {
		winnerTint.Printf("%s wins by special victory: %s\n",
			seatName(round, result.SpecialSeat), result.Trophy)
		return
	}
	ally := "no ally"
	if result.AllySeat >= 0 {
		ally = seatName(round, result.AllySeat)
	}
	fmt.Printf("faction (%s + %s): %d points, target %d\n",
		seatName(round, result.EmperorSeat), ally, result.TeamPoints, result.Target)
	if result.EmperorWins {
		winnerTint.Println("the Emperor's faction wins")
	} else {
		winnerTint.Println("the defenders win")
	}
}

func seatName(round *domain.Round, seat int) string {
	return fmt.Sprintf("%s[%d]", round.Seating[seat], seat)
}

func suitName(s domain.Suit) string {
	switch s {
	case domain.Clubs:
		return "clubs"
	case domain.Diamonds:
		return "diamonds"
	case domain.Hearts:
		return "hearts"
	case domain.Spades:
		return "spades"
	}
	return "?"
}

func cardLabel(c domain.Card) string {
	if c.IsJoker() || c.Suit == domain.Hearts || c.Suit == domain.Diamonds {
		return redSuit.Sprint(c.String())
	}
	return c.String()
}

func must(_ []app.Event, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "round error:", err)
		os.Exit(1)
	}
}
