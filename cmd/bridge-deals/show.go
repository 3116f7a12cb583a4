package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bridge-deals-service/internal/analysis"
	"bridge-deals-service/internal/domain"
	"bridge-deals-service/internal/lin"
)

func newShowCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <record.lin>",
		Short: "Reconstruct and print a single board record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			deal, err := lin.Parse(string(raw))
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(deal)
			}
			printDeal(cmd, deal)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the reconstructed deal as JSON")
	return cmd
}

func printDeal(cmd *cobra.Command, deal *domain.Deal) {
	out := cmd.OutOrStdout()

	for _, seat := range domain.Seats(deal.Dealer) {
		hand := deal.Hands[seat].Clone()
		hand.Sort(func(a, b domain.Card) bool {
			return domain.DefaultSuitOrder.Less(b, a)
		})
		cards := make([]string, 0, len(hand))
		for _, card := range hand {
			cards = append(cards, card.String())
		}
		fmt.Fprintf(out, "%-5s %-16s (%2d hcp)  %s\n",
			seat, deal.Players[seat], analysis.HCP(deal.Hands[seat]), strings.Join(cards, " "))
	}

	fmt.Fprintf(out, "dealer:     %s\n", deal.Dealer)
	fmt.Fprintf(out, "vulnerable: %s\n", deal.Vulnerability)
	fmt.Fprintf(out, "contract:   %s\n", deal.Contract)
	if deal.Contract.PassedOut {
		return
	}
	fmt.Fprintf(out, "declarer:   %s\n", deal.Declarer)
	made := fmt.Sprintf("%d", deal.TricksMade)
	if deal.Claimed {
		made += " (claimed)"
	}
	fmt.Fprintf(out, "made:       %s\n", made)
	if analysis.Incomplete(deal) {
		fmt.Fprintln(out, "note:       play record is incomplete")
	}
}
