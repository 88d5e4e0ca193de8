// ABOUTME: CLI commands for transactions and the savings singleton.
// ABOUTME: Amounts are stored unsigned; the type carries the sign.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
)

var (
	txCategory  string
	txListLimit int
)

var txCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"money"},
	Short:   "Track income and expenses",
}

var txAddCmd = &cobra.Command{
	Use:   "add <name> <amount> <income|expense>",
	Short: "Record a transaction",
	Long: `Record a transaction. The amount is stored unsigned; income or
expense decides the sign.

Examples:
  lifedash tx add "Salary" 3200 income
  lifedash tx add "Groceries" 42.50 expense --category food`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %s", args[1])
		}
		if !models.IsValidTxType(args[2]) {
			return fmt.Errorf("type must be income or expense, got %q", args[2])
		}

		tx := models.NewTransaction(args[0], amount, models.TxType(args[2]))
		tx.Category = txCategory
		st.AddTransaction(tx)

		color.Green("✓ Recorded %s %q: %.2f", tx.Type, tx.Name, tx.Amount)
		return nil
	},
}

var txListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent transactions with the month's balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		txs := st.Transactions()
		if len(txs) == 0 {
			fmt.Println("No transactions yet.")
			return nil
		}

		limit := txListLimit
		if limit <= 0 || limit > len(txs) {
			limit = len(txs)
		}
		for _, tx := range txs[:limit] {
			sign := color.GreenString("+")
			if tx.Type == models.TxExpense {
				sign = color.RedString("-")
			}
			fmt.Printf("%s %s %8.2f  %-24s %s\n",
				color.New(color.Faint).Sprint(tx.ID.String()[:8]),
				sign, tx.Amount, tx.Name, tx.Date.Format(time.DateOnly))
		}

		now := time.Now()
		balance, expenses := st.MonthBalance(now.Year(), now.Month())
		fmt.Printf("\n%s balance %+.2f", now.Format("January"), balance)
		if budget := st.Settings().MonthlyBudget; budget > 0 {
			fmt.Printf("  (spent %.2f of %.2f budget)", expenses, budget)
		}
		fmt.Println()
		return nil
	},
}

var txDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a transaction by ID prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var match *models.Transaction
		for _, tx := range st.Transactions() {
			if len(args[0]) >= 4 && strings.HasPrefix(tx.ID.String(), args[0]) {
				if match != nil {
					return fmt.Errorf("ambiguous prefix: %s", args[0])
				}
				t := tx
				match = &t
			}
		}
		if match == nil {
			return fmt.Errorf("transaction not found: %s", args[0])
		}
		st.DeleteTransaction(match.ID)
		color.Green("✓ Deleted %q", match.Name)
		return nil
	},
}

var savingsCmd = &cobra.Command{
	Use:   "savings [current] [goal]",
	Short: "Show or set savings progress",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 2 {
			current, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid current amount: %s", args[0])
			}
			goal, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid goal amount: %s", args[1])
			}
			st.SetSavings(models.Savings{CurrentAmount: current, GoalAmount: goal})
			color.Green("✓ Savings updated")
		} else if len(args) == 1 {
			return fmt.Errorf("provide both current and goal amounts")
		}

		sv := st.Savings()
		pct := 0.0
		if sv.GoalAmount > 0 {
			pct = sv.CurrentAmount / sv.GoalAmount * 100
		}
		fmt.Printf("Savings: %.2f / %.2f (%.0f%%)\n", sv.CurrentAmount, sv.GoalAmount, pct)
		return nil
	},
}

func init() {
	txAddCmd.Flags().StringVarP(&txCategory, "category", "c", "", "spending category")
	txListCmd.Flags().IntVarP(&txListLimit, "limit", "n", 20, "max transactions to show")

	txCmd.AddCommand(txAddCmd, txListCmd, txDeleteCmd)
	rootCmd.AddCommand(txCmd, savingsCmd)
}
