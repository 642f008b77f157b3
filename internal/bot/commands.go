package bot

import (
	"strings"

	"github.com/shopspring/decimal"
)

const defaultCategory = "Other"

// AddCommand is a parsed "add <amount> [<category>]" message.
type AddCommand struct {
	Amount   decimal.Decimal
	Category string
}

// BudgetCommand is a parsed "budget <category> <limit>" message.
type BudgetCommand struct {
	Category string
	Limit    decimal.Decimal
}

// parseAddCommand splits the message on whitespace; the second token must be
// a decimal amount, the optional third token is the category.
func parseAddCommand(text string) (*AddCommand, error) {
	tokens := strings.Fields(text)
	if len(tokens) < 2 {
		return nil, newParseError("amount is missing, try: add <amount> [<category>]")
	}

	amount, err := decimal.NewFromString(tokens[1])
	if err != nil {
		return nil, newParseError("amount must be a number, got: " + tokens[1])
	}

	category := defaultCategory
	if len(tokens) > 2 {
		category = tokens[2]
	}

	return &AddCommand{Amount: amount, Category: category}, nil
}

// parseBudgetCommand splits the message on whitespace; the second token is
// the category and the third must be a decimal limit.
func parseBudgetCommand(text string) (*BudgetCommand, error) {
	tokens := strings.Fields(text)
	if len(tokens) < 3 {
		return nil, newParseError("category or limit is missing, try: budget <category> <limit>")
	}

	limit, err := decimal.NewFromString(tokens[2])
	if err != nil {
		return nil, newParseError("limit must be a number, got: " + tokens[2])
	}

	return &BudgetCommand{Category: tokens[1], Limit: limit}, nil
}
