package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/tally-networks/finance-bot/internal/classifier"
	"github.com/tally-networks/finance-bot/internal/logging"
	"github.com/tally-networks/finance-bot/internal/service"
)

const fallbackReply = "Command not recognized. Try: balance, add, report, budget"

const noTransactionsReply = "No transactions recorded yet. Add one with: add <amount> [<category>]"

// financeCommands is the slice of the finance service the dispatcher needs.
type financeCommands interface {
	Balance(ctx context.Context, userPhone string) (decimal.Decimal, error)
	RecordTransaction(ctx context.Context, userPhone string, amount decimal.Decimal, category string) error
	SetBudget(ctx context.Context, category string, limit decimal.Decimal) error
	SuggestInvestment(ctx context.Context, userPhone string) (service.InvestmentAdvice, error)
}

// reportCommands is the slice of the report service the dispatcher needs.
type reportCommands interface {
	CategoryReport(ctx context.Context, userPhone string) (string, error)
}

// Dispatcher routes one inbound (text, sender) pair to a command handler.
type Dispatcher struct {
	Classifier classifier.Classifier
	Finance    financeCommands
	Reports    reportCommands
}

func NewDispatcher(cls classifier.Classifier, finance financeCommands, reports reportCommands) *Dispatcher {
	return &Dispatcher{
		Classifier: cls,
		Finance:    finance,
		Reports:    reports,
	}
}

// Dispatch selects a handler by keyword priority, first match wins. The
// classifier's label is recorded in the request log but never routed on.
// All handler errors are converted to a text reply here; nothing propagates
// to the transport.
func (d *Dispatcher) Dispatch(ctx context.Context, text, sender string) Reply {
	label := d.Classifier.Classify(text)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("intentLabel", string(label))
	}

	reply, err := d.route(ctx, strings.ToLower(text), sender)
	if err != nil {
		return TextReply("Error: " + err.Error())
	}
	return reply
}

func (d *Dispatcher) route(ctx context.Context, lowered, sender string) (Reply, error) {
	switch {
	case strings.Contains(lowered, "balance"):
		return d.handleBalance(ctx, sender)
	case strings.Contains(lowered, "add"):
		return d.handleAdd(ctx, lowered, sender)
	case strings.Contains(lowered, "report"):
		return d.handleReport(ctx, sender)
	case strings.Contains(lowered, "budget"):
		return d.handleBudget(ctx, lowered)
	case strings.Contains(lowered, "invest"):
		return d.handleInvest(ctx, sender)
	default:
		return TextReply(fallbackReply), nil
	}
}

func (d *Dispatcher) handleBalance(ctx context.Context, sender string) (Reply, error) {
	balance, err := d.Finance.Balance(ctx, sender)
	if err != nil {
		return Reply{}, err
	}
	return TextReply("Your current balance is: $" + balance.StringFixed(2)), nil
}

func (d *Dispatcher) handleAdd(ctx context.Context, lowered, sender string) (Reply, error) {
	cmd, err := parseAddCommand(lowered)
	if err != nil {
		return Reply{}, err
	}
	logrus.Debugf("Dispatcher.handleAdd %s", spew.Sdump(cmd))

	if err := d.Finance.RecordTransaction(ctx, sender, cmd.Amount, cmd.Category); err != nil {
		return Reply{}, err
	}
	return TextReply("Transaction recorded successfully!"), nil
}

func (d *Dispatcher) handleReport(ctx context.Context, sender string) (Reply, error) {
	artifactPath, err := d.Reports.CategoryReport(ctx, sender)
	if errors.Is(err, service.ErrNoTransactions) {
		return TextReply(noTransactionsReply), nil
	}
	if err != nil {
		return Reply{}, err
	}
	return MediaReply("Your spending report:", artifactPath), nil
}

func (d *Dispatcher) handleBudget(ctx context.Context, lowered string) (Reply, error) {
	cmd, err := parseBudgetCommand(lowered)
	if err != nil {
		return Reply{}, err
	}
	logrus.Debugf("Dispatcher.handleBudget %s", spew.Sdump(cmd))

	if err := d.Finance.SetBudget(ctx, cmd.Category, cmd.Limit); err != nil {
		return Reply{}, err
	}
	return TextReply("Budget for " + cmd.Category + " set at $" + cmd.Limit.StringFixed(2)), nil
}

func (d *Dispatcher) handleInvest(ctx context.Context, sender string) (Reply, error) {
	advice, err := d.Finance.SuggestInvestment(ctx, sender)
	if err != nil {
		return Reply{}, err
	}
	if advice.Invest {
		return TextReply("Suggestion: invest $" + advice.Amount.StringFixed(2) + " in an index fund!"), nil
	}
	return TextReply("Focus on reducing debt before investing."), nil
}
