package tgbot

import (
	"context"
	"strings"
	"time"

	"teambalancer/internal/balance"
	"teambalancer/internal/service"
)

type Command interface {
	Run(ctx context.Context, args string) (string, error)
	Help() string
}

func newCommands(ps *service.PlayerService, topN int) map[string]Command {
	commands := map[string]Command{
		"roster": &RosterCommand{playerService: ps},
		"balance": &BalanceCommand{
			playerService: ps,
			topN:          topN,
		},
	}
	hc := &HelpCommand{commands: commands}
	commands["help"] = hc
	commands["start"] = hc
	return commands
}

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(_ context.Context, args string) (string, error) {
	if command, ok := c.commands[args]; ok {
		return command.Help(), nil
	}
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for name := range c.commands {
		b.WriteString("/")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("Use /help with a command name for details")
	return b.String(), nil
}

func (c *HelpCommand) Help() string {
	return "Lists the available commands"
}

type RosterCommand struct {
	playerService *service.PlayerService
}

func (c *RosterCommand) Run(_ context.Context, _ string) (string, error) {
	players, err := c.playerService.ListPlayers()
	if err != nil {
		return "", err
	}
	if len(players) == 0 {
		return "The roster is empty", nil
	}
	var b strings.Builder
	for i := range players {
		b.WriteString(players[i].Name)
		b.WriteString(" (")
		b.WriteString(players[i].Rank.String())
		b.WriteString(", ")
		b.WriteString(players[i].Region.String())
		b.WriteString(") ")
		b.WriteString(players[i].Preference.String())
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (c *RosterCommand) Help() string {
	return "Shows every registered player"
}

const balanceTimeout = 2 * time.Minute

type BalanceCommand struct {
	playerService *service.PlayerService
	topN          int
}

// Run balances the whole roster and replies with the best composition.
func (c *BalanceCommand) Run(ctx context.Context, args string) (string, error) {
	mode, err := balance.ParseMode(args)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, balanceTimeout)
	defer cancel()
	compositions, err := c.playerService.Generate(ctx, nil, c.topN, mode)
	if err != nil {
		return "", err
	}
	if len(compositions) == 0 {
		return "No feasible composition for the current roster", nil
	}
	return balance.FormatComposition(compositions[0]), nil
}

func (c *BalanceCommand) Help() string {
	return "Balances the roster into two teams; use /balance advanced for assigned-role scoring"
}
