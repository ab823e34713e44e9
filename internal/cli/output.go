package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case AuthResult:
		o.printAuthResult(v)
	case Session:
		o.printSession(v)
	case []Session:
		o.printSessions(v)
	case SessionPlayer:
		o.printSessionPlayer(v)
	case []SessionPlayer:
		o.printSessionPlayers(v)
	case Schedule:
		o.printSchedule(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
	Earnings string `json:"earnings"`
}

// AuthResult is the response of the auth endpoints
type AuthResult struct {
	AccountID    string `json:"account_id"`
	Email        string `json:"email"`
	SessionToken string `json:"session_token"`
}

// Session response type
type Session struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	GameType    string `json:"game_type"`
	BuyIn       string `json:"buy_in"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
}

// SessionPlayer is one ledger row
type SessionPlayer struct {
	PlayerID     string  `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	InitialBuyIn string  `json:"initial_buy_in"`
	TotalBuyIn   string  `json:"total_buy_in"`
	CashOut      *string `json:"cash_out"`
	Status       string  `json:"status"`
	Profit       *string `json:"profit,omitempty"`
	ProfitClass  string  `json:"profit_class,omitempty"`
}

// Schedule response type
type Schedule struct {
	Upcoming []Session `json:"upcoming"`
	Past     []Session `json:"past"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Player Player `json:"player"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Wins: %d\n", p.Wins)
	fmt.Printf("Earnings: %s\n", p.Earnings)
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		fmt.Println("No players")
		return
	}

	rows := pterm.TableData{{"Name", "Wins", "Earnings", "ID"}}
	for _, p := range players {
		rows = append(rows, []string{p.Name, strconv.Itoa(p.Wins), p.Earnings, p.ID})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Account: %s (%s)\n", a.Email, a.AccountID)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s (%s)\n", s.Name, s.ID)
	fmt.Printf("Game: %s\n", s.GameType)
	fmt.Printf("When: %s %s\n", s.Date, s.Time)
	if s.Location != "" {
		fmt.Printf("Where: %s\n", s.Location)
	}
	fmt.Printf("Buy-in: %s\n", s.BuyIn)
	if s.Description != "" {
		fmt.Printf("Notes: %s\n", s.Description)
	}
}

func (o *Output) printSessions(sessions []Session) {
	if len(sessions) == 0 {
		fmt.Println("No sessions")
		return
	}

	rows := pterm.TableData{{"Date", "Time", "Name", "Game", "Buy-in", "ID"}}
	for _, s := range sessions {
		rows = append(rows, []string{s.Date, s.Time, s.Name, s.GameType, s.BuyIn, s.ID})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func (o *Output) printSessionPlayer(sp SessionPlayer) {
	name := sp.PlayerName
	if name == "" {
		name = sp.PlayerID
	}
	fmt.Printf("Player: %s\n", name)
	fmt.Printf("Status: %s\n", sp.Status)
	fmt.Printf("Buy-in: %s (initial %s)\n", sp.TotalBuyIn, sp.InitialBuyIn)
	if sp.CashOut != nil {
		fmt.Printf("Cash-out: %s\n", *sp.CashOut)
	}
	if sp.Profit != nil {
		fmt.Printf("Profit: %s (%s)\n", *sp.Profit, sp.ProfitClass)
	}
}

func (o *Output) printSessionPlayers(members []SessionPlayer) {
	if len(members) == 0 {
		fmt.Println("No players in this session")
		return
	}

	rows := pterm.TableData{{"Player", "Status", "Total Buy-in", "Cash-out", "Profit"}}
	for _, m := range members {
		name := m.PlayerName
		if name == "" {
			name = m.PlayerID
		}
		cashOut := "-"
		if m.CashOut != nil {
			cashOut = *m.CashOut
		}
		profit := "-"
		if m.Profit != nil {
			profit = fmt.Sprintf("%s (%s)", *m.Profit, m.ProfitClass)
		}
		rows = append(rows, []string{name, m.Status, m.TotalBuyIn, cashOut, profit})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func (o *Output) printSchedule(s Schedule) {
	pterm.DefaultSection.Println("Upcoming")
	o.printSessions(s.Upcoming)

	pterm.DefaultSection.Println("Past")
	o.printSessions(s.Past)
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("No players")
		return
	}

	rows := pterm.TableData{{"Rank", "Name", "Wins", "Earnings"}}
	for _, e := range entries {
		rows = append(rows, []string{strconv.Itoa(e.Rank), e.Player.Name, strconv.Itoa(e.Player.Wins), e.Player.Earnings})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
