package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wmfl-league/leagueadmin/go/internal/models"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rowBuilder accumulates the cells of one standings row. Counters are
// filled left to right by the first numeric cells after the name.
type rowBuilder struct {
	team     models.ImportedTeam
	hasName  bool
	counters int
	points   bool
}

func (b *rowBuilder) cell(index int, value string) {
	n, numeric := parseDigits(value)
	switch {
	case index == 0 && numeric:
		b.team.Position = &n
	case index == 1:
		b.team.TeamName = value
		b.hasName = true
	case b.counters < 4 && numeric:
		switch b.counters {
		case 0:
			b.team.Games = n
		case 1:
			b.team.Wins = n
		case 2:
			b.team.Draws = n
		case 3:
			b.team.Losses = n
		}
		b.counters++
	case strings.Contains(value, ":"):
		if gf, ga, ok := parseScore(value); ok {
			b.team.GoalsFor, b.team.GoalsAgainst = gf, ga
		}
	case !b.points && numeric:
		b.team.Points = n
		b.points = true
	}
}

// ParseStandings extracts team rows from a tournament standings page. Rows
// are <tr> elements with any attribute value mentioning "team"; cells
// without text are skipped and do not advance the cell index.
func ParseStandings(r io.Reader) ([]models.ImportedTeam, error) {
	z := html.NewTokenizer(r)

	var (
		teams  []models.ImportedTeam
		row    *rowBuilder
		index  int
		buffer []string
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return teams, nil
			}
			return nil, fmt.Errorf("failed to parse standings page: %w", z.Err())

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.DataAtom {
			case atom.Tr:
				if isTeamRow(tok.Attr) {
					row = &rowBuilder{}
					index = 0
				}
			case atom.Td:
				if row != nil {
					buffer = buffer[:0]
				}
			}

		case html.TextToken:
			if row == nil {
				continue
			}
			if text := strings.TrimSpace(string(z.Text())); text != "" {
				buffer = append(buffer, text)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Td:
				if row != nil && len(buffer) > 0 {
					row.cell(index, strings.Join(buffer, " "))
					index++
				}
			case atom.Tr:
				if row != nil {
					if row.hasName {
						teams = append(teams, row.team)
					}
					row = nil
				}
			}
		}
	}
}

func isTeamRow(attrs []html.Attribute) bool {
	for _, a := range attrs {
		if strings.Contains(strings.ToLower(a.Val), "team") {
			return true
		}
	}
	return false
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseScore(s string) (int, int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	gf, ok := parseDigits(parts[0])
	if !ok {
		return 0, 0, false
	}
	ga, ok := parseDigits(parts[1])
	if !ok {
		return 0, 0, false
	}
	return gf, ga, true
}
