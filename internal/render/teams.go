package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"team-generator/internal/domain"
)

// Teams печатает обе команды в виде таблиц и итоговую разницу навыков.
func Teams(w io.Writer, result domain.AllocationResult, policy domain.Policy) error {
	for _, team := range result.Teams() {
		if _, err := fmt.Fprintf(w, "%s (%d players)\n", team.Name, team.Size()); err != nil {
			return err
		}
		table := newTable(w)
		table.SetHeader([]string{"Player", "Skill"})
		table.AppendBulk(lo.Map(team.Members, func(p domain.Participant, _ int) []string {
			return []string{p.Name, strconv.Itoa(p.Skill)}
		}))
		table.SetFooter([]string{"Total", strconv.Itoa(team.TotalSkill)})
		table.Render()
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Policy: %s, skill gap: %d\n", policy, result.SkillGap())
	return err
}

// Roster печатает состав в порядке добавления.
func Roster(w io.Writer, players []domain.Participant, maxPlayers int) error {
	if _, err := fmt.Fprintf(w, "Players %d/%d\n", len(players), maxPlayers); err != nil {
		return err
	}
	table := newTable(w)
	table.SetHeader([]string{"#", "Player", "Skill"})
	table.AppendBulk(lo.Map(players, func(p domain.Participant, i int) []string {
		return []string{strconv.Itoa(i + 1), p.Name, strconv.Itoa(p.Skill)}
	}))
	table.Render()
	return nil
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}
