package core

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/hashiba-k-jp/C-LOTUS/state"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(header)
	return table
}

func palette(colored bool) (plain, best, bad *color.Color) {
	plain = color.New()
	plain.DisableColor()
	best, bad = plain, plain
	if colored {
		best = color.New(color.FgGreen)
		best.EnableColor()
		bad = color.New(color.FgRed)
		bad.EnableColor()
	}
	return
}

func verdictCell(v state.Verdict, bad *color.Color) string {
	switch v {
	case state.VerdictNone:
		return "-"
	case state.Invalid:
		return bad.Sprint(v)
	}
	return v.String()
}

func policyString(chain []state.Policy) string {
	names := make([]string, len(chain))
	for i, p := range chain {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}

// RenderAS writes the routing table of as, best routes marked with ">".
func RenderAS(w io.Writer, as *state.AS, colored bool) {
	plain, best, bad := palette(colored)
	plain.Fprintf(w, "AS %s  network %s  policy [%s]\n", as.ID, as.Network, policyString(as.Policy))

	var rows [][]string
	for _, network := range as.Table.Networks() {
		rs, _ := as.Table.Lookup(network)
		for _, e := range rs.Entries() {
			mark := ""
			path := e.Path.String()
			if e.Best {
				mark = best.Sprint(">")
				path = best.Sprint(path)
			}
			rows = append(rows, []string{
				mark,
				string(network),
				path,
				e.ComeFrom.String(),
				strconv.Itoa(e.LocalPref),
				verdictCell(e.ASPA, bad),
				verdictCell(e.ISec, bad),
			})
		}
	}
	table := newTable(w, []string{"", "NETWORK", "PATH", "COME_FROM", "LOCPRF", "ASPA", "ISEC"})
	table.AppendBulk(rows)
	table.Render()
}

// RenderQueue writes the pending messages, head first.
func RenderQueue(w io.Writer, msgs []state.Message) {
	if len(msgs) == 0 {
		fmt.Fprintln(w, "no pending messages")
		return
	}
	var rows [][]string
	for i, m := range msgs {
		if m.Kind == state.MsgInit {
			rows = append(rows, []string{strconv.Itoa(i), m.Kind.String(), m.Src.String(), "", "", ""})
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			m.Kind.String(),
			m.Src.String(),
			m.Dst.String(),
			string(m.Network),
			m.Path.String(),
		})
	}
	table := newTable(w, []string{"#", "TYPE", "SRC", "DST", "NETWORK", "PATH"})
	table.AppendBulk(rows)
	table.Render()
}

// RenderLinks writes the links of the topology in registration order.
func RenderLinks(w io.Writer, links []state.Link) {
	var rows [][]string
	for _, l := range links {
		rows = append(rows, []string{l.Type.String(), l.Src.String(), l.Dst.String()})
	}
	table := newTable(w, []string{"TYPE", "SRC", "DST"})
	table.AppendBulk(rows)
	table.Render()
}
