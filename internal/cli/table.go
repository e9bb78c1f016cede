// SPDX-License-Identifier: MIT
package cli

import (
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/sqmat/matrix"
)

// labelled renders m as a table whose header holds column indices and whose
// first column holds row indices. Cells are right-aligned with p.precision digits.
func (p printer) labelled(m *matrix.SquareMat) error {
	n := m.Size()
	header := make([]string, n+1)
	for j := 0; j < n; j++ {
		header[j+1] = strconv.Itoa(j)
	}

	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, n+1)
		row[0] = strconv.Itoa(i)
		for j, v := range m.Row(i) {
			row[j+1] = p.scalar(v)
		}
		rows[i] = row
	}

	table := tablewriter.NewWriter(p.w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetRowLine(true)
	table.AppendBulk(rows)
	table.Render()

	return nil
}
