package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/brandonbloom/isbnfix/internal/checksum"
	"github.com/brandonbloom/isbnfix/internal/fixture"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func newShowCommand(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored fixtures as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			records, err := fixture.ReadFiles(artifactPaths(cfg))
			if err != nil {
				return fmt.Errorf("read fixtures: %w", err)
			}
			total := len(records)
			if limit > 0 && limit < total {
				records = records[:limit]
			}
			p := newPalette(cmd.OutOrStdout(), cfg.Output.Color)
			printRecordTable(cmd.OutOrStdout(), p, records)
			if len(records) < total {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", p.dim(fmt.Sprintf("… %d more", total-len(records))))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many records (0 for all)")
	opts.bindPaths(cmd)
	return cmd
}

type tableRow struct {
	index  string
	digits string
	sum    string
	ok     bool
}

func printRecordTable(w io.Writer, p palette, records []fixture.Record) {
	header := tableRow{index: "#", digits: "DIGITS", sum: "CHECK"}
	rows := make([]tableRow, 0, len(records))
	for i, rec := range records {
		want, err := checksum.Compute(rec.Digits)
		rows = append(rows, tableRow{
			index:  strconv.Itoa(i + 1),
			digits: rec.Digits.String(),
			sum:    strconv.Itoa(rec.Checksum),
			ok:     err == nil && want == rec.Checksum,
		})
	}

	widths := [3]int{}
	for _, r := range append([]tableRow{header}, rows...) {
		widths[0] = max(widths[0], runewidth.StringWidth(r.index))
		widths[1] = max(widths[1], runewidth.StringWidth(r.digits))
		widths[2] = max(widths[2], runewidth.StringWidth(r.sum))
	}

	fmt.Fprintf(w, "%s  %s  %s  %s\n",
		runewidth.FillLeft(header.index, widths[0]),
		runewidth.FillRight(header.digits, widths[1]),
		runewidth.FillLeft(header.sum, widths[2]),
		"STATUS",
	)
	for _, r := range rows {
		status := p.good("✓")
		if !r.ok {
			status = p.bad("✗")
		}
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			runewidth.FillLeft(r.index, widths[0]),
			runewidth.FillRight(r.digits, widths[1]),
			p.value(runewidth.FillLeft(r.sum, widths[2])),
			status,
		)
	}
}
