// Package cli implements the fx command line client.
package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"frankfurter/internal/application"
	"frankfurter/internal/domain"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// ServiceFactory builds the service once flags are parsed.
type ServiceFactory func(verbose bool) (*application.FXRatesService, error)

type options struct {
	verbose bool
	from    string
	to      string
	start   string
	end     string
}

func NewRootCommand(build ServiceFactory) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "fx",
		Short:         "Query foreign exchange rates from the Frankfurter API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log requests made to the API")

	service := func() (*application.FXRatesService, error) { return build(opts.verbose) }

	root.AddCommand(
		latestCmd(opts, service),
		seriesCmd(opts, service),
		dateCmd(opts, service),
		currenciesCmd(service),
		convertCmd(service),
	)
	return root
}

func addPairFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.from, "from", "f", "", "Base currency (API default: EUR)")
	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "Target currency (default: all)")
}

func latestCmd(opts *options, service func() (*application.FXRatesService, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the latest rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := service()
			if err != nil {
				return err
			}
			r, err := svc.Latest(cmd.Context(), opts.from, opts.to)
			if err != nil {
				return err
			}
			renderRates(cmd.OutOrStdout(), r)
			return nil
		},
	}
	addPairFlags(cmd, opts)
	return cmd
}

func seriesCmd(opts *options, service func() (*application.FXRatesService, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Show rates for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := service()
			if err != nil {
				return err
			}
			s, err := svc.TimeSeries(cmd.Context(), opts.from, opts.to, opts.start, opts.end)
			if err != nil {
				return err
			}
			renderSeries(cmd.OutOrStdout(), s)
			return nil
		},
	}
	addPairFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.start, "start", "", "First day, YYYY-MM-DD (empty: latest only)")
	cmd.Flags().StringVar(&opts.end, "end", "", "Last day, YYYY-MM-DD (empty: today)")
	return cmd
}

func dateCmd(opts *options, service func() (*application.FXRatesService, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date YYYY-MM-DD",
		Short: "Show rates for one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service()
			if err != nil {
				return err
			}
			r, err := svc.ForDate(cmd.Context(), args[0], opts.from, opts.to)
			if err != nil {
				return err
			}
			renderRates(cmd.OutOrStdout(), r)
			return nil
		},
	}
	addPairFlags(cmd, opts)
	return cmd
}

func currenciesCmd(service func() (*application.FXRatesService, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List supported currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := service()
			if err != nil {
				return err
			}
			c, err := svc.Currencies(cmd.Context())
			if err != nil {
				return err
			}
			table := newTable(cmd.OutOrStdout(), "Code", "Name")
			for _, code := range c.Codes() {
				table.Append([]string{code, c[code]})
			}
			table.Render()
			return nil
		},
	}
}

func convertCmd(service func() (*application.FXRatesService, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "convert AMOUNT FROM TO",
		Short: "Convert an amount at the latest rate",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			svc, err := service()
			if err != nil {
				return err
			}
			c, err := svc.Convert(cmd.Context(), amount, args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s (rate %s, %s)\n",
				formatAmount(c.Amount), c.Base, formatAmount(c.Result), c.To,
				decimal.NewFromFloat(c.Rate).String(), c.Date)
			return nil
		},
	}
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(false)
	return table
}

func renderRates(w io.Writer, r domain.Rates) {
	fmt.Fprintf(w, "%s %s on %s\n", formatAmount(r.Amount), r.Base, r.Date)
	table := newTable(w, "Currency", "Rate")
	for _, code := range sortedKeys(r.Rates) {
		table.Append([]string{code, decimal.NewFromFloat(r.Rates[code]).String()})
	}
	table.Render()
}

func renderSeries(w io.Writer, s domain.TimeSeries) {
	fmt.Fprintf(w, "%s %s from %s to %s\n", formatAmount(s.Amount), s.Base, s.StartDate, s.EndDate)
	table := newTable(w, "Date", "Currency", "Rate")
	for _, day := range sortedKeys(s.Rates) {
		rates := s.Rates[day]
		for _, code := range sortedKeys(rates) {
			table.Append([]string{day, code, decimal.NewFromFloat(rates[code]).String()})
		}
	}
	table.Render()
}

func formatAmount(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
