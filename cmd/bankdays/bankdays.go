// Package bankdays implements the commands that inspect and extend the
// banking calendar.
package bankdays

import (
	"fmt"
	"io"
	"strings"
	"time"

	"fjacquet/pain-gen/cmd/root"
	"fjacquet/pain-gen/internal/container"
	"fjacquet/pain-gen/internal/dateutils"
	"fjacquet/pain-gen/internal/holidays"
	"fjacquet/pain-gen/internal/logging"

	"github.com/spf13/cobra"
)

var (
	country string
	date    string
	name    string
)

// Cmd is the bankdays command
var Cmd = &cobra.Command{
	Use:   "bankdays",
	Short: "Show the banking window for a country and date",
	Long: `Show the next banking day, the last banking day of the month and the
resulting window that due dates are moved into.

National holidays come from the built-in calendars; extra closing days come
from the holidays file and can be added with 'bankdays add'.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := root.GetContainer()
		if err := Show(c, country, date, time.Now(), cmd.OutOrStdout()); err != nil {
			c.GetLogger().WithError(err).Fatalf("Failed to compute banking days for %s", country)
		}
	},
}

// AddCmd records an extra bank closing day in the holidays file.
var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a bank closing day to the holidays file",
	Run: func(cmd *cobra.Command, args []string) {
		c := root.GetContainer()
		if err := Add(c, country, date, name); err != nil {
			c.GetLogger().WithError(err).Fatalf("Failed to add closing day %s", date)
		}
	},
}

func init() {
	Cmd.PersistentFlags().StringVar(&country, "country", "SE", "ISO 3166 country code of the calendar")
	Cmd.PersistentFlags().StringVar(&date, "date", "", "Date to compute from (default today)")
	AddCmd.Flags().StringVar(&name, "name", "", "Description of the closing day")
	Cmd.AddCommand(AddCmd)
}

// Show prints the banking days around on (or now when on is empty).
func Show(c *container.Container, country, on string, now time.Time, out io.Writer) error {
	today := dateutils.DateOf(now)
	if on != "" {
		d, _, err := dateutils.ParseDate(on)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		today = d
	}

	country = holidays.NormalizeCountry(country)
	cal, err := c.GetGenerator().Calendar(country)
	if err != nil {
		return err
	}

	next := cal.NextBankingDay(today)
	last, err := cal.LastBankingDayOfMonth(today.Year(), today.Month())
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Country:           %s\n", country)
	fmt.Fprintf(&b, "Date:              %s\n", dateutils.ToISODate(today))
	fmt.Fprintf(&b, "Banking day:       %t\n", cal.IsBankingDay(today))
	fmt.Fprintf(&b, "Next banking day:  %s\n", dateutils.ToISODate(next))
	fmt.Fprintf(&b, "Last banking day:  %s\n", dateutils.ToISODate(last))

	window, err := c.GetGenerator().Window(country, today)
	if err != nil {
		fmt.Fprintf(&b, "Window:            none (%v)\n", err)
	} else {
		fmt.Fprintf(&b, "Window:            %s .. %s\n",
			dateutils.ToISODate(window.Floor), dateutils.ToISODate(window.Ceiling))
	}

	_, err = io.WriteString(out, b.String())
	return err
}

// Add stores on as a closing day for country in the holidays file.
func Add(c *container.Container, country, on, label string) error {
	if on == "" {
		return fmt.Errorf("a date is required")
	}
	d, _, err := dateutils.ParseDate(on)
	if err != nil {
		return fmt.Errorf("invalid --date: %w", err)
	}
	country = holidays.NormalizeCountry(country)
	if len(country) != 2 {
		return fmt.Errorf("invalid country code: %q", country)
	}

	store := c.GetHolidayStore()
	sets, err := store.Load()
	if err != nil {
		return err
	}
	set, ok := sets[country]
	if !ok {
		set = holidays.DateSet{}
		sets[country] = set
	}
	if set.Contains(d) {
		c.GetLogger().Info("Closing day already present",
			logging.F(logging.FieldCountry, country),
			logging.F(logging.FieldDateDue, dateutils.ToISODate(d)))
		return nil
	}
	set.Add(d, label)
	return store.Save(sets)
}
