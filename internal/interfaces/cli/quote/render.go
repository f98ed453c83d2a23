package quote

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jaras-platform/jaras/internal/application/pricing/dto"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func writeLines(tw *tabwriter.Writer, lines []dto.LineDTO) {
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", l.Label, l.Amount.Display, l.Note)
	}
}

func writeVat(tw *tabwriter.Writer, v dto.VatDTO) {
	if !v.IncludeVat {
		return
	}
	fmt.Fprintf(tw, "%s\t%s\t\t\n", v.Label, v.Vat.Display)
}

func renderNewCustomer(w io.Writer, q *dto.NewCustomerQuoteDTO) error {
	if q.Plan == nil {
		_, err := fmt.Fprintln(w, "No plans available.")
		return err
	}

	fmt.Fprintf(w, "%s (%s), %d units\n\n", q.Plan.Name, q.Plan.Code, q.UnitsCount)

	tw := newTable(w)
	writeLines(tw, q.PlanLines)
	if len(q.Addons) > 0 {
		fmt.Fprintf(tw, "\t\t\t\n")
		writeLines(tw, q.Addons)
		fmt.Fprintf(tw, "Add-ons\t%s\t\t\n", q.AddonsTotal.Display)
	}
	fmt.Fprintf(tw, "\t\t\t\n")
	fmt.Fprintf(tw, "Total\t%s\t%s\t\n", q.GrandTotal.Display, q.BillingNote)
	writeVat(tw, q.Vat)
	return tw.Flush()
}

func renderExistingCustomer(w io.Writer, q *dto.ExistingCustomerQuoteDTO) error {
	if q.CurrentPlan == nil || q.NewPlan == nil {
		_, err := fmt.Fprintln(w, "No plans available.")
		return err
	}

	fmt.Fprintf(w, "%s: %s -> %s\n", q.ChangeLabel, q.CurrentPlan.Code, q.NewPlan.Code)
	fmt.Fprintf(w, "%s .. %s (%d days remaining)\n\n", q.StartDate, q.EndDate, q.RemainingDays)

	tw := newTable(w)
	fmt.Fprintf(tw, "%s\t%s\t\t\n", q.CurrentPlan.Name, q.CurrentPlanPrice.Display)
	fmt.Fprintf(tw, "%s\t%s\t\t\n", q.NewPlan.Name, q.NewPlanPrice.Display)
	fmt.Fprintf(tw, "Difference\t%s\t\t\n", q.PlanDifference.Display)
	if len(q.Addons) > 0 {
		fmt.Fprintf(tw, "\t\t\t\n")
		writeLines(tw, q.Addons)
		fmt.Fprintf(tw, "Add-ons\t%s\t\t\n", q.AddonsTotal.Display)
	}
	fmt.Fprintf(tw, "\t\t\t\n")
	fmt.Fprintf(tw, "Total\t%s\t%s\t\n", q.GrandTotal.Display, q.SettlementNote)
	writeVat(tw, q.Vat)
	return tw.Flush()
}
