package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/application/lookup"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/application/session"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/pkg/phone"
)

const emptyField = "-"

// RenderResult prints the lookup fields of a number.
func RenderResult(out io.Writer, number string, result domain.LookupResult, region string) {
	fmt.Fprintf(out, "Number:    %s\n", phone.Display(number, region))
	fmt.Fprintf(out, "Carrier:   %s\n", orDash(result.Carrier))
	fmt.Fprintf(out, "Country:   %s\n", orDash(result.CountryOfOrigin))
	fmt.Fprintf(out, "Line type: %s\n", orDash(result.PhoneType))
	if code := phone.Region(number, region); code != "" {
		fmt.Fprintf(out, "Region:    %s\n", code)
	}
}

// RenderNotice prints a user-visible notice.
func RenderNotice(out io.Writer, notice *domain.Notice) {
	if notice == nil {
		return
	}
	fmt.Fprintf(out, "[%s] %s\n", notice.Title, notice.Message)
}

// RenderState prints what the lookup screen would show for s.
func RenderState(out io.Writer, s session.State, region string) {
	RenderNotice(out, s.Notice)
	if s.HasResult() {
		RenderResult(out, s.Query, s.Result, region)
	}
}

// RenderReport prints one batch lookup report.
func RenderReport(out io.Writer, rep lookup.Report, region string) {
	switch rep.Outcome.Kind {
	case domain.OutcomeInvalidInput:
		fmt.Fprintf(out, "%s: %s\n", rep.Input, domain.MsgInvalidNumber)
	case domain.OutcomeTransportError:
		fmt.Fprintf(out, "%s: %s\n", rep.Input, domain.MsgCheckConnection)
	default:
		if !rep.Outcome.Result.Valid {
			fmt.Fprintf(out, "%s: not a valid number for its country code\n", rep.Input)
			return
		}
		RenderResult(out, rep.Number, rep.Outcome.Result, region)
	}
}

// RenderHistory prints history records one per line.
func RenderHistory(out io.Writer, records []domain.HistoryRecord, region string) {
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return
	}
	for _, rec := range records {
		fmt.Fprintf(out, "%s | %s | %s | %s | %s\n",
			rec.Timestamp.Format(domain.TimestampFormat),
			phone.Display(rec.Phone, region),
			orDash(rec.Carrier),
			orDash(rec.CountryOfOrigin),
			orDash(rec.PhoneType))
	}
}

func renderDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n", strings.ToUpper(string(check.Status)), check.Name, check.Details)
	}
}

func orDash(s string) string {
	if s == "" {
		return emptyField
	}
	return s
}
