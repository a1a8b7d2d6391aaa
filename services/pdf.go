package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type PDFData struct {
	Origin     string
	TravelDate string
	Plan       *ItineraryPlan
}

// GeneratePDFBytes renders an itinerary document and returns raw bytes (no
// filesystem — stored in PostgreSQL).
func GeneratePDFBytes(data PDFData) ([]byte, error) {
	plan := data.Plan
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "TripCraft", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "AI-Generated Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 4,
		"This itinerary was generated by an AI model. Prices are estimates in Indian Rupees and subject to change. Verify details before booking.",
		"", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	row("Destination", plan.Destination)
	if data.Origin != "" {
		row("From", data.Origin)
	}
	row("Travel Date", fmtDateReadable(data.TravelDate))
	row("Duration", fmt.Sprintf("%d days", plan.Duration))
	row("Generated", time.Now().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	if plan.Summary != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, plan.Summary, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	// ── Budget Breakdown ──────────────────────────────────────
	sectionHeader("Budget Breakdown")
	row("Accommodation", "Rs "+FormatINR(plan.Budget.Accommodation))
	row("Food", "Rs "+FormatINR(plan.Budget.Food))
	row("Activities", "Rs "+FormatINR(plan.Budget.Activities))
	row("Transportation", "Rs "+FormatINR(plan.Budget.Transportation))

	pdf.SetFillColor(212, 168, 67)
	pdf.SetTextColor(13, 24, 37)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL ESTIMATE", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, "Rs "+FormatINR(plan.Budget.Total), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// ── Day-by-Day Itinerary ──────────────────────────────────
	for _, day := range plan.Itinerary {
		sectionHeader(fmt.Sprintf("Day %d", day.Day))
		for _, act := range day.Activities {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(20, 20, 20)
			title := act.Activity
			if act.Time != "" {
				title = act.Time + " — " + act.Activity
			}
			pdf.CellFormat(170, 6, title, "", 1, "L", false, 0, "")

			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(90, 90, 90)
			if act.Description != "" {
				pdf.MultiCell(170, 4.5, act.Description, "", "L", false)
			}
			detail := ""
			if act.Location != "" {
				detail = act.Location
			}
			if act.Cost > 0 {
				if detail != "" {
					detail += " · "
				}
				detail += "Rs " + FormatINR(act.Cost)
			}
			if detail != "" {
				pdf.CellFormat(170, 4.5, detail, "", 1, "L", false, 0, "")
			}
			pdf.Ln(1.5)
		}
		pdf.Ln(2)
	}

	// ── Transportation ────────────────────────────────────────
	if plan.Transportation != nil && len(plan.Transportation.Flights) > 0 {
		sectionHeader("Flights")
		for _, f := range plan.Transportation.Flights {
			row(fmt.Sprintf("%s %s", f.Airline, f.FlightNumber),
				fmt.Sprintf("%s %s → %s %s · Rs %s (%s)",
					f.Departure.Airport, f.Departure.Time,
					f.Arrival.Airport, f.Arrival.Time,
					FormatINR(f.Price), f.Duration))
		}
		pdf.Ln(4)
	}
	if plan.Transportation != nil && len(plan.Transportation.LocalTransportation) > 0 {
		sectionHeader("Getting Around")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		for _, t := range plan.Transportation.LocalTransportation {
			pdf.MultiCell(170, 5, "- "+t, "", "L", false)
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	// ── Tips ──────────────────────────────────────────────────
	if len(plan.Tips) > 0 {
		sectionHeader("Travel Tips")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		for _, tip := range plan.Tips {
			pdf.MultiCell(170, 5, "- "+tip, "", "L", false)
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by TripCraft AI Travel Planner · Not a booking confirmation · Prices subject to change",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtDateReadable(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
