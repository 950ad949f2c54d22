package report

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/signintech/gopdf"

	"opd-scribe/internal/consultation"
	"opd-scribe/internal/pipeline"
)

type TelegramClient interface {
	SendMessage(chatID int64, text string) error
	SendDocument(chatID int64, fileData []byte, fileName string) error
}

// Service renders finalized consultations to PDF and sends them to the
// doctor's Telegram chat. It implements consultation.Deliverer.
type Service struct {
	tgClient     TelegramClient
	doctorChatID int64
	fontPaths    []string
}

// NewService builds the delivery service. fontPath may be empty; the
// default candidates cover common Noto Devanagari install locations,
// needed because the report body is Hindi text.
func NewService(tg TelegramClient, doctorChatID int64, fontPath string) *Service {
	fontPaths := []string{
		"/usr/share/fonts/truetype/noto/NotoSansDevanagari-Regular.ttf",
		"/usr/share/fonts/noto/NotoSansDevanagari-Regular.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}
	if fontPath != "" {
		fontPaths = append([]string{fontPath}, fontPaths...)
	}
	return &Service{
		tgClient:     tg,
		doctorChatID: doctorChatID,
		fontPaths:    fontPaths,
	}
}

func (s *Service) Deliver(ctx context.Context, rec consultation.Record) error {
	log.Printf("Generating PDF report for consultation %s", rec.ID)

	data, err := s.renderPDF(rec)
	if err != nil {
		// No usable font on this host; fall back to a plain-text message
		// so the doctor still gets the report.
		log.Printf("PDF rendering failed for %s, sending text fallback: %v", rec.ID, err)
		if sendErr := s.tgClient.SendMessage(s.doctorChatID, textSummary(rec)); sendErr != nil {
			return fmt.Errorf("send report text fallback: %w", sendErr)
		}
		return nil
	}

	fileName := fmt.Sprintf("opd_report_%s.pdf", rec.ID.String())
	if err := s.tgClient.SendDocument(s.doctorChatID, data, fileName); err != nil {
		return fmt.Errorf("send report document: %w", err)
	}
	log.Printf("Report for consultation %s sent", rec.ID)
	return nil
}

func (s *Service) renderPDF(rec consultation.Record) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range s.fontPaths {
		if err := pdf.AddTTFFont("Body", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load a Devanagari-capable font: %w", fontErr)
	}

	if err := pdf.SetFont("Body", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "OPD Consultation Report")
	pdf.Br(30)

	if err := pdf.SetFont("Body", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", rec.CreatedAt.Format("02.01.2006 15:04")))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Consultation ID: %s", rec.ID))
	pdf.Br(15)
	if rec.PatientName != "" {
		pdf.Cell(nil, fmt.Sprintf("Patient: %s", rec.PatientName))
		pdf.Br(15)
	}
	if rec.PatientAge > 0 {
		pdf.Cell(nil, fmt.Sprintf("Age: %d", rec.PatientAge))
		pdf.Br(15)
	}
	pdf.Br(10)

	writeSection := func(title string, lines []string) error {
		if len(lines) == 0 {
			return nil
		}
		if err := pdf.SetFont("Body", "", 14); err != nil {
			return err
		}
		pdf.Cell(nil, title)
		pdf.Br(15)
		if err := pdf.SetFont("Body", "", 11); err != nil {
			return err
		}
		for _, line := range lines {
			wrapped, _ := pdf.SplitText("- "+line, 500)
			for _, l := range wrapped {
				pdf.Cell(nil, l)
				pdf.Br(12)
			}
		}
		pdf.Br(10)
		return nil
	}

	if err := writeSection("Chief Complaint", chiefComplaintLines(rec.Report)); err != nil {
		return nil, err
	}
	if err := writeSection("Symptoms", symptomLines(rec.Report.Symptoms)); err != nil {
		return nil, err
	}
	if err := writeSection("Negative Findings", rec.Report.Negatives); err != nil {
		return nil, err
	}
	if err := writeSection("Current Medications", rec.Report.Medications); err != nil {
		return nil, err
	}
	if err := writeSection("Assessment", rec.Report.Diagnosis); err != nil {
		return nil, err
	}
	if err := writeSection("Plan", rec.Report.Advice); err != nil {
		return nil, err
	}

	pdf.SetY(800)
	if err := pdf.SetFont("Body", "", 9); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Generated %s from the consultation transcript. Verify before signing.",
		time.Now().Format("02.01.2006 15:04")))

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// textSummary renders the record as plain text for the fallback path.
func textSummary(rec consultation.Record) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "OPD Consultation Report\n%s\n", rec.CreatedAt.Format("02.01.2006 15:04"))
	if rec.PatientName != "" {
		fmt.Fprintf(&b, "Patient: %s\n", rec.PatientName)
	}
	if rec.PatientAge > 0 {
		fmt.Fprintf(&b, "Age: %d\n", rec.PatientAge)
	}

	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", title)
		for _, line := range lines {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	section("Chief Complaint", chiefComplaintLines(rec.Report))
	section("Symptoms", symptomLines(rec.Report.Symptoms))
	section("Negative Findings", rec.Report.Negatives)
	section("Current Medications", rec.Report.Medications)
	section("Assessment", rec.Report.Diagnosis)
	section("Plan", rec.Report.Advice)
	return b.String()
}

func chiefComplaintLines(r pipeline.Report) []string {
	if r.ChiefComplaint == nil {
		return nil
	}
	return []string{*r.ChiefComplaint}
}

func symptomLines(symptoms []pipeline.Symptom) []string {
	lines := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		line := s.Name
		if s.Location != "" {
			line += fmt.Sprintf(" (%s)", s.Location)
		}
		if s.Duration != "" {
			line += fmt.Sprintf(", %s", s.Duration)
		}
		lines = append(lines, line)
	}
	return lines
}
