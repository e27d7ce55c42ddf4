package report

import (
	"github.com/unnativehicles2009-web/Open-RO/internal/model"
	"github.com/unnativehicles2009-web/Open-RO/internal/parser"
)

// Row is the external record shape shared by the listing and the Excel
// export. Every field is a concrete printable value; no null or missing
// marker crosses this boundary.
type Row struct {
	ROID             string  `json:"ro_id"`
	RODate           string  `json:"ro_date"`
	Branch           string  `json:"branch"`
	Status           string  `json:"status"`
	SRType           string  `json:"sr_type"`
	HoldReason       string  `json:"hold_reason"`
	ModelName        string  `json:"model_name"`
	CustomerName     string  `json:"customer_name"`
	SAName           string  `json:"sa_name"`
	RegNumber        string  `json:"reg_number"`
	KM               int     `json:"km"`
	AgeBucket        string  `json:"age_bucket"`
	Days             int     `json:"days"`
	TotalROAmount    float64 `json:"total_ro_amount"`
	TotalPartsAmount float64 `json:"total_parts_amount"`
	TotalLaborAmount float64 `json:"total_labor_amount"`
}

// ProjectRow maps one enriched record onto the external shape. Dates
// render DD/MM/YYYY, absent dates as "-"; blank text fields fall back
// to "-".
func ProjectRow(r model.Record) Row {
	roDate := "-"
	if r.HasOpenDate {
		roDate = r.OpenDate.Format("02/01/2006")
	}

	return Row{
		ROID:             parser.SafeStr(r.ROID, "-"),
		RODate:           roDate,
		Branch:           parser.SafeStr(r.DealerCode, "-"),
		Status:           parser.SafeStr(r.Status, "-"),
		SRType:           parser.SafeStr(r.SRType, "-"),
		HoldReason:       parser.SafeStr(r.HoldReason, "-"),
		ModelName:        parser.SafeStr(r.ModelName, "-"),
		CustomerName:     parser.SafeStr(r.CustomerName, "-"),
		SAName:           parser.SafeStr(r.SAName, "-"),
		RegNumber:        parser.SafeStr(r.RegNo, "-"),
		KM:               parser.ToIntSafe(r.Odometer, 0),
		AgeBucket:        parser.SafeStr(r.AgeBucket, "-"),
		Days:             r.DaysOpen,
		TotalROAmount:    r.ROAmount,
		TotalPartsAmount: r.PartsAmount,
		TotalLaborAmount: r.LaborAmount,
	}
}

// ProjectRows projects a filtered view in order.
func ProjectRows(records []model.Record) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = ProjectRow(r)
	}
	return rows
}
