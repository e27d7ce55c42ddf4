package model

import "time"

// RawRecord is one source row, bound by column header.
type RawRecord struct {
	DealerCode  string `csv:"Dealer Code"`
	ROID        string `csv:"Repair Order #"`
	OpenDate    string `csv:"RO Open Date"`
	RegNo       string `csv:"Vehicle Registration No"`
	VIN         string `csv:"VIN #"`
	Odometer    string `csv:"Odometer Reading"`
	SAName      string `csv:"Assigned To Full Name"`
	Status      string `csv:"Status"`
	SRType      string `csv:"SR Type"`
	HoldReason  string `csv:"Hold Reason"`
	ROAmount    string `csv:"Total RO Amount"`
	PartsAmount string `csv:"Total Parts Amount"`
	LaborAmount string `csv:"Total Labor Amount"`
	FirstName   string `csv:"Owner Contact First Name"`
	LastName    string `csv:"Owner Contact Last Name"`
}

// Record is a raw row plus the fields derived once at load time.
type Record struct {
	DealerCode string
	ROID       string
	RegNo      string
	VIN        string
	Odometer   string
	SAName     string
	Status     string
	SRType     string

	OpenDate     time.Time
	HasOpenDate  bool
	DaysOpen     int
	AgeBucket    string
	HoldReason   string
	ModelName    string
	CustomerName string
	ROAmount     float64
	PartsAmount  float64
	LaborAmount  float64
}

// Snapshot is one immutable dataset generation. It is replaced wholesale
// on reload and never mutated in place.
type Snapshot struct {
	ID          string
	Records     []Record
	LoadedAt    time.Time
	Err         string
	ModelColumn string
	Source      string
}

// Rows reports the record count; safe on a nil snapshot.
func (s *Snapshot) Rows() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}
