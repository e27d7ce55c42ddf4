package model

// RequiredColumns is the source schema. Columns are matched
// case-insensitively; missing ones are synthesized as all-blank at load
// time.
var RequiredColumns = []string{
	"Dealer Code",
	"Repair Order #",
	"RO Open Date",
	"Vehicle Registration No",
	"VIN #",
	"Odometer Reading",
	"Assigned To Full Name",
	"Status",
	"SR Type",
	"Hold Reason",
	"Total RO Amount",
	"Total Parts Amount",
	"Total Labor Amount",
	"Owner Contact First Name",
	"Owner Contact Last Name",
}

// ModelCandidates are the column names that may carry the vehicle model,
// tried in priority order.
var ModelCandidates = []string{
	"Model Name",
	"Model",
	"Model_Name",
	"MODEL NAME",
	"MODEL",
	"Model Group",
	"ModelGroup",
	"MODEL GROUP",
}
