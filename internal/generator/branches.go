package generator

// Branches is the fixed set of branch codes a transaction can be booked
// against. The list mirrors the supplier network and is used verbatim.
var Branches = []string{
	"ABG", "ALB", "AUK", "BAL", "BLM", "BAY", "BRN", "BRI", "BUN", "CAM",
	"CBR", "CAN", "CHT", "CHR", "COB", "COF", "DAR", "DUB", "ESS", "FRK",
	"GEE", "GLF", "GLC", "HAM", "HOB", "HOR", "INV", "JOO", "KEW", "LAU",
	"LOG", "MAN", "MAI", "MRO", "MEL", "NPL", "NCL", "NOR", "NSH", "ORA",
	"PER", "PAK", "PAD", "QUE", "ROC", "SRH", "SUN", "TAM", "TOW", "WAG",
	"WAR", "WEL", "WER", "WOL", "YAR", "YEO",
}
