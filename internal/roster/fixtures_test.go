package roster

import "strings"

// rosterCodes is a realistic 36-slot row mixing every code shape.
var rosterCodes = []string{
	"off", "39", "01", "39", "12", "02", "39", "12A3", "AL",
	"AL", "TR", "07", "07B1", "off", "TP", "MC", "TBD", "39",
	"39", "01", "01", "10C2", "off", "off", "39", "39", "01",
	"12", "02", "15D4", "MC", "39", "01", "39", "off", "20",
}

func rosterBlob(codes []string) string {
	return strings.Join(codes, "")
}
