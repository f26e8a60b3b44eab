// Package loader reads campus edges from CSV into a core.Graph.
//
// Format:
//
//	start,end,distance,time,accessible
//	Gordon Hall,Humanities,"1,200",4,True
//
// The header row is required; column order is free and extra columns are
// ignored. distance may carry "," thousand separators; accessible is true
// only for a case-insensitive "true".
//
// Rows that cannot be parsed are skipped, logged at warn level and listed
// in Report.Skipped. Only I/O failures and header problems are errors.
package loader
