// ============================================================================
// chbrowse - OCR Coding Challenge Browser
// ============================================================================
//
// Package:     speedtrack
// Description: Challenge 2, SpeedTracker. Average speed between two cameras,
//              number plate validation and offenders file generation.
// Created:     2026-10-19
// License:     MIT
// ============================================================================

/*
Package speedtrack implements the speed camera challenge.

Records are read from a text file with one "speed,plate" record per line.
Every record whose speed exceeds the limit or whose plate does not match the
"LL NN LLL" pattern is written to an offenders file as "kind,speed,plate",
where kind is one of speeding, bad-plate or both.

	report, err := speedtrack.CreateOffendersFile(ctx, "records.txt",
		speedtrack.OffendersPath("records.txt", ""), speedtrack.DefaultSpeedLimit)

Watch keeps the offenders file current while the input file is edited.
*/
package speedtrack
