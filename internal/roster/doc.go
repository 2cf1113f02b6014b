// Package roster turns text recovered from a roster PDF into per-staff
// shift schedules.
//
// The pipeline is NormalizeLines -> LocateHeaders -> Tokenize -> Assemble,
// with a Store collecting the schedules that came out complete. Parse runs
// the whole chain for a Config.
package roster
