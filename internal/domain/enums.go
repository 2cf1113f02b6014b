package domain

type ShiftKind string

const (
	ShiftStatus    ShiftKind = "status"
	ShiftComposite ShiftKind = "composite"
	ShiftNumeric   ShiftKind = "numeric"
)

type RunStatus string

const (
	RunOK    RunStatus = "ok"
	RunEmpty RunStatus = "empty"
)
